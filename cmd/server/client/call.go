package client

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// commandName turns an RPC name into a subcommand, e.g. GetAvatar -> get-avatar.
func commandName(method string) string {
	var b strings.Builder
	for i, r := range method {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newCallCmd(method string) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   commandName(method) + " [key=value...]",
		Short: "Call " + method,
		Long: fmt.Sprintf(`Call %s. Arguments are top-level request fields; numbers and
booleans are detected except for ids and preview values, which stay strings. Use --data for
nested documents such as config.`, method),
		RunE: func(_ *cobra.Command, args []string) error {
			req, err := buildRequest(data, args)
			if err != nil {
				return err
			}
			return call(method, req)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "Request as a JSON object; key=value arguments override it")
	return cmd
}

// buildRequest merges a JSON document with key=value overrides.
func buildRequest(data string, args []string) (*structpb.Struct, error) {
	req := &structpb.Struct{Fields: map[string]*structpb.Value{}}
	if data != "" {
		if err := protojson.Unmarshal([]byte(data), req); err != nil {
			return nil, fmt.Errorf("invalid --data: %w", err)
		}
		if req.Fields == nil {
			req.Fields = map[string]*structpb.Value{}
		}
	}

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q must be key=value", arg)
		}
		if strings.HasSuffix(key, "_id") || key == "value" {
			req.Fields[key] = structpb.NewStringValue(value)
			continue
		}
		req.Fields[key] = parseValue(value)
	}
	return req, nil
}

func parseValue(raw string) *structpb.Value {
	if b, err := strconv.ParseBool(raw); err == nil {
		return structpb.NewBoolValue(b)
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return structpb.NewNumberValue(n)
	}
	return structpb.NewStringValue(raw)
}

func call(method string, req *structpb.Struct) error {
	client, cleanup, err := createAvatarClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Calling %s on %s...", method, serverAddr)

	resp, err := client.Call(ctx, method, req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}

	marshaler := protojson.MarshalOptions{
		Indent:          "  ",
		EmitUnpopulated: false,
	}
	jsonBytes, err := marshaler.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	_, err = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return err
}
