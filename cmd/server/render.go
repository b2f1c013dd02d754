package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/chore-quest/internal/avatar"
	"github.com/KirkDiggler/chore-quest/internal/entities"
	"github.com/KirkDiggler/chore-quest/internal/errors"
	avatarorch "github.com/KirkDiggler/chore-quest/internal/orchestrators/avatar"
	"github.com/KirkDiggler/chore-quest/internal/render/svg"
)

var (
	renderConfigPath  string
	renderSize        int
	renderPreview     string
	renderName        string
	renderOutput      string
	renderInteractive bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an avatar to SVG without a server",
	Long: `Render an avatar configuration (JSON) to SVG. Without --config the player's
initials badge is drawn when --name is set, otherwise the default avatar.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderConfigPath, "config", "", "Path to an avatar config JSON file")
	renderCmd.Flags().IntVar(&renderSize, "size", 128, "Output size in pixels")
	renderCmd.Flags().StringVar(&renderPreview, "preview", "", "Try on a single field, as field=value")
	renderCmd.Flags().StringVar(&renderName, "name", "", "Player name for the initials badge")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Write to a file instead of stdout")
	renderCmd.Flags().BoolVar(&renderInteractive, "interactive", false, "Include the sparkle anchor marker")
}

func parsePreview(raw string) (*entities.Preview, error) {
	if raw == "" {
		return nil, nil
	}
	field, value, ok := strings.Cut(raw, "=")
	if !ok || field == "" {
		return nil, errors.InvalidArgumentf("preview must be field=value, got %q", raw)
	}
	if !entities.IsPreviewField(field) {
		return nil, errors.InvalidArgumentf("unknown preview field %q", field)
	}
	return &entities.Preview{Field: field, Value: value}, nil
}

func loadConfig(path string) (entities.AvatarConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entities.AvatarConfig{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg entities.AvatarConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return entities.AvatarConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func buildDocument() (*svg.Document, error) {
	preview, err := parsePreview(renderPreview)
	if err != nil {
		return nil, err
	}

	if renderConfigPath == "" && renderName != "" {
		return avatar.RenderBadge(renderName), nil
	}

	cfg := entities.DefaultAvatarConfig()
	if renderConfigPath != "" {
		if cfg, err = loadConfig(renderConfigPath); err != nil {
			return nil, err
		}
	}

	return avatar.Render(avatar.RenderInput{
		Config:      cfg,
		Preview:     preview,
		Interactive: renderInteractive,
	}), nil
}

func runRender(_ *cobra.Command, _ []string) error {
	if renderSize < avatarorch.MinRenderSize || renderSize > avatarorch.MaxRenderSize {
		return fmt.Errorf("size must be between %d and %d", avatarorch.MinRenderSize, avatarorch.MaxRenderSize)
	}

	doc, err := buildDocument()
	if err != nil {
		return err
	}
	out := doc.Marshal(renderSize)

	if renderOutput == "" {
		_, err = fmt.Fprintln(os.Stdout, string(out))
		return err
	}
	if err := os.WriteFile(renderOutput, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", renderOutput, err)
	}
	return nil
}
