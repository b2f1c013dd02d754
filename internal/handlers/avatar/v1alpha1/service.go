package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "chorequest.avatar.v1alpha1.AvatarService"

// RPC method names
const (
	MethodGetAvatar             = "GetAvatar"
	MethodSaveAvatar            = "SaveAvatar"
	MethodRenderAvatar          = "RenderAvatar"
	MethodPreviewItem           = "PreviewItem"
	MethodListAvatarItems       = "ListAvatarItems"
	MethodUnlockAvatarItem      = "UnlockAvatarItem"
	MethodRandomizeAvatar       = "RandomizeAvatar"
	MethodGetCompanion          = "GetCompanion"
	MethodInteractWithCompanion = "InteractWithCompanion"
	MethodListCompanionLevels   = "ListCompanionLevels"
)

// Methods lists every RPC in registration order.
func Methods() []string {
	return []string{
		MethodGetAvatar,
		MethodSaveAvatar,
		MethodRenderAvatar,
		MethodPreviewItem,
		MethodListAvatarItems,
		MethodUnlockAvatarItem,
		MethodRandomizeAvatar,
		MethodGetCompanion,
		MethodInteractWithCompanion,
		MethodListCompanionLevels,
	}
}

// FullMethod returns the wire path of an RPC, e.g. /chorequest.avatar.v1alpha1.AvatarService/GetAvatar.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// AvatarServiceServer is the server API for the avatar service. Requests and
// responses are google.protobuf.Struct documents.
type AvatarServiceServer interface {
	GetAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenderAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PreviewItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAvatarItems(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UnlockAvatarItem(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RandomizeAvatar(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCompanion(context.Context, *structpb.Struct) (*structpb.Struct, error)
	InteractWithCompanion(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCompanionLevels(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(AvatarServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(AvatarServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// AvatarServiceDesc is the grpc.ServiceDesc for the avatar service.
var AvatarServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AvatarServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler(MethodGetAvatar, AvatarServiceServer.GetAvatar),
		unaryHandler(MethodSaveAvatar, AvatarServiceServer.SaveAvatar),
		unaryHandler(MethodRenderAvatar, AvatarServiceServer.RenderAvatar),
		unaryHandler(MethodPreviewItem, AvatarServiceServer.PreviewItem),
		unaryHandler(MethodListAvatarItems, AvatarServiceServer.ListAvatarItems),
		unaryHandler(MethodUnlockAvatarItem, AvatarServiceServer.UnlockAvatarItem),
		unaryHandler(MethodRandomizeAvatar, AvatarServiceServer.RandomizeAvatar),
		unaryHandler(MethodGetCompanion, AvatarServiceServer.GetCompanion),
		unaryHandler(MethodInteractWithCompanion, AvatarServiceServer.InteractWithCompanion),
		unaryHandler(MethodListCompanionLevels, AvatarServiceServer.ListCompanionLevels),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

// RegisterAvatarServiceServer registers the avatar service with a gRPC server.
func RegisterAvatarServiceServer(s grpc.ServiceRegistrar, srv AvatarServiceServer) {
	s.RegisterService(&AvatarServiceDesc, srv)
}

// AvatarServiceClient calls the avatar service by method name.
type AvatarServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type avatarServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAvatarServiceClient creates a client on top of an existing connection.
func NewAvatarServiceClient(cc grpc.ClientConnInterface) AvatarServiceClient {
	return &avatarServiceClient{cc: cc}
}

func (c *avatarServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
