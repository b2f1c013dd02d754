package v1alpha1

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// protoFile is the descriptor path the service is registered under.
const protoFile = "chorequest/avatar/v1alpha1/avatar.proto"

// fileDescriptor builds the avatar.proto descriptor. Every RPC takes and
// returns a google.protobuf.Struct.
func fileDescriptor() *descriptorpb.FileDescriptorProto {
	structName := "." + string((&structpb.Struct{}).ProtoReflect().Descriptor().FullName())

	methods := make([]*descriptorpb.MethodDescriptorProto, 0, len(Methods()))
	for _, m := range Methods() {
		methods = append(methods, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(m),
			InputType:  proto.String(structName),
			OutputType: proto.String(structName),
		})
	}

	return &descriptorpb.FileDescriptorProto{
		Name:       proto.String(protoFile),
		Package:    proto.String("chorequest.avatar.v1alpha1"),
		Dependency: []string{structpb.File_google_protobuf_struct_proto.Path()},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name:   proto.String("AvatarService"),
			Method: methods,
		}},
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/KirkDiggler/chore-quest/internal/handlers/avatar/v1alpha1"),
		},
		Syntax: proto.String("proto3"),
	}
}

// FileDescriptor is avatar.proto as registered in the global registry, which
// is what server reflection serves.
var FileDescriptor = mustRegister()

func mustRegister() protoreflect.FileDescriptor {
	if fd, err := protoregistry.GlobalFiles.FindFileByPath(protoFile); err == nil {
		return fd
	}

	fd, err := protodesc.NewFile(fileDescriptor(), protoregistry.GlobalFiles)
	if err != nil {
		panic("v1alpha1: invalid avatar.proto descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("v1alpha1: failed to register avatar.proto: " + err.Error())
	}
	return fd
}
