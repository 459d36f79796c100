// Package v1alpha1 exposes the battle orchestrator over gRPC and HTTP.
//
// The gRPC service is declared by hand: every method takes and returns a
// google.protobuf.Struct holding the JSON form of the DTOs in this package,
// so generic tools such as grpcurl can call it through reflection.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "arena.v1alpha1.ArenaService"

// ProtoFile is the path the service descriptor is registered under
const ProtoFile = "arena/v1alpha1/arena.proto"

// Method names of the arena service
const (
	MethodListCatalog     = "ListCatalog"
	MethodStartBattle     = "StartBattle"
	MethodPlayerHit       = "PlayerHit"
	MethodPlayerUseSkill  = "PlayerUseSkill"
	MethodPassTurn        = "PassTurn"
	MethodGetBattleResult = "GetBattleResult"
	MethodEndBattle       = "EndBattle"
	MethodGetRecord       = "GetRecord"
	MethodListRecords     = "ListRecords"
)

// ArenaServiceServer is the server API for the arena service
type ArenaServiceServer interface {
	ListCatalog(context.Context, *structpb.Struct) (*structpb.Struct, error)
	StartBattle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PlayerHit(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PlayerUseSkill(context.Context, *structpb.Struct) (*structpb.Struct, error)
	PassTurn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBattleResult(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EndBattle(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRecords(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(ArenaServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(method string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ArenaServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ArenaServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ArenaServiceDesc describes the arena service for grpc.Server.RegisterService
var ArenaServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArenaServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: MethodListCatalog, Handler: unaryHandler(MethodListCatalog, ArenaServiceServer.ListCatalog)},
		{MethodName: MethodStartBattle, Handler: unaryHandler(MethodStartBattle, ArenaServiceServer.StartBattle)},
		{MethodName: MethodPlayerHit, Handler: unaryHandler(MethodPlayerHit, ArenaServiceServer.PlayerHit)},
		{MethodName: MethodPlayerUseSkill, Handler: unaryHandler(MethodPlayerUseSkill, ArenaServiceServer.PlayerUseSkill)},
		{MethodName: MethodPassTurn, Handler: unaryHandler(MethodPassTurn, ArenaServiceServer.PassTurn)},
		{MethodName: MethodGetBattleResult, Handler: unaryHandler(MethodGetBattleResult, ArenaServiceServer.GetBattleResult)},
		{MethodName: MethodEndBattle, Handler: unaryHandler(MethodEndBattle, ArenaServiceServer.EndBattle)},
		{MethodName: MethodGetRecord, Handler: unaryHandler(MethodGetRecord, ArenaServiceServer.GetRecord)},
		{MethodName: MethodListRecords, Handler: unaryHandler(MethodListRecords, ArenaServiceServer.ListRecords)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: ProtoFile,
}

// File_arena_v1alpha1_arena_proto describes the arena service for reflection
var File_arena_v1alpha1_arena_proto protoreflect.FileDescriptor

func init() {
	structType := "." + string((&structpb.Struct{}).ProtoReflect().Descriptor().FullName())

	methods := make([]*descriptorpb.MethodDescriptorProto, 0, len(ArenaServiceDesc.Methods))
	for _, m := range ArenaServiceDesc.Methods {
		methods = append(methods, &descriptorpb.MethodDescriptorProto{
			Name:       proto.String(m.MethodName),
			InputType:  proto.String(structType),
			OutputType: proto.String(structType),
		})
	}

	file := &descriptorpb.FileDescriptorProto{
		Name:       proto.String(ProtoFile),
		Package:    proto.String("arena.v1alpha1"),
		Dependency: []string{structpb.File_google_protobuf_struct_proto.Path()},
		Service: []*descriptorpb.ServiceDescriptorProto{{
			Name:   proto.String("ArenaService"),
			Method: methods,
		}},
		Syntax: proto.String("proto3"),
	}

	fd, err := protodesc.NewFile(file, protoregistry.GlobalFiles)
	if err != nil {
		panic("arena: invalid service descriptor: " + err.Error())
	}
	if err := protoregistry.GlobalFiles.RegisterFile(fd); err != nil {
		panic("arena: failed to register service descriptor: " + err.Error())
	}
	File_arena_v1alpha1_arena_proto = fd
}

// RegisterArenaServiceServer registers the arena service with a gRPC server
func RegisterArenaServiceServer(s grpc.ServiceRegistrar, srv ArenaServiceServer) {
	s.RegisterService(&ArenaServiceDesc, srv)
}
