// Package v1alpha1 serves the geoquest battle gRPC service. Messages are
// google.protobuf.Struct documents so the service needs no generated code.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "geoquest.v1alpha1.BattleService"

// Full method names, usable with grpc.ClientConn.Invoke
const (
	MethodStartEncounter   = "/" + ServiceName + "/StartEncounter"
	MethodSubmitAnswer     = "/" + ServiceName + "/SubmitAnswer"
	MethodGetEncounter     = "/" + ServiceName + "/GetEncounter"
	MethodAbandonEncounter = "/" + ServiceName + "/AbandonEncounter"
	MethodListRegions      = "/" + ServiceName + "/ListRegions"
	MethodGetDex           = "/" + ServiceName + "/GetDex"
	MethodResetDex         = "/" + ServiceName + "/ResetDex"
)

// BattleServiceServer is the server API for the battle service
type BattleServiceServer interface {
	StartEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SubmitAnswer(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AbandonEncounter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListRegions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetDex(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ResetDex(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterBattleServiceServer registers srv with the gRPC server
func RegisterBattleServiceServer(s grpc.ServiceRegistrar, srv BattleServiceServer) {
	s.RegisterService(&BattleServiceDesc, srv)
}

type unaryMethod func(BattleServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func methodHandler(fullMethod string, call unaryMethod) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(BattleServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(BattleServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// BattleServiceDesc describes the battle service for grpc.Server
var BattleServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BattleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "StartEncounter",
			Handler:    methodHandler(MethodStartEncounter, BattleServiceServer.StartEncounter),
		},
		{
			MethodName: "SubmitAnswer",
			Handler:    methodHandler(MethodSubmitAnswer, BattleServiceServer.SubmitAnswer),
		},
		{
			MethodName: "GetEncounter",
			Handler:    methodHandler(MethodGetEncounter, BattleServiceServer.GetEncounter),
		},
		{
			MethodName: "AbandonEncounter",
			Handler:    methodHandler(MethodAbandonEncounter, BattleServiceServer.AbandonEncounter),
		},
		{
			MethodName: "ListRegions",
			Handler:    methodHandler(MethodListRegions, BattleServiceServer.ListRegions),
		},
		{
			MethodName: "GetDex",
			Handler:    methodHandler(MethodGetDex, BattleServiceServer.GetDex),
		},
		{
			MethodName: "ResetDex",
			Handler:    methodHandler(MethodResetDex, BattleServiceServer.ResetDex),
		},
	},
	Streams: []grpc.StreamDesc{},
	// No compiled descriptor is registered, so reflection lists the service name only.
	Metadata: "",
}

// BattleServiceClient is a thin client for the battle service
type BattleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewBattleServiceClient creates a client over an established connection
func NewBattleServiceClient(cc grpc.ClientConnInterface) *BattleServiceClient {
	return &BattleServiceClient{cc: cc}
}

// Call invokes one of the Method* full method names
func (c *BattleServiceClient) Call(
	ctx context.Context,
	method string,
	req map[string]any,
	opts ...grpc.CallOption,
) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(req)
	if err != nil {
		return nil, err
	}

	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
