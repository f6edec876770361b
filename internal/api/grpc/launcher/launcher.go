// Package launcher declares the callable procedures the game launcher invokes.
// Requests and responses are protobuf well-known types, so the services are
// described by hand instead of generated from a .proto file.
package launcher

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	AuthServiceName    = "spacegame.v1.Auth"
	AccountServiceName = "spacegame.v1.Account"
)

const (
	Auth_SignUp_FullMethodName      = "/spacegame.v1.Auth/SignUp"
	Auth_SignIn_FullMethodName      = "/spacegame.v1.Auth/SignIn"
	Auth_Refresh_FullMethodName     = "/spacegame.v1.Auth/Refresh"
	Auth_SignOut_FullMethodName     = "/spacegame.v1.Auth/SignOut"
	Auth_CheckHandle_FullMethodName = "/spacegame.v1.Auth/CheckHandle"

	Account_GetProfile_FullMethodName    = "/spacegame.v1.Account/GetProfile"
	Account_SetHandle_FullMethodName     = "/spacegame.v1.Account/SetHandle"
	Account_DeleteAccount_FullMethodName = "/spacegame.v1.Account/DeleteAccount"
)

// AuthServer is the public part of the API: nothing here requires a session.
type AuthServer interface {
	SignUp(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SignIn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Refresh(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	SignOut(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	CheckHandle(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// AccountServer holds the procedures that must be called while authenticated.
type AccountServer interface {
	GetProfile(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SetHandle(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	DeleteAccount(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

func unary[Req any, Resp any](fullMethod string, call func(srv any, ctx context.Context, in *Req) (Resp, error)) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv, ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv, ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var Auth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SignUp",
			Handler: unary(Auth_SignUp_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.(AuthServer).SignUp(ctx, in)
			}),
		},
		{
			MethodName: "SignIn",
			Handler: unary(Auth_SignIn_FullMethodName, func(srv any, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
				return srv.(AuthServer).SignIn(ctx, in)
			}),
		},
		{
			MethodName: "Refresh",
			Handler: unary(Auth_Refresh_FullMethodName, func(srv any, ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
				return srv.(AuthServer).Refresh(ctx, in)
			}),
		},
		{
			MethodName: "SignOut",
			Handler: unary(Auth_SignOut_FullMethodName, func(srv any, ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
				return srv.(AuthServer).SignOut(ctx, in)
			}),
		},
		{
			MethodName: "CheckHandle",
			Handler: unary(Auth_CheckHandle_FullMethodName, func(srv any, ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
				return srv.(AuthServer).CheckHandle(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

var Account_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AccountServiceName,
	HandlerType: (*AccountServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetProfile",
			Handler: unary(Account_GetProfile_FullMethodName, func(srv any, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
				return srv.(AccountServer).GetProfile(ctx, in)
			}),
		},
		{
			MethodName: "SetHandle",
			Handler: unary(Account_SetHandle_FullMethodName, func(srv any, ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
				return srv.(AccountServer).SetHandle(ctx, in)
			}),
		},
		{
			MethodName: "DeleteAccount",
			Handler: unary(Account_DeleteAccount_FullMethodName, func(srv any, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
				return srv.(AccountServer).DeleteAccount(ctx, in)
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&Auth_ServiceDesc, srv)
}

func RegisterAccountServer(s grpc.ServiceRegistrar, srv AccountServer) {
	s.RegisterService(&Account_ServiceDesc, srv)
}
