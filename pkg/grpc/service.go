package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The reminder service speaks only well-known protobuf types, so the descriptor below is
// written by hand instead of generated. api/companion/v1/reminder.proto documents it.
const ServiceName = "companion.v1.ReminderService"

const (
	MethodTodaysReminders      = "TodaysReminders"
	MethodUpcomingReminders    = "UpcomingReminders"
	MethodMissedReminders      = "MissedReminders"
	MethodRemindersForElderly  = "RemindersForElderly"
	MethodMarkReminderComplete = "MarkReminderComplete"
	MethodSetLimiter           = "SetLimiter"
)

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

type ReminderServiceServer interface {
	TodaysReminders(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	UpcomingReminders(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	MissedReminders(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	RemindersForElderly(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MarkReminderComplete(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func newEmpty() *emptypb.Empty {
	return &emptypb.Empty{}
}

func newStruct() *structpb.Struct {
	return &structpb.Struct{}
}

func unaryHandler[T proto.Message](
	method string,
	newReq func() T,
	call func(ReminderServiceServer, context.Context, T) (*structpb.Struct, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ReminderServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ReminderServiceServer), ctx, req.(T))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var ReminderServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReminderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: MethodTodaysReminders,
			Handler:    unaryHandler(MethodTodaysReminders, newEmpty, ReminderServiceServer.TodaysReminders),
		},
		{
			MethodName: MethodUpcomingReminders,
			Handler:    unaryHandler(MethodUpcomingReminders, newEmpty, ReminderServiceServer.UpcomingReminders),
		},
		{
			MethodName: MethodMissedReminders,
			Handler:    unaryHandler(MethodMissedReminders, newEmpty, ReminderServiceServer.MissedReminders),
		},
		{
			MethodName: MethodRemindersForElderly,
			Handler:    unaryHandler(MethodRemindersForElderly, newStruct, ReminderServiceServer.RemindersForElderly),
		},
		{
			MethodName: MethodMarkReminderComplete,
			Handler:    unaryHandler(MethodMarkReminderComplete, newStruct, ReminderServiceServer.MarkReminderComplete),
		},
		{
			MethodName: MethodSetLimiter,
			Handler:    unaryHandler(MethodSetLimiter, newStruct, ReminderServiceServer.SetLimiter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "companion/v1/reminder.proto",
}

func RegisterReminderServiceServer(s grpc.ServiceRegistrar, srv ReminderServiceServer) {
	s.RegisterService(&ReminderServiceDesc, srv)
}

type ReminderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReminderServiceClient(cc grpc.ClientConnInterface) *ReminderServiceClient {
	return &ReminderServiceClient{cc: cc}
}

func (c *ReminderServiceClient) invoke(ctx context.Context, method string, in proto.Message, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReminderServiceClient) TodaysReminders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodTodaysReminders, in, opts...)
}

func (c *ReminderServiceClient) UpcomingReminders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodUpcomingReminders, in, opts...)
}

func (c *ReminderServiceClient) MissedReminders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodMissedReminders, in, opts...)
}

func (c *ReminderServiceClient) RemindersForElderly(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodRemindersForElderly, in, opts...)
}

func (c *ReminderServiceClient) MarkReminderComplete(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodMarkReminderComplete, in, opts...)
}

func (c *ReminderServiceClient) SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodSetLimiter, in, opts...)
}
