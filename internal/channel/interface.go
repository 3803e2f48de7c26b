package channel

import "context"

// Handler answers method calls for one channel.
type Handler interface {
	HandleMethodCall(ctx context.Context, call MethodCall) Response
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, call MethodCall) Response

func (f HandlerFunc) HandleMethodCall(ctx context.Context, call MethodCall) Response {
	return f(ctx, call)
}
