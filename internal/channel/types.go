package channel

// MethodCall is one invocation delivered over a named channel.
type MethodCall struct {
	Method    string         `json:"method"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

// Bool returns the boolean argument key. ok is false when it is missing or not a bool.
func (c MethodCall) Bool(key string) (v bool, ok bool) {
	v, ok = c.Arguments[key].(bool)
	return v, ok
}

// String returns the string argument key. ok is false when it is missing or not a string.
func (c MethodCall) String(key string) (v string, ok bool) {
	v, ok = c.Arguments[key].(string)
	return v, ok
}

// Error is a structured failure returned to the caller.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Response carries exactly one of a result, an error, or not-implemented.
type Response struct {
	Result         any    `json:"result"`
	Error          *Error `json:"error,omitempty"`
	NotImplemented bool   `json:"not_implemented,omitempty"`
}

// Common error codes.
const (
	CodeInvalidArgs = "INVALID_ARGS"
)

func Success(result any) Response {
	return Response{Result: result}
}

func Failure(code, message string, details any) Response {
	return Response{Error: &Error{Code: code, Message: message, Details: details}}
}

func NotImplemented() Response {
	return Response{NotImplemented: true}
}
