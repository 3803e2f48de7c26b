package http

import "call-audio-control/internal/channel"

type listResp struct {
	Channels []string `json:"channels"`
}

// streamReq is one frame sent by a websocket client.
type streamReq struct {
	ID        string         `json:"id"`
	Channel   string         `json:"channel"`
	Method    string         `json:"method"`
	Arguments map[string]any `json:"arguments,omitempty"`
}

func (r streamReq) toCall() channel.MethodCall {
	return channel.MethodCall{Method: r.Method, Arguments: r.Arguments}
}

// streamResp answers the frame with the same id.
type streamResp struct {
	ID string `json:"id"`
	channel.Response
}

const (
	codeChannelNotFound = "CHANNEL_NOT_FOUND"
	codeRateLimited     = "RATE_LIMITED"
)
