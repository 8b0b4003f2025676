package model

// Response is the envelope every RPC operation answers with. An empty
// response to a fetch means "not found".
type Response struct {
	Result      any    `json:"result,omitempty"`
	Error       string `json:"error,omitempty"`
	SyncSuccess *bool  `json:"syncSuccess,omitempty"`
}

func Result(v any) Response {
	return Response{Result: v}
}

func Failure(msg string) Response {
	return Response{Error: msg}
}

func Synced(ok bool) Response {
	return Response{SyncSuccess: &ok}
}
