package model

type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func OK(data any) Response {
	return Response{Success: true, Data: data}
}

func OKMessage(msg string, data any) Response {
	return Response{Success: true, Message: msg, Data: data}
}

func Fail(msg string, errs ...string) Response {
	return Response{Success: false, Message: msg, Errors: errs}
}
