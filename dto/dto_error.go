package dto

type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type ErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

func Errors(msgs ...string) ErrorResponse {
	out := ErrorResponse{Errors: make([]FieldError, 0, len(msgs))}
	for _, m := range msgs {
		out.Errors = append(out.Errors, FieldError{Msg: m})
	}
	return out
}

func FieldErrors(errs ...FieldError) ErrorResponse {
	return ErrorResponse{Errors: errs}
}
