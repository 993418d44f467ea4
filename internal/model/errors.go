package model

import "fmt"

// Error codes surfaced through the API error envelope.
const (
	CodeInvalidInputs   = "INVALID_INPUTS"
	CodeInvalidForecast = "INVALID_FORECAST"
)

// InputError is a request- or startup-level validation failure. It carries a
// stable machine code plus a human message and is always returned, never
// panicked, so the engine boundary stays exception-free.
type InputError struct {
	Code    string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// InvalidInputs builds an InputError for bad project parameters.
func InvalidInputs(format string, args ...any) *InputError {
	return &InputError{Code: CodeInvalidInputs, Message: fmt.Sprintf(format, args...)}
}

// InvalidForecast builds an InputError for malformed market-forecast tables.
func InvalidForecast(format string, args ...any) *InputError {
	return &InputError{Code: CodeInvalidForecast, Message: fmt.Sprintf(format, args...)}
}
