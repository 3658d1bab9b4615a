package types

// ErrorEnvelope is the body returned when the guard rejects a request.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Type    string         `json:"type"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func NewErrorEnvelope(errorType, code, message string) ErrorEnvelope {
	return ErrorEnvelope{
		Error: ErrorBody{
			Type:    errorType,
			Code:    code,
			Message: message,
			Details: make(map[string]any),
		},
	}
}

// ApiError is the flat body used by the admin API and the upstream forwarder.
type ApiError struct {
	Error string `json:"error"`
}
