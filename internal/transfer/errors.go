package transfer

import "net/http"

// Kind classifies a failed operation. Its string value is the client-visible
// prefix of the error message.
type Kind string

const (
	// KindInvalidInput covers malformed or missing fields, non-image types,
	// and confirmation of an object that never arrived in storage.
	KindInvalidInput Kind = "Bad Request"
	// KindPayloadTooLarge is returned when the declared size exceeds the ceiling.
	KindPayloadTooLarge Kind = "Payload Too Large"
	// KindNotFound is returned for unknown or expired transfer and image ids.
	KindNotFound Kind = "Not Found"
	// KindInternal covers any store or gateway failure not otherwise classified.
	KindInternal Kind = "Internal Error"
)

// Error is the single failure type returned by every coordinator operation.
// The underlying cause, if any, is kept for logging and never serialized.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindPayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func invalidInput(msg string) *Error {
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func payloadTooLarge(msg string) *Error {
	return &Error{Kind: KindPayloadTooLarge, Message: msg}
}

func notFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func internalError(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, cause: cause}
}
