package tableapi

import "fmt"

// BadRequestError is an HTTP 400 response. The backend attaches a msg field
// to these, which is surfaced verbatim to the user.
type BadRequestError struct {
	Msg string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("bad request: %s", e.Msg)
}

// RequestFailedError is any other non-2xx response. The body is not parsed
// for detail.
type RequestFailedError struct {
	Op         string
	StatusCode int
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("failed to %s: status %d", e.Op, e.StatusCode)
}

// InvalidResponseError is a 2xx create/update response that lacks the
// expected records[0] structure.
type InvalidResponseError struct {
	Op string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid response format on %s: no record returned", e.Op)
}
