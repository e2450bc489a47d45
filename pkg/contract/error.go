package contract

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorCode int32

const (
	InternalError ErrorCode = iota
	BadRequest
	InvalidParameterValue
	EndpointNotFound
	ResourceDoesNotExist
	ServiceUnderMaintenance
)

func (c ErrorCode) String() string {
	switch c {
	case InternalError:
		return "INTERNAL_ERROR"
	case BadRequest:
		return "BAD_REQUEST"
	case InvalidParameterValue:
		return "INVALID_PARAMETER_VALUE"
	case EndpointNotFound:
		return "ENDPOINT_NOT_FOUND"
	case ResourceDoesNotExist:
		return "RESOURCE_DOES_NOT_EXIST"
	case ServiceUnderMaintenance:
		return "SERVICE_UNDER_MAINTENANCE"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int32(c))
	}
}

type Error struct {
	Code    ErrorCode
	Message string
	Inner   error
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewErrorWith(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Inner:   err,
	}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s", msg, e.Inner)
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.Inner
}

// Details of the inner error are part of the message sent to the client.
func (e *Error) MarshalJSON() ([]byte, error) {
	message := e.Message
	if e.Inner != nil {
		message = fmt.Sprintf("%s: %s", message, e.Inner)
	}

	return json.Marshal(struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}{
		ErrorCode: e.Code.String(),
		Message:   message,
	})
}

func (e *Error) StatusCode() int {
	//nolint:exhaustive
	switch e.Code {
	case BadRequest, InvalidParameterValue:
		return http.StatusBadRequest
	case EndpointNotFound, ResourceDoesNotExist:
		return http.StatusNotFound
	case ServiceUnderMaintenance:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
