package commonModels

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorKind string

const (
	KindValidation     ErrorKind = "VALIDATION"
	KindAuthentication ErrorKind = "AUTHENTICATION"
	KindNotConnected   ErrorKind = "NOT_CONNECTED"
	KindUpstream       ErrorKind = "UPSTREAM"
	KindUpload         ErrorKind = "UPLOAD"
)

const (
	MsgCustomerIDRequired = "Customer ID is required"
	MsgInvalidService     = "Invalid service"
	MsgInvalidUserID      = "Invalid user ID"
	MsgFileIDsRequired    = "File IDs are required"
)

var ErrNotConnected = errors.New("no connected data source")

// AppError is returned by every component. Kind drives the http status.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) error {
	return &AppError{Kind: KindValidation, Message: message}
}

func Authentication(message string, err error) error {
	return &AppError{Kind: KindAuthentication, Message: message, Err: err}
}

func NotConnected(service string) error {
	return &AppError{
		Kind:    KindNotConnected,
		Message: fmt.Sprintf("No connected data source for %s", service),
		Err:     ErrNotConnected,
	}
}

func Upstream(message string, err error) error {
	return &AppError{Kind: KindUpstream, Message: message, Err: err}
}

func Upload(message string, err error) error {
	return &AppError{Kind: KindUpload, Message: message, Err: err}
}

// KindOf returns the kind of err; unknown errors count as upstream failures.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUpstream
}

// MessageOf returns the caller facing message of err.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Upstream service error"
}

// RequireCustomerID is the guard every scoped operation runs before any external call.
func RequireCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return Validation(MsgCustomerIDRequired)
	}
	return nil
}
