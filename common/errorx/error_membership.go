package errorx

import (
	"errors"
	"fmt"
)

const errMemberPrefix = "MEMBER-ERR"

const (
	alreadyExists = iota
	notFound
	remoteAPIFailure
	invalidRequest
)

var (
	// --- MEMBER-ERR-xxx: team membership lifecycle ---

	// create invoked for a membership that already exists
	ErrAlreadyExists error = CustomError{prefix: errMemberPrefix, code: alreadyExists}
	// update or delete invoked for a membership that does not exist
	ErrNotFound error = CustomError{prefix: errMemberPrefix, code: notFound}
	// any failure reported by the remote API or its transport
	ErrRemoteAPIFailure error = CustomError{prefix: errMemberPrefix, code: remoteAPIFailure}
	// the request can not be served as given, e.g. missing credentials
	ErrInvalidRequest error = CustomError{prefix: errMemberPrefix, code: invalidRequest}
)

// RemoteError is a normalized remote API failure.
type RemoteError struct {
	StatusCode  int
	Message     string
	RateLimited bool
	err         error
}

func NewRemoteError(statusCode int, message string, cause error) *RemoteError {
	return &RemoteError{StatusCode: statusCode, Message: message, err: cause}
}

func (e *RemoteError) Error() string {
	return e.Message
}

func (e *RemoteError) Unwrap() error {
	return e.err
}

func AlreadyExists(typeName, identifier string) error {
	return CustomError{
		prefix:  errMemberPrefix,
		code:    alreadyExists,
		err:     fmt.Errorf("resource of type '%s' with identifier '%s' already exists", typeName, identifier),
		context: Ctx().Set("type_name", typeName).Set("identifier", identifier),
	}
}

func NotFound(typeName, identifier string) error {
	return CustomError{
		prefix:  errMemberPrefix,
		code:    notFound,
		err:     fmt.Errorf("resource of type '%s' with identifier '%s' was not found", typeName, identifier),
		context: Ctx().Set("type_name", typeName).Set("identifier", identifier),
	}
}

func RemoteAPIFailure(err *RemoteError, ctx context) error {
	return CustomError{
		prefix:  errMemberPrefix,
		code:    remoteAPIFailure,
		err:     err,
		context: ctx,
	}
}

func InvalidRequest(msg string, ctx context) error {
	return CustomError{
		prefix:  errMemberPrefix,
		code:    invalidRequest,
		err:     errors.New(msg),
		context: ctx,
	}
}
