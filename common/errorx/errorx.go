package errorx

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var errorCodeRegex = regexp.MustCompile(`^([A-Z]+-ERR)-(\d+)$`)

func IsValidErrorCode(code string) bool {
	return errorCodeRegex.MatchString(code)
}

type CoreError interface {
	Error() string
	Code() string
	CustomError() CustomError
}

// CustomError used as standard error struct
//
// prefix and code identify the failure kind, err carries the human readable cause.
// eg. ErrNotFound.Code() returns "MEMBER-ERR-1"
type CustomError struct {
	prefix  string
	code    int
	err     error
	context context
}

func (err CustomError) Error() string {
	if err.err == nil {
		return err.Code()
	}
	return err.Code() + ": " + err.err.Error()
}

func (err CustomError) Code() string {
	return err.prefix + "-" + fmt.Sprintf("%d", err.code)
}

func (err CustomError) CustomError() CustomError {
	return CustomError{prefix: err.prefix, code: err.code}
}

func (err CustomError) Unwrap() error {
	return err.err
}

// used for errors.Is to check error type
func (err CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	if !ok {
		return false
	}
	return err.prefix == t.prefix && err.code == t.code
}

func (err CustomError) Context() map[string]interface{} {
	return err.context
}

// Detail returns the error code followed by the sorted context pairs.
func (err CustomError) Detail() string {
	errorMsg := err.Code()
	if len(err.context) > 0 {
		var auxParts []string
		for key, value := range err.context {
			auxParts = append(auxParts, fmt.Sprintf("%s:%v", key, value))
		}
		sort.Strings(auxParts)
		errorMsg += " [" + strings.Join(auxParts, ", ") + "]"
	}
	return errorMsg
}

// Message returns the text meant for the caller: the wrapped cause of a
// CustomError without its code, or the error's own message otherwise.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ce CustomError
	if errors.As(err, &ce) && ce.err != nil {
		return ce.err.Error()
	}
	return err.Error()
}
