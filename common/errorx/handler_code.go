package errorx

import (
	"errors"
	"net/http"
)

// Error codes understood by the host that invokes the provider.
const (
	HandlerErrorCodeAlreadyExists           = "AlreadyExists"
	HandlerErrorCodeNotFound                = "NotFound"
	HandlerErrorCodeInvalidRequest          = "InvalidRequest"
	HandlerErrorCodeInvalidCredentials      = "InvalidCredentials"
	HandlerErrorCodeAccessDenied            = "AccessDenied"
	HandlerErrorCodeThrottling              = "Throttling"
	HandlerErrorCodeServiceInternalError    = "ServiceInternalError"
	HandlerErrorCodeGeneralServiceException = "GeneralServiceException"
)

// HandlerErrorCode maps a failure to the host error code. Lifecycle kinds map
// one to one; remote failures are classified by status.
func HandlerErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAlreadyExists):
		return HandlerErrorCodeAlreadyExists
	case errors.Is(err, ErrNotFound):
		return HandlerErrorCodeNotFound
	case errors.Is(err, ErrInvalidRequest):
		return HandlerErrorCodeInvalidRequest
	}

	var re *RemoteError
	if !errors.As(err, &re) {
		return HandlerErrorCodeGeneralServiceException
	}
	if re.RateLimited {
		return HandlerErrorCodeThrottling
	}
	switch s := re.StatusCode; {
	case s == http.StatusUnauthorized:
		return HandlerErrorCodeInvalidCredentials
	case s == http.StatusForbidden:
		return HandlerErrorCodeAccessDenied
	case s == http.StatusTooManyRequests:
		return HandlerErrorCodeThrottling
	case s == http.StatusBadRequest, s == http.StatusUnprocessableEntity:
		return HandlerErrorCodeInvalidRequest
	case s == http.StatusNotFound:
		return HandlerErrorCodeNotFound
	case s >= http.StatusInternalServerError:
		return HandlerErrorCodeServiceInternalError
	}
	return HandlerErrorCodeGeneralServiceException
}
