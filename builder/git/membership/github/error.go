package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/google/go-github/v66/github"
	"opencsg.com/github-team-membership/builder/git/membership"
)

// withRetry runs fn, retrying transient failures, and translates the final
// error into a *membership.APIError.
func withRetry[T any](ctx context.Context, c *Client, op string, fn func() (T, *github.Response, error)) (T, *github.Response, error) {
	var (
		result T
		resp   *github.Response
	)
	err := retry.Do(
		func() error {
			var err error
			result, resp, err = fn()
			return err
		},
		retry.Attempts(c.retryAttempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			slog.WarnContext(ctx, "github request failed, retrying",
				slog.String("op", op), slog.Uint64("attempt", uint64(n)), slog.Any("error", err))
		}),
	)
	if err != nil {
		return result, resp, toAPIError(err)
	}
	return result, resp, nil
}

func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var rle *github.RateLimitError
	var arle *github.AbuseRateLimitError
	if errors.As(err, &rle) || errors.As(err, &arle) {
		return false
	}
	var er *github.ErrorResponse
	if errors.As(err, &er) {
		return statusCode(er.Response) >= http.StatusInternalServerError
	}
	// transport level failure, nothing reached the API
	return true
}

func toAPIError(err error) error {
	var rle *github.RateLimitError
	if errors.As(err, &rle) {
		return &membership.APIError{
			StatusCode:  statusCode(rle.Response),
			Message:     rle.Message,
			RateLimited: true,
			Err:         err,
		}
	}
	var arle *github.AbuseRateLimitError
	if errors.As(err, &arle) {
		return &membership.APIError{
			StatusCode:  statusCode(arle.Response),
			Message:     arle.Message,
			RateLimited: true,
			Err:         err,
		}
	}
	var er *github.ErrorResponse
	if errors.As(err, &er) {
		apiErr := &membership.APIError{
			StatusCode: statusCode(er.Response),
			Message:    er.Message,
			Err:        err,
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(apiErr.StatusCode)
		}
		for _, e := range er.Errors {
			apiErr.Errors = append(apiErr.Errors, membership.FieldError{
				Resource: e.Resource,
				Field:    e.Field,
				Code:     e.Code,
				Message:  e.Message,
			})
		}
		return apiErr
	}
	return &membership.APIError{Message: err.Error(), Err: err}
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
