package membership

import (
	"context"
	"fmt"
	"strings"
)

// Membership is the remote view of one user's membership in a team.
type Membership struct {
	Role  Role
	State State
}

type ListOptions struct {
	// 1-based page number, 0 means the first page
	Page    int
	PerPage int
}

// TeamMembership manages the membership of users in teams of an organization
// on a remote git hosting service. Teams are addressed by slug.
type TeamMembership interface {
	GetMembership(ctx context.Context, org, team, user string) (*Membership, error)
	// AddOrUpdateMembership is idempotent: it invites the user when missing and
	// sets the role otherwise.
	AddOrUpdateMembership(ctx context.Context, org, team, user string, role Role) (*Membership, error)
	RemoveMembership(ctx context.Context, org, team, user string) error
	// ListMembers returns one page of active member logins and the next page
	// number, 0 when this was the last page.
	ListMembers(ctx context.Context, org, team string, opt ListOptions) ([]string, int, error)
	// ListPendingInvitations returns one page of invited, not yet accepted, logins.
	ListPendingInvitations(ctx context.Context, org, team string, opt ListOptions) ([]string, int, error)
}

type Credentials struct {
	Token     string
	UserAgent string
}

// ClientFactory builds a TeamMembership bound to one set of credentials.
type ClientFactory func(creds Credentials) (TeamMembership, error)

type FieldError struct {
	Resource string
	Field    string
	Code     string
	Message  string
}

// APIError is returned by TeamMembership implementations when the remote
// service answered with an error or could not be reached (StatusCode 0).
type APIError struct {
	StatusCode  int
	Message     string
	Errors      []FieldError
	RateLimited bool
	Err         error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// FieldMessages returns the per-field messages, or nil if there are none. A
// field error without a message is described by its code, field and resource,
// in the wording GitHub clients use for such errors.
func (e *APIError) FieldMessages() []string {
	var msgs []string
	for _, fe := range e.Errors {
		msg := fe.Message
		if msg == "" {
			msg = strings.TrimSpace(fmt.Sprintf("%s error caused by %s field on %s resource", fe.Code, fe.Field, fe.Resource))
		}
		msgs = append(msgs, msg)
	}
	return msgs
}
