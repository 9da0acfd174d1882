package types

import "strings"

// MembershipTypeName is the resource type name reported in lifecycle failures.
const MembershipTypeName = "GitHub::Teams::Membership"

type MembershipRole string

const (
	MembershipRoleMember     MembershipRole = "member"
	MembershipRoleMaintainer MembershipRole = "maintainer"
)

func (r MembershipRole) Valid() bool {
	return r == MembershipRoleMember || r == MembershipRoleMaintainer
}

type MembershipState string

const (
	// invitation accepted
	MembershipStateActive MembershipState = "active"
	// invited, not yet accepted
	MembershipStatePending MembershipState = "pending"
)

// Credentials authenticate a single invocation against the GitHub API.
type Credentials struct {
	AccessToken string `json:"AccessToken"`
	UserAgent   string `json:"UserAgent,omitempty"`
}

// Membership is the desired (and, on success, observed) state of one user's
// membership in one team of one organization.
type Membership struct {
	Organization string          `json:"Organization"`
	Team         string          `json:"Team"`
	Username     string          `json:"Username"`
	Role         MembershipRole  `json:"Role,omitempty"`
	State        MembershipState `json:"State,omitempty"`
	GitHubAccess *Credentials    `json:"GitHubAccess,omitempty"`
}

// PrimaryIdentifier is the logical id of the membership: org/team/username.
func (m Membership) PrimaryIdentifier() string {
	return strings.Join([]string{m.Organization, m.Team, m.Username}, "/")
}

// Redacted returns a copy without credentials, safe to hand back to the caller.
func (m Membership) Redacted() Membership {
	m.GitHubAccess = nil
	return m
}
