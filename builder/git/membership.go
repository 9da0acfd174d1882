package git

import (
	"opencsg.com/github-team-membership/builder/git/membership"
	"opencsg.com/github-team-membership/builder/git/membership/github"
	"opencsg.com/github-team-membership/common/config"
)

func NewMemberShip(config *config.Config, creds membership.Credentials) (membership.TeamMembership, error) {
	c, err := github.NewClient(config, creds)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// NewMemberShipFactory returns a factory creating a fresh client per invocation.
func NewMemberShipFactory(config *config.Config) membership.ClientFactory {
	return func(creds membership.Credentials) (membership.TeamMembership, error) {
		return NewMemberShip(config, creds)
	}
}
