package github

import (
	"context"

	"github.com/google/go-github/v66/github"
	"opencsg.com/github-team-membership/builder/git/membership"
)

func (c *Client) GetMembership(ctx context.Context, org, team, user string) (*membership.Membership, error) {
	m, _, err := withRetry(ctx, c, "get team membership", func() (*github.Membership, *github.Response, error) {
		return c.ghClient.Teams.GetTeamMembershipBySlug(ctx, org, team, user)
	})
	if err != nil {
		return nil, err
	}
	return toMembership(m), nil
}

func (c *Client) AddOrUpdateMembership(ctx context.Context, org, team, user string, role membership.Role) (*membership.Membership, error) {
	opt := &github.TeamAddTeamMembershipOptions{Role: string(role)}
	m, _, err := withRetry(ctx, c, "add or update team membership", func() (*github.Membership, *github.Response, error) {
		return c.ghClient.Teams.AddTeamMembershipBySlug(ctx, org, team, user, opt)
	})
	if err != nil {
		return nil, err
	}
	return toMembership(m), nil
}

func (c *Client) RemoveMembership(ctx context.Context, org, team, user string) error {
	_, _, err := withRetry(ctx, c, "remove team membership", func() (struct{}, *github.Response, error) {
		resp, err := c.ghClient.Teams.RemoveTeamMembershipBySlug(ctx, org, team, user)
		return struct{}{}, resp, err
	})
	return err
}

func (c *Client) ListMembers(ctx context.Context, org, team string, opt membership.ListOptions) ([]string, int, error) {
	ghOpt := &github.TeamListTeamMembersOptions{
		ListOptions: github.ListOptions{Page: opt.Page, PerPage: opt.PerPage},
	}
	users, resp, err := withRetry(ctx, c, "list team members", func() ([]*github.User, *github.Response, error) {
		return c.ghClient.Teams.ListTeamMembersBySlug(ctx, org, team, ghOpt)
	})
	if err != nil {
		return nil, 0, err
	}
	logins := make([]string, 0, len(users))
	for _, u := range users {
		logins = append(logins, u.GetLogin())
	}
	return logins, resp.NextPage, nil
}

func (c *Client) ListPendingInvitations(ctx context.Context, org, team string, opt membership.ListOptions) ([]string, int, error) {
	ghOpt := &github.ListOptions{Page: opt.Page, PerPage: opt.PerPage}
	invitations, resp, err := withRetry(ctx, c, "list pending team invitations", func() ([]*github.Invitation, *github.Response, error) {
		return c.ghClient.Teams.ListPendingTeamInvitationsBySlug(ctx, org, team, ghOpt)
	})
	if err != nil {
		return nil, 0, err
	}
	logins := make([]string, 0, len(invitations))
	for _, inv := range invitations {
		logins = append(logins, inv.GetLogin())
	}
	return logins, resp.NextPage, nil
}

func toMembership(m *github.Membership) *membership.Membership {
	return &membership.Membership{
		Role:  membership.Role(m.GetRole()),
		State: membership.State(m.GetState()),
	}
}
