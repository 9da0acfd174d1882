package component

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"opencsg.com/github-team-membership/builder/git"
	"opencsg.com/github-team-membership/builder/git/membership"
	bldprometheus "opencsg.com/github-team-membership/builder/prometheus"
	"opencsg.com/github-team-membership/common/config"
	"opencsg.com/github-team-membership/common/errorx"
	"opencsg.com/github-team-membership/common/types"
)

// MembershipComponent reconciles the desired state of a GitHub team
// membership with the remote API. It holds no state between invocations.
type MembershipComponent interface {
	Create(ctx context.Context, model types.Membership) (*types.Membership, error)
	Read(ctx context.Context, model types.Membership) (*types.Membership, error)
	Update(ctx context.Context, model types.Membership) (*types.Membership, error)
	Delete(ctx context.Context, model types.Membership) error
	List(ctx context.Context, model types.Membership) ([]types.Membership, error)
	// Handle dispatches a host request to the matching verb and folds the
	// result into a progress event.
	Handle(ctx context.Context, req types.HandlerRequest) types.ProgressEvent
}

type membershipComponentImpl struct {
	newClient    membership.ClientFactory
	pageSize     int
	parallelList bool
}

func NewMembershipComponent(config *config.Config) (MembershipComponent, error) {
	pageSize := config.GitHub.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &membershipComponentImpl{
		newClient:    git.NewMemberShipFactory(config),
		pageSize:     pageSize,
		parallelList: config.GitHub.ParallelList,
	}, nil
}

func (c *membershipComponentImpl) Create(ctx context.Context, model types.Membership) (*types.Membership, error) {
	return c.create(ctx, model, model.PrimaryIdentifier())
}

// create fails with a conflict naming logicalID when the membership exists.
func (c *membershipComponentImpl) create(ctx context.Context, model types.Membership, logicalID string) (*types.Membership, error) {
	client, err := c.client(model)
	if err != nil {
		return nil, err
	}
	if _, exists := c.assertMembershipExist(ctx, client, model); exists {
		return nil, errorx.AlreadyExists(types.MembershipTypeName, logicalID)
	}
	return c.addOrUpdate(ctx, client, model)
}

func (c *membershipComponentImpl) Read(ctx context.Context, model types.Membership) (*types.Membership, error) {
	client, err := c.client(model)
	if err != nil {
		return nil, err
	}
	// no existence probe, the read itself answers that question
	m, err := client.GetMembership(ctx, model.Organization, model.Team, model.Username)
	if err != nil {
		return nil, c.handleError(ctx, "get membership", model, err)
	}
	return project(model, m), nil
}

func (c *membershipComponentImpl) Update(ctx context.Context, model types.Membership) (*types.Membership, error) {
	return c.update(ctx, model, model.PrimaryIdentifier())
}

func (c *membershipComponentImpl) update(ctx context.Context, model types.Membership, logicalID string) (*types.Membership, error) {
	client, err := c.client(model)
	if err != nil {
		return nil, err
	}
	if _, exists := c.assertMembershipExist(ctx, client, model); !exists {
		return nil, errorx.NotFound(types.MembershipTypeName, logicalID)
	}
	return c.addOrUpdate(ctx, client, model)
}

func (c *membershipComponentImpl) Delete(ctx context.Context, model types.Membership) error {
	return c.remove(ctx, model, model.PrimaryIdentifier())
}

func (c *membershipComponentImpl) remove(ctx context.Context, model types.Membership, logicalID string) error {
	client, err := c.client(model)
	if err != nil {
		return err
	}
	if _, exists := c.assertMembershipExist(ctx, client, model); !exists {
		return errorx.NotFound(types.MembershipTypeName, logicalID)
	}
	err = client.RemoveMembership(ctx, model.Organization, model.Team, model.Username)
	if err != nil {
		return c.handleError(ctx, "remove membership", model, err)
	}
	return nil
}

// List returns every active member followed by every pending invitee of the
// team. State comes from the endpoint a login was listed by.
func (c *membershipComponentImpl) List(ctx context.Context, model types.Membership) ([]types.Membership, error) {
	client, err := c.client(model)
	if err != nil {
		return nil, err
	}

	var active, pending []string
	if c.parallelList {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			active, err = c.drain(gctx, client.ListMembers, model.Organization, model.Team)
			return err
		})
		g.Go(func() error {
			var err error
			pending, err = c.drain(gctx, client.ListPendingInvitations, model.Organization, model.Team)
			return err
		})
		err = g.Wait()
	} else {
		active, err = c.drain(ctx, client.ListMembers, model.Organization, model.Team)
		if err == nil {
			pending, err = c.drain(ctx, client.ListPendingInvitations, model.Organization, model.Team)
		}
	}
	if err != nil {
		return nil, c.handleError(ctx, "list memberships", model, err)
	}

	models := make([]types.Membership, 0, len(active)+len(pending))
	for _, login := range active {
		models = append(models, listed(model, login, types.MembershipStateActive))
	}
	for _, login := range pending {
		models = append(models, listed(model, login, types.MembershipStatePending))
	}
	return models, nil
}

func (c *membershipComponentImpl) Handle(ctx context.Context, req types.HandlerRequest) types.ProgressEvent {
	start := time.Now()
	event := c.handle(ctx, req)
	event.CallbackContext = req.CallbackContext
	bldprometheus.ObserveOperation(string(req.Action), string(event.Status), event.ErrorCode, time.Since(start).Seconds())
	return event
}

func (c *membershipComponentImpl) handle(ctx context.Context, req types.HandlerRequest) types.ProgressEvent {
	if req.DesiredResourceState == nil {
		return failedEvent(errorx.InvalidRequest("desiredResourceState is required", nil))
	}
	model := *req.DesiredResourceState
	if (req.Action == types.ActionCreate || req.Action == types.ActionUpdate) && model.Role != "" && !model.Role.Valid() {
		return failedEvent(errorx.InvalidRequest(fmt.Sprintf("invalid role '%s', expected member or maintainer", model.Role), nil))
	}
	// identity is immutable, a changed org, team or username needs a replacement
	if req.Action == types.ActionUpdate && req.PreviousResourceState != nil &&
		req.PreviousResourceState.PrimaryIdentifier() != model.PrimaryIdentifier() {
		return failedEvent(errorx.InvalidRequest(fmt.Sprintf("identity can not be updated from '%s' to '%s'",
			req.PreviousResourceState.PrimaryIdentifier(), model.PrimaryIdentifier()),
			errorx.Ctx().Set("identifier", model.PrimaryIdentifier())))
	}
	logicalID := req.LogicalResourceIdentifier
	if logicalID == "" {
		logicalID = model.PrimaryIdentifier()
	}

	var (
		m   *types.Membership
		err error
	)
	switch req.Action {
	case types.ActionCreate:
		m, err = c.create(ctx, model, logicalID)
	case types.ActionRead:
		m, err = c.Read(ctx, model)
	case types.ActionUpdate:
		m, err = c.update(ctx, model, logicalID)
	case types.ActionDelete:
		if err = c.remove(ctx, model, logicalID); err != nil {
			return failedEvent(err)
		}
		return types.SuccessEvent(nil)
	case types.ActionList:
		models, err := c.List(ctx, model)
		if err != nil {
			return failedEvent(err)
		}
		return types.SuccessListEvent(models)
	default:
		return failedEvent(errorx.InvalidRequest(fmt.Sprintf("unsupported action '%s'", req.Action), nil))
	}
	if err != nil {
		return failedEvent(err)
	}
	redacted := m.Redacted()
	return types.SuccessEvent(&redacted)
}

func (c *membershipComponentImpl) client(model types.Membership) (membership.TeamMembership, error) {
	if model.GitHubAccess == nil || model.GitHubAccess.AccessToken == "" {
		return nil, errorx.InvalidRequest("GitHubAccess.AccessToken is required",
			errorx.Ctx().Set("identifier", model.PrimaryIdentifier()))
	}
	client, err := c.newClient(membership.Credentials{
		Token:     model.GitHubAccess.AccessToken,
		UserAgent: model.GitHubAccess.UserAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create github client, caused by:%w", err)
	}
	return client, nil
}

// assertMembershipExist probes the membership with a read. Any failure, not
// only a 404, counts as "not confirmed" and is not returned.
func (c *membershipComponentImpl) assertMembershipExist(ctx context.Context, client membership.TeamMembership, model types.Membership) (*membership.Membership, bool) {
	m, err := client.GetMembership(ctx, model.Organization, model.Team, model.Username)
	if err != nil {
		slog.DebugContext(ctx, "membership existence not confirmed",
			slog.String("identifier", model.PrimaryIdentifier()), slog.Any("error", err))
		return nil, false
	}
	return m, true
}

func (c *membershipComponentImpl) addOrUpdate(ctx context.Context, client membership.TeamMembership, model types.Membership) (*types.Membership, error) {
	m, err := client.AddOrUpdateMembership(ctx, model.Organization, model.Team, model.Username, membership.Role(model.Role))
	if err != nil {
		return nil, c.handleError(ctx, "add or update membership", model, err)
	}
	return project(model, m), nil
}

type listPageFunc func(ctx context.Context, org, team string, opt membership.ListOptions) ([]string, int, error)

// drain follows the pages of fetch until the last one.
func (c *membershipComponentImpl) drain(ctx context.Context, fetch listPageFunc, org, team string) ([]string, error) {
	var logins []string
	opt := membership.ListOptions{Page: 1, PerPage: c.pageSize}
	for {
		page, next, err := fetch(ctx, org, team, opt)
		if err != nil {
			return nil, err
		}
		logins = append(logins, page...)
		if next <= opt.Page {
			return logins, nil
		}
		opt.Page = next
	}
}

// handleError normalizes a remote failure. The message is the per-field
// messages joined by newlines when the API returned any, the error's own
// message otherwise.
func (c *membershipComponentImpl) handleError(ctx context.Context, op string, model types.Membership, err error) error {
	remoteErr := errorx.NewRemoteError(0, err.Error(), err)
	var apiErr *membership.APIError
	if errors.As(err, &apiErr) {
		remoteErr.StatusCode = apiErr.StatusCode
		remoteErr.RateLimited = apiErr.RateLimited
		if msgs := apiErr.FieldMessages(); len(msgs) > 0 {
			remoteErr.Message = strings.Join(msgs, "\n")
		} else {
			remoteErr.Message = apiErr.Error()
		}
	}

	slog.ErrorContext(ctx, "github membership request failed", slog.String("op", op),
		slog.Group("membership",
			slog.String("org", model.Organization), slog.String("team", model.Team), slog.String("username", model.Username),
		),
		slog.Int("status", remoteErr.StatusCode), slog.String("message", remoteErr.Message),
	)
	return errorx.RemoteAPIFailure(remoteErr, errorx.Ctx().
		Set("op", op).
		Set("org", model.Organization).
		Set("team", model.Team).
		Set("username", model.Username))
}

// project copies the remote role and state onto the model, nothing else.
func project(model types.Membership, m *membership.Membership) *types.Membership {
	model.Role = types.MembershipRole(m.Role)
	model.State = types.MembershipState(m.State)
	return &model
}

func listed(model types.Membership, login string, state types.MembershipState) types.Membership {
	return types.Membership{
		Organization: model.Organization,
		Team:         model.Team,
		Username:     login,
		State:        state,
	}
}

func failedEvent(err error) types.ProgressEvent {
	return types.FailedEvent(errorx.HandlerErrorCode(err), errorx.Message(err))
}
