package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	mockcomponent "opencsg.com/github-team-membership/_mocks/opencsg.com/github-team-membership/component"
	"opencsg.com/github-team-membership/common/types"
)

type MembershipTester struct {
	*GinTester
	handler *MembershipHandler
	mocks   struct {
		membership *mockcomponent.MockMembershipComponent
	}
}

func NewMembershipTester(t *testing.T) *MembershipTester {
	tester := &MembershipTester{GinTester: NewGinTester()}
	tester.mocks.membership = mockcomponent.NewMockMembershipComponent(t)
	tester.handler = &MembershipHandler{membership: tester.mocks.membership}
	return tester
}

func testMembership() *types.Membership {
	return &types.Membership{
		Organization: "acme",
		Team:         "eng",
		Username:     "bob",
		Role:         types.MembershipRoleMember,
		GitHubAccess: &types.Credentials{AccessToken: "ghp_token"},
	}
}

func TestMembershipHandler_Invoke(t *testing.T) {
	tester := NewMembershipTester(t)
	tester.Handler(tester.handler.Invoke)

	model := testMembership()
	redacted := model.Redacted()
	redacted.State = types.MembershipStatePending
	event := types.SuccessEvent(&redacted)
	event.CallbackContext = types.CallbackContext{"attempt": float64(1)}

	tester.mocks.membership.EXPECT().Handle(tester.ctx, types.HandlerRequest{
		Action:               types.ActionCreate,
		DesiredResourceState: model,
		CallbackContext:      types.CallbackContext{"attempt": float64(1)},
	}).Return(event)

	tester.WithParam("action", "create").WithBody(t, types.HandlerRequest{
		DesiredResourceState: model,
		CallbackContext:      types.CallbackContext{"attempt": 1},
	}).Execute()

	tester.ResponseEq(t, http.StatusOK, tester.OKText, event)
}

func TestMembershipHandler_InvokeFailedEvent(t *testing.T) {
	tester := NewMembershipTester(t)
	tester.Handler(tester.handler.Invoke)

	model := testMembership()
	event := types.FailedEvent("NotFound", "resource of type 'GitHub::Teams::Membership' with identifier 'acme/eng/bob' was not found")
	tester.mocks.membership.EXPECT().Handle(tester.ctx, types.HandlerRequest{
		Action:               types.ActionUpdate,
		DesiredResourceState: model,
	}).Return(event)

	tester.WithParam("action", "update").WithBody(t, types.HandlerRequest{
		Action:               types.ActionUpdate,
		DesiredResourceState: model,
	}).Execute()

	tester.ResponseEq(t, http.StatusOK, tester.OKText, event)
}

func TestMembershipHandler_InvokeActionMismatch(t *testing.T) {
	tester := NewMembershipTester(t)
	tester.Handler(tester.handler.Invoke)

	tester.WithParam("action", "delete").WithBody(t, types.HandlerRequest{
		Action:               types.ActionCreate,
		DesiredResourceState: testMembership(),
	}).Execute()

	tester.ResponseEq(t, http.StatusBadRequest, "action 'CREATE' in body does not match path action 'DELETE'", nil)
}

func TestMembershipHandler_InvokeBadJSON(t *testing.T) {
	tester := NewMembershipTester(t)
	tester.Handler(tester.handler.Invoke)

	tester.WithParam("action", "read").WithRawBody("{").Execute()

	require.Equal(t, http.StatusBadRequest, tester.response.Code)
}
