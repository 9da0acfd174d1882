package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	mockcomponent "opencsg.com/github-team-membership/_mocks/opencsg.com/github-team-membership/component"
	"opencsg.com/github-team-membership/common/types"
	"opencsg.com/github-team-membership/common/utils/trace"
)

func TestRun(t *testing.T) {
	mc := mockcomponent.NewMockMembershipComponent(t)
	model := &types.Membership{Organization: "acme", Team: "eng", Username: "bob"}

	mc.EXPECT().Handle(mock.MatchedBy(func(ctx context.Context) bool {
		return trace.GetRequestIDFromContext(ctx) != ""
	}), types.HandlerRequest{
		Action:               types.ActionRead,
		DesiredResourceState: model,
	}).Return(types.SuccessEvent(model))

	in := strings.NewReader(`{"action":"CREATE","desiredResourceState":{"Organization":"acme","Team":"eng","Username":"bob"}}`)
	var out bytes.Buffer
	err := run(context.Background(), mc, in, &out, "read")
	require.NoError(t, err)

	var event types.ProgressEvent
	require.NoError(t, json.Unmarshal(out.Bytes(), &event))
	require.Equal(t, types.OperationStatusSuccess, event.Status)
	require.Equal(t, model, event.ResourceModel)
}

func TestRun_BadInput(t *testing.T) {
	mc := mockcomponent.NewMockMembershipComponent(t)
	var out bytes.Buffer
	err := run(context.Background(), mc, strings.NewReader("not json"), &out, "")
	require.ErrorContains(t, err, "failed to decode handler request")
	require.Empty(t, out.String())
}

func TestRun_YAMLRequest(t *testing.T) {
	mc := mockcomponent.NewMockMembershipComponent(t)
	model := &types.Membership{
		Organization: "acme",
		Team:         "eng",
		Username:     "bob",
		Role:         types.MembershipRoleMaintainer,
		GitHubAccess: &types.Credentials{AccessToken: "ghp_token"},
	}
	mc.EXPECT().Handle(mock.Anything, types.HandlerRequest{
		Action:               types.ActionUpdate,
		DesiredResourceState: model,
		CallbackContext:      types.CallbackContext{"attempt": float64(3)},
	}).Return(types.FailedEvent("NotFound", "not found"))

	doc := `
action: UPDATE
desiredResourceState:
  Organization: acme
  Team: eng
  Username: bob
  Role: maintainer
  GitHubAccess:
    AccessToken: ghp_token
callbackContext:
  attempt: 3
`
	in, err := yamlToJSON(strings.NewReader(doc))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), mc, in, &out, ""))
	require.Contains(t, out.String(), `"status": "FAILED"`)
	require.Contains(t, out.String(), `"errorCode": "NotFound"`)
}
