// Code generated manually to mirror mockery patterns. DO NOT EDIT.

package membership

import (
	context "context"

	membership "opencsg.com/github-team-membership/builder/git/membership"

	mock "github.com/stretchr/testify/mock"
)

// MockTeamMembership is an autogenerated mock type for the TeamMembership type
type MockTeamMembership struct {
	mock.Mock
}

type MockTeamMembership_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTeamMembership) EXPECT() *MockTeamMembership_Expecter {
	return &MockTeamMembership_Expecter{mock: &_m.Mock}
}

// AddOrUpdateMembership provides a mock function with given fields: ctx, org, team, user, role
func (_m *MockTeamMembership) AddOrUpdateMembership(ctx context.Context, org string, team string, user string, role membership.Role) (*membership.Membership, error) {
	ret := _m.Called(ctx, org, team, user, role)

	if len(ret) == 0 {
		panic("no return value specified for AddOrUpdateMembership")
	}

	var r0 *membership.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, membership.Role) (*membership.Membership, error)); ok {
		return rf(ctx, org, team, user, role)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string, membership.Role) *membership.Membership); ok {
		r0 = rf(ctx, org, team, user, role)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*membership.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, string, membership.Role) error); ok {
		r1 = rf(ctx, org, team, user, role)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTeamMembership_AddOrUpdateMembership_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'AddOrUpdateMembership'
type MockTeamMembership_AddOrUpdateMembership_Call struct {
	*mock.Call
}

// AddOrUpdateMembership is a helper method to define mock.On call
//   - ctx context.Context
//   - org string
//   - team string
//   - user string
//   - role membership.Role
func (_e *MockTeamMembership_Expecter) AddOrUpdateMembership(ctx interface{}, org interface{}, team interface{}, user interface{}, role interface{}) *MockTeamMembership_AddOrUpdateMembership_Call {
	return &MockTeamMembership_AddOrUpdateMembership_Call{Call: _e.mock.On("AddOrUpdateMembership", ctx, org, team, user, role)}
}

func (_c *MockTeamMembership_AddOrUpdateMembership_Call) Run(run func(ctx context.Context, org string, team string, user string, role membership.Role)) *MockTeamMembership_AddOrUpdateMembership_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string), args[4].(membership.Role))
	})
	return _c
}

func (_c *MockTeamMembership_AddOrUpdateMembership_Call) Return(_a0 *membership.Membership, _a1 error) *MockTeamMembership_AddOrUpdateMembership_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTeamMembership_AddOrUpdateMembership_Call) RunAndReturn(run func(context.Context, string, string, string, membership.Role) (*membership.Membership, error)) *MockTeamMembership_AddOrUpdateMembership_Call {
	_c.Call.Return(run)
	return _c
}

// GetMembership provides a mock function with given fields: ctx, org, team, user
func (_m *MockTeamMembership) GetMembership(ctx context.Context, org string, team string, user string) (*membership.Membership, error) {
	ret := _m.Called(ctx, org, team, user)

	if len(ret) == 0 {
		panic("no return value specified for GetMembership")
	}

	var r0 *membership.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) (*membership.Membership, error)); ok {
		return rf(ctx, org, team, user)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) *membership.Membership); ok {
		r0 = rf(ctx, org, team, user)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*membership.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, string) error); ok {
		r1 = rf(ctx, org, team, user)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTeamMembership_GetMembership_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetMembership'
type MockTeamMembership_GetMembership_Call struct {
	*mock.Call
}

// GetMembership is a helper method to define mock.On call
//   - ctx context.Context
//   - org string
//   - team string
//   - user string
func (_e *MockTeamMembership_Expecter) GetMembership(ctx interface{}, org interface{}, team interface{}, user interface{}) *MockTeamMembership_GetMembership_Call {
	return &MockTeamMembership_GetMembership_Call{Call: _e.mock.On("GetMembership", ctx, org, team, user)}
}

func (_c *MockTeamMembership_GetMembership_Call) Run(run func(ctx context.Context, org string, team string, user string)) *MockTeamMembership_GetMembership_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string))
	})
	return _c
}

func (_c *MockTeamMembership_GetMembership_Call) Return(_a0 *membership.Membership, _a1 error) *MockTeamMembership_GetMembership_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockTeamMembership_GetMembership_Call) RunAndReturn(run func(context.Context, string, string, string) (*membership.Membership, error)) *MockTeamMembership_GetMembership_Call {
	_c.Call.Return(run)
	return _c
}

// ListMembers provides a mock function with given fields: ctx, org, team, opt
func (_m *MockTeamMembership) ListMembers(ctx context.Context, org string, team string, opt membership.ListOptions) ([]string, int, error) {
	ret := _m.Called(ctx, org, team, opt)

	if len(ret) == 0 {
		panic("no return value specified for ListMembers")
	}

	var r0 []string
	var r1 int
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, membership.ListOptions) ([]string, int, error)); ok {
		return rf(ctx, org, team, opt)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, membership.ListOptions) []string); ok {
		r0 = rf(ctx, org, team, opt)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, membership.ListOptions) int); ok {
		r1 = rf(ctx, org, team, opt)
	} else {
		r1 = ret.Get(1).(int)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string, membership.ListOptions) error); ok {
		r2 = rf(ctx, org, team, opt)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockTeamMembership_ListMembers_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListMembers'
type MockTeamMembership_ListMembers_Call struct {
	*mock.Call
}

// ListMembers is a helper method to define mock.On call
//   - ctx context.Context
//   - org string
//   - team string
//   - opt membership.ListOptions
func (_e *MockTeamMembership_Expecter) ListMembers(ctx interface{}, org interface{}, team interface{}, opt interface{}) *MockTeamMembership_ListMembers_Call {
	return &MockTeamMembership_ListMembers_Call{Call: _e.mock.On("ListMembers", ctx, org, team, opt)}
}

func (_c *MockTeamMembership_ListMembers_Call) Run(run func(ctx context.Context, org string, team string, opt membership.ListOptions)) *MockTeamMembership_ListMembers_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(membership.ListOptions))
	})
	return _c
}

func (_c *MockTeamMembership_ListMembers_Call) Return(_a0 []string, _a1 int, _a2 error) *MockTeamMembership_ListMembers_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockTeamMembership_ListMembers_Call) RunAndReturn(run func(context.Context, string, string, membership.ListOptions) ([]string, int, error)) *MockTeamMembership_ListMembers_Call {
	_c.Call.Return(run)
	return _c
}

// ListPendingInvitations provides a mock function with given fields: ctx, org, team, opt
func (_m *MockTeamMembership) ListPendingInvitations(ctx context.Context, org string, team string, opt membership.ListOptions) ([]string, int, error) {
	ret := _m.Called(ctx, org, team, opt)

	if len(ret) == 0 {
		panic("no return value specified for ListPendingInvitations")
	}

	var r0 []string
	var r1 int
	var r2 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, membership.ListOptions) ([]string, int, error)); ok {
		return rf(ctx, org, team, opt)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, string, membership.ListOptions) []string); ok {
		r0 = rf(ctx, org, team, opt)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, string, membership.ListOptions) int); ok {
		r1 = rf(ctx, org, team, opt)
	} else {
		r1 = ret.Get(1).(int)
	}

	if rf, ok := ret.Get(2).(func(context.Context, string, string, membership.ListOptions) error); ok {
		r2 = rf(ctx, org, team, opt)
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// MockTeamMembership_ListPendingInvitations_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListPendingInvitations'
type MockTeamMembership_ListPendingInvitations_Call struct {
	*mock.Call
}

// ListPendingInvitations is a helper method to define mock.On call
//   - ctx context.Context
//   - org string
//   - team string
//   - opt membership.ListOptions
func (_e *MockTeamMembership_Expecter) ListPendingInvitations(ctx interface{}, org interface{}, team interface{}, opt interface{}) *MockTeamMembership_ListPendingInvitations_Call {
	return &MockTeamMembership_ListPendingInvitations_Call{Call: _e.mock.On("ListPendingInvitations", ctx, org, team, opt)}
}

func (_c *MockTeamMembership_ListPendingInvitations_Call) Run(run func(ctx context.Context, org string, team string, opt membership.ListOptions)) *MockTeamMembership_ListPendingInvitations_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(membership.ListOptions))
	})
	return _c
}

func (_c *MockTeamMembership_ListPendingInvitations_Call) Return(_a0 []string, _a1 int, _a2 error) *MockTeamMembership_ListPendingInvitations_Call {
	_c.Call.Return(_a0, _a1, _a2)
	return _c
}

func (_c *MockTeamMembership_ListPendingInvitations_Call) RunAndReturn(run func(context.Context, string, string, membership.ListOptions) ([]string, int, error)) *MockTeamMembership_ListPendingInvitations_Call {
	_c.Call.Return(run)
	return _c
}

// RemoveMembership provides a mock function with given fields: ctx, org, team, user
func (_m *MockTeamMembership) RemoveMembership(ctx context.Context, org string, team string, user string) error {
	ret := _m.Called(ctx, org, team, user)

	if len(ret) == 0 {
		panic("no return value specified for RemoveMembership")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string, string) error); ok {
		r0 = rf(ctx, org, team, user)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockTeamMembership_RemoveMembership_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'RemoveMembership'
type MockTeamMembership_RemoveMembership_Call struct {
	*mock.Call
}

// RemoveMembership is a helper method to define mock.On call
//   - ctx context.Context
//   - org string
//   - team string
//   - user string
func (_e *MockTeamMembership_Expecter) RemoveMembership(ctx interface{}, org interface{}, team interface{}, user interface{}) *MockTeamMembership_RemoveMembership_Call {
	return &MockTeamMembership_RemoveMembership_Call{Call: _e.mock.On("RemoveMembership", ctx, org, team, user)}
}

func (_c *MockTeamMembership_RemoveMembership_Call) Run(run func(ctx context.Context, org string, team string, user string)) *MockTeamMembership_RemoveMembership_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string), args[2].(string), args[3].(string))
	})
	return _c
}

func (_c *MockTeamMembership_RemoveMembership_Call) Return(_a0 error) *MockTeamMembership_RemoveMembership_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockTeamMembership_RemoveMembership_Call) RunAndReturn(run func(context.Context, string, string, string) error) *MockTeamMembership_RemoveMembership_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockTeamMembership creates a new instance of MockTeamMembership. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockTeamMembership(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTeamMembership {
	mock := &MockTeamMembership{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
