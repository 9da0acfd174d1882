// Code generated manually to mirror mockery patterns. DO NOT EDIT.

package component

import (
	context "context"

	types "opencsg.com/github-team-membership/common/types"

	mock "github.com/stretchr/testify/mock"
)

// MockMembershipComponent is an autogenerated mock type for the MembershipComponent type
type MockMembershipComponent struct {
	mock.Mock
}

type MockMembershipComponent_Expecter struct {
	mock *mock.Mock
}

func (_m *MockMembershipComponent) EXPECT() *MockMembershipComponent_Expecter {
	return &MockMembershipComponent_Expecter{mock: &_m.Mock}
}

// Create provides a mock function with given fields: ctx, model
func (_m *MockMembershipComponent) Create(ctx context.Context, model types.Membership) (*types.Membership, error) {
	ret := _m.Called(ctx, model)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 *types.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) (*types.Membership, error)); ok {
		return rf(ctx, model)
	}
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) *types.Membership); ok {
		r0 = rf(ctx, model)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*types.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, types.Membership) error); ok {
		r1 = rf(ctx, model)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMembershipComponent_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockMembershipComponent_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
//   - ctx context.Context
//   - model types.Membership
func (_e *MockMembershipComponent_Expecter) Create(ctx interface{}, model interface{}) *MockMembershipComponent_Create_Call {
	return &MockMembershipComponent_Create_Call{Call: _e.mock.On("Create", ctx, model)}
}

func (_c *MockMembershipComponent_Create_Call) Run(run func(ctx context.Context, model types.Membership)) *MockMembershipComponent_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(types.Membership))
	})
	return _c
}

func (_c *MockMembershipComponent_Create_Call) Return(_a0 *types.Membership, _a1 error) *MockMembershipComponent_Create_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMembershipComponent_Create_Call) RunAndReturn(run func(context.Context, types.Membership) (*types.Membership, error)) *MockMembershipComponent_Create_Call {
	_c.Call.Return(run)
	return _c
}

// Delete provides a mock function with given fields: ctx, model
func (_m *MockMembershipComponent) Delete(ctx context.Context, model types.Membership) error {
	ret := _m.Called(ctx, model)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) error); ok {
		r0 = rf(ctx, model)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockMembershipComponent_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockMembershipComponent_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
//   - ctx context.Context
//   - model types.Membership
func (_e *MockMembershipComponent_Expecter) Delete(ctx interface{}, model interface{}) *MockMembershipComponent_Delete_Call {
	return &MockMembershipComponent_Delete_Call{Call: _e.mock.On("Delete", ctx, model)}
}

func (_c *MockMembershipComponent_Delete_Call) Run(run func(ctx context.Context, model types.Membership)) *MockMembershipComponent_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(types.Membership))
	})
	return _c
}

func (_c *MockMembershipComponent_Delete_Call) Return(_a0 error) *MockMembershipComponent_Delete_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMembershipComponent_Delete_Call) RunAndReturn(run func(context.Context, types.Membership) error) *MockMembershipComponent_Delete_Call {
	_c.Call.Return(run)
	return _c
}

// Handle provides a mock function with given fields: ctx, req
func (_m *MockMembershipComponent) Handle(ctx context.Context, req types.HandlerRequest) types.ProgressEvent {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Handle")
	}

	var r0 types.ProgressEvent
	if rf, ok := ret.Get(0).(func(context.Context, types.HandlerRequest) types.ProgressEvent); ok {
		r0 = rf(ctx, req)
	} else {
		r0 = ret.Get(0).(types.ProgressEvent)
	}

	return r0
}

// MockMembershipComponent_Handle_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Handle'
type MockMembershipComponent_Handle_Call struct {
	*mock.Call
}

// Handle is a helper method to define mock.On call
//   - ctx context.Context
//   - req types.HandlerRequest
func (_e *MockMembershipComponent_Expecter) Handle(ctx interface{}, req interface{}) *MockMembershipComponent_Handle_Call {
	return &MockMembershipComponent_Handle_Call{Call: _e.mock.On("Handle", ctx, req)}
}

func (_c *MockMembershipComponent_Handle_Call) Run(run func(ctx context.Context, req types.HandlerRequest)) *MockMembershipComponent_Handle_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(types.HandlerRequest))
	})
	return _c
}

func (_c *MockMembershipComponent_Handle_Call) Return(_a0 types.ProgressEvent) *MockMembershipComponent_Handle_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockMembershipComponent_Handle_Call) RunAndReturn(run func(context.Context, types.HandlerRequest) types.ProgressEvent) *MockMembershipComponent_Handle_Call {
	_c.Call.Return(run)
	return _c
}

// List provides a mock function with given fields: ctx, model
func (_m *MockMembershipComponent) List(ctx context.Context, model types.Membership) ([]types.Membership, error) {
	ret := _m.Called(ctx, model)

	if len(ret) == 0 {
		panic("no return value specified for List")
	}

	var r0 []types.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) ([]types.Membership, error)); ok {
		return rf(ctx, model)
	}
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) []types.Membership); ok {
		r0 = rf(ctx, model)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]types.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, types.Membership) error); ok {
		r1 = rf(ctx, model)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMembershipComponent_List_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'List'
type MockMembershipComponent_List_Call struct {
	*mock.Call
}

// List is a helper method to define mock.On call
//   - ctx context.Context
//   - model types.Membership
func (_e *MockMembershipComponent_Expecter) List(ctx interface{}, model interface{}) *MockMembershipComponent_List_Call {
	return &MockMembershipComponent_List_Call{Call: _e.mock.On("List", ctx, model)}
}

func (_c *MockMembershipComponent_List_Call) Run(run func(ctx context.Context, model types.Membership)) *MockMembershipComponent_List_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(types.Membership))
	})
	return _c
}

func (_c *MockMembershipComponent_List_Call) Return(_a0 []types.Membership, _a1 error) *MockMembershipComponent_List_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMembershipComponent_List_Call) RunAndReturn(run func(context.Context, types.Membership) ([]types.Membership, error)) *MockMembershipComponent_List_Call {
	_c.Call.Return(run)
	return _c
}

// Read provides a mock function with given fields: ctx, model
func (_m *MockMembershipComponent) Read(ctx context.Context, model types.Membership) (*types.Membership, error) {
	ret := _m.Called(ctx, model)

	if len(ret) == 0 {
		panic("no return value specified for Read")
	}

	var r0 *types.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) (*types.Membership, error)); ok {
		return rf(ctx, model)
	}
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) *types.Membership); ok {
		r0 = rf(ctx, model)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*types.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, types.Membership) error); ok {
		r1 = rf(ctx, model)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMembershipComponent_Read_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Read'
type MockMembershipComponent_Read_Call struct {
	*mock.Call
}

// Read is a helper method to define mock.On call
//   - ctx context.Context
//   - model types.Membership
func (_e *MockMembershipComponent_Expecter) Read(ctx interface{}, model interface{}) *MockMembershipComponent_Read_Call {
	return &MockMembershipComponent_Read_Call{Call: _e.mock.On("Read", ctx, model)}
}

func (_c *MockMembershipComponent_Read_Call) Run(run func(ctx context.Context, model types.Membership)) *MockMembershipComponent_Read_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(types.Membership))
	})
	return _c
}

func (_c *MockMembershipComponent_Read_Call) Return(_a0 *types.Membership, _a1 error) *MockMembershipComponent_Read_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMembershipComponent_Read_Call) RunAndReturn(run func(context.Context, types.Membership) (*types.Membership, error)) *MockMembershipComponent_Read_Call {
	_c.Call.Return(run)
	return _c
}

// Update provides a mock function with given fields: ctx, model
func (_m *MockMembershipComponent) Update(ctx context.Context, model types.Membership) (*types.Membership, error) {
	ret := _m.Called(ctx, model)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 *types.Membership
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) (*types.Membership, error)); ok {
		return rf(ctx, model)
	}
	if rf, ok := ret.Get(0).(func(context.Context, types.Membership) *types.Membership); ok {
		r0 = rf(ctx, model)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*types.Membership)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, types.Membership) error); ok {
		r1 = rf(ctx, model)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockMembershipComponent_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockMembershipComponent_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
//   - ctx context.Context
//   - model types.Membership
func (_e *MockMembershipComponent_Expecter) Update(ctx interface{}, model interface{}) *MockMembershipComponent_Update_Call {
	return &MockMembershipComponent_Update_Call{Call: _e.mock.On("Update", ctx, model)}
}

func (_c *MockMembershipComponent_Update_Call) Run(run func(ctx context.Context, model types.Membership)) *MockMembershipComponent_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(types.Membership))
	})
	return _c
}

func (_c *MockMembershipComponent_Update_Call) Return(_a0 *types.Membership, _a1 error) *MockMembershipComponent_Update_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockMembershipComponent_Update_Call) RunAndReturn(run func(context.Context, types.Membership) (*types.Membership, error)) *MockMembershipComponent_Update_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockMembershipComponent creates a new instance of MockMembershipComponent. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockMembershipComponent(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMembershipComponent {
	mock := &MockMembershipComponent{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
