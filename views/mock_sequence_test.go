package views_test

import (
	"reflect"

	"go.uber.org/mock/gomock"
)

// MockSequence is a gomock double for views.Sequence[int, int].
type MockSequence struct {
	ctrl     *gomock.Controller
	recorder *MockSequenceMockRecorder
}

// MockSequenceMockRecorder records expected calls on a MockSequence.
type MockSequenceMockRecorder struct {
	mock *MockSequence
}

func NewMockSequence(ctrl *gomock.Controller) *MockSequence {
	mock := &MockSequence{ctrl: ctrl}
	mock.recorder = &MockSequenceMockRecorder{mock}
	return mock
}

func (m *MockSequence) EXPECT() *MockSequenceMockRecorder {
	return m.recorder
}

func (m *MockSequence) Begin() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Begin")
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockSequenceMockRecorder) Begin() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Begin", reflect.TypeOf((*MockSequence)(nil).Begin))
}

func (m *MockSequence) End() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "End")
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockSequenceMockRecorder) End() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "End", reflect.TypeOf((*MockSequence)(nil).End))
}

func (m *MockSequence) Done(p int) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Done", p)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockSequenceMockRecorder) Done(p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Done", reflect.TypeOf((*MockSequence)(nil).Done), p)
}

func (m *MockSequence) Next(p int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Next", p)
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockSequenceMockRecorder) Next(p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Next", reflect.TypeOf((*MockSequence)(nil).Next), p)
}

func (m *MockSequence) At(p int) int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "At", p)
	ret0, _ := ret[0].(int)
	return ret0
}

func (mr *MockSequenceMockRecorder) At(p any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "At", reflect.TypeOf((*MockSequence)(nil).At), p)
}

func (m *MockSequence) Equal(a, b int) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Equal", a, b)
	ret0, _ := ret[0].(bool)
	return ret0
}

func (mr *MockSequenceMockRecorder) Equal(a, b any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Equal", reflect.TypeOf((*MockSequence)(nil).Equal), a, b)
}
