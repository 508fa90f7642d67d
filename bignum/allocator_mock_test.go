package bignum

import (
	"reflect"

	"github.com/golang/mock/gomock"
)

// MockAllocator is a gomock-style mock of the Allocator interface, hand
// written in the shape mockgen would generate, used by pool_test.go to
// assert that every Get borrowed during a computation is matched by
// exactly one Put by the time the operation returns.
type MockAllocator struct {
	ctrl     *gomock.Controller
	recorder *MockAllocatorMockRecorder
}

type MockAllocatorMockRecorder struct {
	mock *MockAllocator
}

func NewMockAllocator(ctrl *gomock.Controller) *MockAllocator {
	m := &MockAllocator{ctrl: ctrl}
	m.recorder = &MockAllocatorMockRecorder{m}
	return m
}

func (m *MockAllocator) EXPECT() *MockAllocatorMockRecorder {
	return m.recorder
}

func (m *MockAllocator) Get(n int) []word {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get", n)
	return ret[0].([]word)
}

func (mr *MockAllocatorMockRecorder) Get(n interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockAllocator)(nil).Get), n)
}

func (m *MockAllocator) Put(s []word) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Put", s)
}

func (mr *MockAllocatorMockRecorder) Put(s interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Put", reflect.TypeOf((*MockAllocator)(nil).Put), s)
}

// trackingAllocator wraps the real poolAllocator and counts outstanding
// Get calls not yet matched by a Put, for the leak-accounting test that
// needs real (not mocked) buffer contents to drive an actual Karatsuba run.
type trackingAllocator struct {
	inner      Allocator
	gets, puts int
}

func (t *trackingAllocator) Get(n int) []word {
	t.gets++
	return t.inner.Get(n)
}

func (t *trackingAllocator) Put(s []word) {
	t.puts++
	t.inner.Put(s)
}
