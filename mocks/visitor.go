// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mocks

import (
	reflect "reflect"

	bst "github.com/bitmark-inc/bstree/bst"
	gomock "github.com/golang/mock/gomock"
)

// MockVisitor is a mock of the bst.Visitor[int] interface
type MockVisitor struct {
	ctrl     *gomock.Controller
	recorder *MockVisitorMockRecorder
}

// MockVisitorMockRecorder is the mock recorder for MockVisitor
type MockVisitorMockRecorder struct {
	mock *MockVisitor
}

// NewMockVisitor creates a new mock instance
func NewMockVisitor(ctrl *gomock.Controller) *MockVisitor {
	mock := &MockVisitor{ctrl: ctrl}
	mock.recorder = &MockVisitorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use
func (m *MockVisitor) EXPECT() *MockVisitorMockRecorder {
	return m.recorder
}

// Visit mocks base method
func (m *MockVisitor) Visit(node *bst.Node[int]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Visit", node)
}

// Visit indicates an expected call of Visit
func (mr *MockVisitorMockRecorder) Visit(node interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Visit", reflect.TypeOf((*MockVisitor)(nil).Visit), node)
}
