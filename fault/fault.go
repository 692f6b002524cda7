// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyBalanced      = ProcessError("tree already balanced")
	ErrAlreadyInitialised   = ProcessError("already initialised")
	ErrInvalidCount         = InvalidError("sample count is invalid")
	ErrInvalidFormat        = InvalidError("diagram format is invalid")
	ErrInvalidRange         = InvalidError("minimum value exceeds maximum value")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidValue         = InvalidError("value is invalid")
	ErrMissingConfigFile    = InvalidError("config file is required")
	ErrNodeNotFound         = NotFoundError("node not found")
	ErrOrderViolation       = InvalidError("binary search tree order violated")
	ErrValueAlreadyPresent  = ExistsError("value already present")
	ErrValueNotFound        = NotFoundError("value not found")
	ErrValuesChanged        = ProcessError("rebalance changed the set of values")
	ErrVisitorRequired      = InvalidError("visitor required")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
