// Copyright 2022 VectorSQL Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package moerr defines the error representation shared by the whole
// engine.  Every runtime failure is a coded Error value returned up the
// caller chain; panics are reserved for programming-contract violations.
package moerr

import (
	"errors"
	"fmt"
)

const (
	// Ok is not an error.
	Ok uint16 = 0

	// Group 1: internal errors
	ErrStart     uint16 = 20100
	ErrInternal  uint16 = 20101
	ErrNYI       uint16 = 20102
	ErrOOM       uint16 = 20103
	ErrNotSupported uint16 = 20105

	// Group 2: numeric and functions
	ErrDivByZero  uint16 = 20200
	ErrOutOfRange uint16 = 20201
	ErrInvalidArg uint16 = 20203

	// Group 3: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301

	// Group 4: unexpected state
	ErrInvalidState     uint16 = 20400
	ErrEmptyVector      uint16 = 20404
	ErrFunctionNotFound uint16 = 20405
)

type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) Ok() bool {
	return e.code < ErrStart
}

// Succeeded returns whether err is nil or carries an ok code.
func (e *Error) Succeeded() bool {
	return e == nil || e.Ok()
}

func newError(code uint16, format string, args ...any) *Error {
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

// IsMoErrCode reports whether err is a moerr with the given code.
func IsMoErrCode(err error, code uint16) bool {
	if err == nil {
		return code == Ok
	}
	var me *Error
	if !errors.As(err, &me) {
		return false
	}
	return me.code == code
}

func NewInternal(format string, args ...any) *Error {
	return newError(ErrInternal, "internal error: "+format, args...)
}

func NewNYI(format string, args ...any) *Error {
	return newError(ErrNYI, "not yet implemented: "+format, args...)
}

func NewOOM(pool string, want, cap int64) *Error {
	return newError(ErrOOM, "out of memory: pool %s requested %d, cap %d", pool, want, cap)
}

func NewNotSupported(format string, args ...any) *Error {
	return newError(ErrNotSupported, "not supported: "+format, args...)
}

func NewDivByZero() *Error {
	return newError(ErrDivByZero, "division by zero")
}

func NewOutOfRange(typ string, format string, args ...any) *Error {
	return newError(ErrOutOfRange, "data out of range: data type "+typ+", "+format, args...)
}

func NewInvalidArg(arg string, val any) *Error {
	return newError(ErrInvalidArg, "invalid argument %s, bad value %v", arg, val)
}

func NewBadConfig(format string, args ...any) *Error {
	return newError(ErrBadConfig, "invalid configuration: "+format, args...)
}

func NewInvalidInput(format string, args ...any) *Error {
	return newError(ErrInvalidInput, "invalid input: "+format, args...)
}

func NewInvalidState(format string, args ...any) *Error {
	return newError(ErrInvalidState, "invalid state: "+format, args...)
}

func NewEmptyVector() *Error {
	return newError(ErrEmptyVector, "empty vector")
}

func NewFunctionNotFound(name string) *Error {
	return newError(ErrFunctionNotFound, "function %s not found", name)
}
