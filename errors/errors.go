/*
 * Naftah - dynamic numeric tower for the Naftah programming language
 *
 * Copyright DaiiTech
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package errors

import (
	"fmt"
	"runtime/debug"
)

// InternalError is an implementation error, e.g. an unreachable code path
// (UnreachableError). A program should never produce an InternalError in an
// ideal world.
//
// InternalError s must always be propagated up the call stack
// and not be caught (recovered).
type InternalError interface {
	error
	IsInternalError()
}

// UserError is an error caused by the inputs of the caller,
// e.g. an unparseable literal or a shift count out of range.
type UserError interface {
	error
	IsUserError()
}

// UnreachableError

// UnreachableError is an internal error which should have never occurred
// due to a programming error in this library.
//
// NOTE: this error is not used for errors caused by caller-provided inputs.
// For those, see the typed errors in package number.
type UnreachableError struct {
	Stack []byte
}

var _ InternalError = UnreachableError{}

func (e UnreachableError) Error() string {
	return fmt.Sprintf("unreachable\n%s", e.Stack)
}

func (e UnreachableError) IsInternalError() {}

func NewUnreachableError() *UnreachableError {
	return &UnreachableError{Stack: debug.Stack()}
}
