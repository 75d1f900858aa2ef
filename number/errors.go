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

package number

import (
	"fmt"

	"github.com/daiitech/naftah/errors"
)

// InvalidNumericLiteralError

// InvalidNumericLiteralError is reported when a literal cannot be parsed as
// any supported numeric kind, or when a non-numeric input was supplied where
// a number was required.
type InvalidNumericLiteralError struct {
	Literal string
	Radix   int
	Err     error
}

var _ errors.UserError = InvalidNumericLiteralError{}

func (InvalidNumericLiteralError) IsUserError() {}

func (e InvalidNumericLiteralError) Unwrap() error {
	return e.Err
}

func (e InvalidNumericLiteralError) Error() string {
	if e.Radix != 0 && e.Radix != 10 {
		return fmt.Sprintf(
			"invalid numeric literal in base %d: `%s`",
			e.Radix,
			e.Literal,
		)
	}
	return fmt.Sprintf("invalid numeric literal: `%s`", e.Literal)
}

// UnsupportedNumberKindError

// UnsupportedNumberKindError is reported when an operation receives an
// operand whose kind is outside the operation's supported families.
type UnsupportedNumberKindError struct {
	Operation string
	Kinds     []Kind
}

var _ errors.UserError = UnsupportedNumberKindError{}

func (UnsupportedNumberKindError) IsUserError() {}

func (e UnsupportedNumberKindError) Error() string {
	return fmt.Sprintf(
		"unsupported operand kind(s) %v for operation %s",
		e.Kinds,
		e.Operation,
	)
}

// UnsupportedBitwiseOnDecimalError

// UnsupportedBitwiseOnDecimalError is reported when a bitwise or shift
// operation is attempted on a decimal-family operand.
type UnsupportedBitwiseOnDecimalError struct {
	Operation string
	Kinds     []Kind
}

var _ errors.UserError = UnsupportedBitwiseOnDecimalError{}

func (UnsupportedBitwiseOnDecimalError) IsUserError() {}

func (e UnsupportedBitwiseOnDecimalError) Error() string {
	return fmt.Sprintf(
		"bitwise operation %s is not defined for decimal operand kind(s) %v",
		e.Operation,
		e.Kinds,
	)
}

// InvalidShiftAmountError

// InvalidShiftAmountError is reported when a shift count is negative or
// not below the operand's bit width.
type InvalidShiftAmountError struct {
	Positions int
	BitWidth  int
}

var _ errors.UserError = InvalidShiftAmountError{}

func (InvalidShiftAmountError) IsUserError() {}

func (e InvalidShiftAmountError) Error() string {
	return fmt.Sprintf(
		"invalid shift amount %d: must be in the range [0, %d)",
		e.Positions,
		e.BitWidth,
	)
}

// NumericConversionOverflowError

// NumericConversionOverflowError is reported when an explicit conversion to
// a target kind cannot represent the value exactly.
type NumericConversionOverflowError struct {
	Value  string
	Target Kind
}

var _ errors.UserError = NumericConversionOverflowError{}

func (NumericConversionOverflowError) IsUserError() {}

func (e NumericConversionOverflowError) Error() string {
	return fmt.Sprintf(
		"cannot convert %s to %s exactly",
		e.Value,
		e.Target,
	)
}

// NegativeSquareRootError

// NegativeSquareRootError is reported for a square root of a negative
// operand.
type NegativeSquareRootError struct {
	Value string
}

var _ errors.UserError = NegativeSquareRootError{}

func (NegativeSquareRootError) IsUserError() {}

func (e NegativeSquareRootError) Error() string {
	return fmt.Sprintf("square root of negative number %s", e.Value)
}

// DivisionByZeroError

type DivisionByZeroError struct{}

var _ errors.UserError = DivisionByZeroError{}

func (DivisionByZeroError) IsUserError() {}

func (e DivisionByZeroError) Error() string {
	return "division by zero"
}

// NonTerminatingDecimalError

// NonTerminatingDecimalError is reported when an exact decimal division has
// no terminating decimal expansion. Callers needing a bounded result must
// request rounding explicitly.
type NonTerminatingDecimalError struct{}

var _ errors.UserError = NonTerminatingDecimalError{}

func (NonTerminatingDecimalError) IsUserError() {}

func (e NonTerminatingDecimalError) Error() string {
	return "non-terminating decimal expansion; no exact representable result"
}

// SizeMismatchError

// SizeMismatchError is reported when an element-wise combinator receives
// operand slices of differing lengths.
type SizeMismatchError struct {
	LeftLength  int
	RightLength int
}

var _ errors.UserError = SizeMismatchError{}

func (SizeMismatchError) IsUserError() {}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf(
		"operand size mismatch: %d vs %d",
		e.LeftLength,
		e.RightLength,
	)
}

// UnsupportedOperationError

// UnsupportedOperationError is reported by the symbolic dispatcher for an
// unknown operation name or a wrong operand count.
type UnsupportedOperationError struct {
	Name          string
	ArgumentCount int
}

var _ errors.UserError = UnsupportedOperationError{}

func (UnsupportedOperationError) IsUserError() {}

func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf(
		"unsupported operation `%s` with %d operand(s)",
		e.Name,
		e.ArgumentCount,
	)
}
