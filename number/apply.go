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
	"fortio.org/safecast"
)

// Apply evaluates an operation by name. Operands may be Values, host
// numeric types or literals; a *Value operand is passed through
// unwrapped, so the in-place increment and decrement operations mutate
// it. Most operations return a *Value; "compare" returns an int and
// "equals" a bool. Unknown names and wrong operand counts fail with
// UnsupportedOperationError.
func Apply(operation string, operands ...any) (any, error) {
	unsupported := func() error {
		return UnsupportedOperationError{
			Name:          operation,
			ArgumentCount: len(operands),
		}
	}

	values := make([]*Value, len(operands))
	for i, operand := range operands {
		if v, ok := operand.(*Value); ok {
			values[i] = v
			continue
		}
		v, err := Of(operand)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	unary := func(op func(*Value) (*Value, error)) (any, error) {
		if len(values) != 1 {
			return nil, unsupported()
		}
		return op(values[0])
	}
	binary := func(op func(*Value, *Value) (*Value, error)) (any, error) {
		if len(values) != 2 {
			return nil, unsupported()
		}
		return op(values[0], values[1])
	}
	shift := func(op func(*Value, int) (*Value, error)) (any, error) {
		if len(values) != 2 {
			return nil, unsupported()
		}
		positions, err := operandInt(operation, values[1])
		if err != nil {
			return nil, err
		}
		return op(values[0], positions)
	}

	switch operation {
	case "add":
		return binary(Add)
	case "subtract":
		return binary(Sub)
	case "multiply":
		return binary(Mul)
	case "divide":
		return binary(Div)
	case "modulo":
		return binary(Mod)
	case "min":
		return binary(Min)
	case "max":
		return binary(Max)
	case "pow":
		return shift(Pow)
	case "sqrt":
		return unary(Sqrt)
	case "round":
		return unary(Round)
	case "floor":
		return unary(Floor)
	case "ceil":
		return unary(Ceil)
	case "negate":
		return unary(Neg)
	case "abs":
		return unary(Abs)
	case "signum":
		return unary(Signum)
	case "compare":
		if len(values) != 2 {
			return nil, unsupported()
		}
		return Compare(values[0], values[1]), nil
	case "equals":
		if len(values) != 2 {
			return nil, unsupported()
		}
		return Equal(values[0], values[1]), nil
	case "and":
		return binary(And)
	case "or":
		return binary(Or)
	case "xor":
		return binary(Xor)
	case "not":
		return unary(Not)
	case "shiftLeft":
		return shift(ShiftLeft)
	case "shiftRight":
		return shift(ShiftRight)
	case "unsignedShiftRight":
		return shift(UnsignedShiftRight)
	case "preIncrement":
		return unary(PreInc)
	case "postIncrement":
		return unary(PostInc)
	case "preDecrement":
		return unary(PreDec)
	case "postDecrement":
		return unary(PostDec)
	}
	return nil, unsupported()
}

// operandInt narrows a count or exponent operand to a host int.
func operandInt(operation string, v *Value) (int, error) {
	if !v.IsInteger() || v.kind == KindBigInt && !v.b.IsInt64() {
		return 0, UnsupportedNumberKindError{
			Operation: operation,
			Kinds:     []Kind{v.kind},
		}
	}
	i, err := safecast.Convert[int](v.AsInt64())
	if err != nil {
		return 0, UnsupportedNumberKindError{
			Operation: operation,
			Kinds:     []Kind{v.kind},
		}
	}
	return i, nil
}
