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
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/daiitech/naftah/errors"
)

// Value is a mutable cell holding exactly one concrete numeric
// representation at a time, tagged by its Kind.
//
// Operations return fresh Values; the in-place increment and decrement
// variants mutate their operand. A Value is not safe for concurrent
// mutation. Callers sharing results across goroutines should treat them
// as immutable.
type Value struct {
	kind Kind

	// exactly one of the following is meaningful, per kind:
	i int64        // Byte, Short, Int, Long
	f float64      // Float (float32-exact), Double
	b *big.Int     // BigInt
	d *apd.Decimal // BigDecimal
}

func NewByte(v int8) *Value {
	return &Value{kind: KindByte, i: int64(v)}
}

func NewShort(v int16) *Value {
	return &Value{kind: KindShort, i: int64(v)}
}

func NewInt(v int32) *Value {
	return &Value{kind: KindInt, i: int64(v)}
}

func NewLong(v int64) *Value {
	return &Value{kind: KindLong, i: v}
}

func NewBigInt(v *big.Int) *Value {
	return &Value{kind: KindBigInt, b: new(big.Int).Set(v)}
}

func NewFloat(v float32) *Value {
	return &Value{kind: KindFloat, f: float64(v)}
}

func NewDouble(v float64) *Value {
	return &Value{kind: KindDouble, f: v}
}

func NewBigDecimal(v *apd.Decimal) *Value {
	d := new(apd.Decimal)
	d.Set(v)
	return &Value{kind: KindBigDecimal, d: d}
}

// Of wraps a host value as a Value, inferring the kind from the input's
// own width and family. Wrapping a *Value clones it. Strings are parsed
// with the narrowest-kind probe of Parse. Unsigned inputs widen into the
// narrowest signed kind that holds them.
func Of(value any) (*Value, error) {
	switch v := value.(type) {
	case *Value:
		return v.Clone(), nil
	case int8:
		return NewByte(v), nil
	case int16:
		return NewShort(v), nil
	case int32:
		return NewInt(v), nil
	case int64:
		return NewLong(v), nil
	case int:
		return NewLong(int64(v)), nil
	case uint8:
		return NewShort(int16(v)), nil
	case uint16:
		return NewInt(int32(v)), nil
	case uint32:
		return NewLong(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return NewBigInt(new(big.Int).SetUint64(v)), nil
		}
		return NewLong(int64(v)), nil
	case uint:
		return Of(uint64(v))
	case float32:
		return NewFloat(v), nil
	case float64:
		return NewDouble(v), nil
	case *big.Int:
		return NewBigInt(v), nil
	case big.Int:
		return NewBigInt(&v), nil
	case *apd.Decimal:
		return NewBigDecimal(v), nil
	case string:
		return Parse(v)
	default:
		return nil, InvalidNumericLiteralError{
			Literal: fmt.Sprint(value),
		}
	}
}

func (v *Value) Kind() Kind {
	return v.kind
}

// Get returns the underlying representation as the host type matching
// the kind: int8 for Byte through int64 for Long, *big.Int for BigInt,
// float32/float64 for the binary kinds and *apd.Decimal for BigDecimal.
// The big representations are copies.
func (v *Value) Get() any {
	switch v.kind {
	case KindByte:
		return int8(v.i)
	case KindShort:
		return int16(v.i)
	case KindInt:
		return int32(v.i)
	case KindLong:
		return v.i
	case KindBigInt:
		return new(big.Int).Set(v.b)
	case KindFloat:
		return float32(v.f)
	case KindDouble:
		return v.f
	case KindBigDecimal:
		d := new(apd.Decimal)
		d.Set(v.d)
		return d
	}
	panic(errors.NewUnreachableError())
}

func (v *Value) IsByte() bool       { return v.kind == KindByte }
func (v *Value) IsShort() bool      { return v.kind == KindShort }
func (v *Value) IsInt() bool        { return v.kind == KindInt }
func (v *Value) IsLong() bool       { return v.kind == KindLong }
func (v *Value) IsBigInt() bool     { return v.kind == KindBigInt }
func (v *Value) IsFloat() bool      { return v.kind == KindFloat }
func (v *Value) IsDouble() bool     { return v.kind == KindDouble }
func (v *Value) IsBigDecimal() bool { return v.kind == KindBigDecimal }

// IsInteger reports whether the value belongs to the integer family.
func (v *Value) IsInteger() bool {
	return v.kind.IsInteger()
}

// IsDecimal reports whether the value belongs to the decimal family.
func (v *Value) IsDecimal() bool {
	return v.kind.IsDecimal()
}

// IsNaN is true only for a Float or Double holding NaN.
func (v *Value) IsNaN() bool {
	switch v.kind {
	case KindFloat, KindDouble:
		return math.IsNaN(v.f)
	}
	return false
}

// IsInfinite is true only for a Float or Double holding ±infinity.
func (v *Value) IsInfinite() bool {
	switch v.kind {
	case KindFloat, KindDouble:
		return math.IsInf(v.f, 0)
	}
	return false
}

func (v *Value) isFinite() bool {
	return !v.IsNaN() && !v.IsInfinite()
}

// IsZero reports whether the value equals zero.
// NaN is not zero.
func (v *Value) IsZero() bool {
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		return v.i == 0
	case KindBigInt:
		return v.b.Sign() == 0
	case KindFloat, KindDouble:
		return v.f == 0
	case KindBigDecimal:
		return v.d.IsZero()
	}
	panic(errors.NewUnreachableError())
}

// AsInt64 returns the value coerced to int64. Widening from the fixed
// integer kinds is exact; wider representations truncate.
func (v *Value) AsInt64() int64 {
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		return v.i
	case KindBigInt:
		return v.b.Int64()
	case KindFloat, KindDouble:
		return int64(v.f)
	case KindBigDecimal:
		b, err := truncatedBigInt(v.d)
		if err != nil {
			return 0
		}
		return b.Int64()
	}
	panic(errors.NewUnreachableError())
}

func truncatedBigInt(d *apd.Decimal) (*big.Int, error) {
	var intPart apd.Decimal
	ctx := apd.BaseContext.WithPrecision(clampPrecision(d.NumDigits() + 2))
	ctx.Rounding = apd.RoundDown
	if _, err := ctx.RoundToIntegralValue(&intPart, d); err != nil {
		return nil, err
	}
	b, ok := decimalToBigInt(&intPart)
	if !ok {
		return nil, NonTerminatingDecimalError{}
	}
	return b, nil
}

// AsFloat32 returns the value coerced to float32.
func (v *Value) AsFloat32() float32 {
	return float32(v.AsFloat64())
}

// AsFloat64 returns the value coerced to float64.
func (v *Value) AsFloat64() float64 {
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		return float64(v.i)
	case KindBigInt:
		f, _ := new(big.Float).SetInt(v.b).Float64()
		return f
	case KindFloat, KindDouble:
		return v.f
	case KindBigDecimal:
		f, err := v.d.Float64()
		if err != nil {
			return math.NaN()
		}
		return f
	}
	panic(errors.NewUnreachableError())
}

// AsBigInt returns the value as a big integer. Integer-family kinds
// convert exactly; decimal-family kinds truncate toward zero.
func (v *Value) AsBigInt() *big.Int {
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		return big.NewInt(v.i)
	case KindBigInt:
		return new(big.Int).Set(v.b)
	case KindFloat, KindDouble:
		if !v.isFinite() {
			return new(big.Int)
		}
		b, err := truncatedBigInt(v.decimal())
		if err != nil {
			return new(big.Int)
		}
		return b
	case KindBigDecimal:
		b, err := truncatedBigInt(v.d)
		if err != nil {
			return new(big.Int)
		}
		return b
	}
	panic(errors.NewUnreachableError())
}

// AsBigDecimal returns the value as an exact decimal. Floats convert
// through their shortest decimal form. The value must be finite.
func (v *Value) AsBigDecimal() *apd.Decimal {
	return v.decimal()
}

func (v *Value) decimal() *apd.Decimal {
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		return decimalFromInt64(v.i)
	case KindBigInt:
		return decimalFromBigInt(v.b)
	case KindFloat:
		return decimalFromFloat(v.f, 32)
	case KindDouble:
		return decimalFromFloat(v.f, 64)
	case KindBigDecimal:
		d := new(apd.Decimal)
		d.Set(v.d)
		return d
	}
	panic(errors.NewUnreachableError())
}

func (v *Value) setByte(i int8) *Value {
	*v = Value{kind: KindByte, i: int64(i)}
	return v
}

func (v *Value) setShort(i int16) *Value {
	*v = Value{kind: KindShort, i: int64(i)}
	return v
}

func (v *Value) setInt(i int32) *Value {
	*v = Value{kind: KindInt, i: int64(i)}
	return v
}

func (v *Value) setLong(i int64) *Value {
	*v = Value{kind: KindLong, i: i}
	return v
}

func (v *Value) setBigInt(b *big.Int) *Value {
	*v = Value{kind: KindBigInt, b: b}
	return v
}

func (v *Value) setFloat(f float32) *Value {
	*v = Value{kind: KindFloat, f: float64(f)}
	return v
}

func (v *Value) setDouble(f float64) *Value {
	*v = Value{kind: KindDouble, f: f}
	return v
}

func (v *Value) setBigDecimal(d *apd.Decimal) *Value {
	*v = Value{kind: KindBigDecimal, d: d}
	return v
}

// Promote widens the value one step within its family:
// Byte→Short→Int→Long→BigInt, Float→Double→BigDecimal.
// The widest kind of each family is left unchanged.
// The receiver is mutated and returned.
func (v *Value) Promote() *Value {
	switch v.kind {
	case KindByte:
		v.kind = KindShort
	case KindShort:
		v.kind = KindInt
	case KindInt:
		v.kind = KindLong
	case KindLong:
		v.setBigInt(big.NewInt(v.i))
	case KindBigInt:
		// already widest
	case KindFloat:
		v.kind = KindDouble
	case KindDouble:
		v.setBigDecimal(decimalFromFloat(v.f, 64))
	case KindBigDecimal:
		// already widest
	default:
		panic(errors.NewUnreachableError())
	}
	return v
}

// Normalize narrows the value to the narrowest kind of the same family
// that represents it exactly. Only the integer family narrows: a BigInt
// becomes a Long when it fits, a Long becomes an Int, and so on down to
// Byte. Decimal kinds are left unchanged; crossing into the integer
// family is only ever explicit (Convert, Round).
// The receiver is mutated and returned.
func (v *Value) Normalize() *Value {
	switch v.kind {
	case KindBigInt:
		if v.b.IsInt64() {
			v.setLong(v.b.Int64())
			return v.Normalize()
		}
	case KindShort, KindInt, KindLong:
		switch {
		case v.i >= math.MinInt8 && v.i <= math.MaxInt8:
			v.kind = KindByte
		case v.i >= math.MinInt16 && v.i <= math.MaxInt16:
			v.kind = KindShort
		case v.i >= math.MinInt32 && v.i <= math.MaxInt32:
			if v.kind == KindLong {
				v.kind = KindInt
			}
		}
	}
	return v
}

// Clone returns an independent copy with the same kind and value.
func (v *Value) Clone() *Value {
	c := &Value{kind: v.kind, i: v.i, f: v.f}
	if v.b != nil {
		c.b = new(big.Int).Set(v.b)
	}
	if v.d != nil {
		c.d = new(apd.Decimal)
		c.d.Set(v.d)
	}
	return c
}

// String renders the value in plain decimal form, never scientific
// notation. Non-finite floats render as NaN, Infinity and -Infinity.
func (v *Value) String() string {
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		return strconv.FormatInt(v.i, 10)
	case KindBigInt:
		return v.b.String()
	case KindFloat, KindDouble:
		if math.IsNaN(v.f) {
			return "NaN"
		}
		if math.IsInf(v.f, 1) {
			return "Infinity"
		}
		if math.IsInf(v.f, -1) {
			return "-Infinity"
		}
		return v.decimal().Text('f')
	case KindBigDecimal:
		return v.d.Text('f')
	}
	panic(errors.NewUnreachableError())
}
