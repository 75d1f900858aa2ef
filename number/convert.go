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

	"github.com/daiitech/naftah/errors"
)

// Convert changes a value's kind explicitly. Unlike the implicit
// promotions of arithmetic, Convert may narrow and may cross between
// the integer and decimal families, but only when the target kind
// represents the value exactly; anything else fails with
// NumericConversionOverflowError. Converting 3.0 to Int succeeds,
// converting 3.5 or 300 to Byte does not.
func Convert(v *Value, target Kind) (*Value, error) {
	if target == v.kind {
		return v.Clone(), nil
	}

	overflow := func() error {
		return NumericConversionOverflowError{Value: v.String(), Target: target}
	}

	switch target {

	case KindByte, KindShort, KindInt, KindLong, KindBigInt:
		if !v.isFinite() {
			return nil, overflow()
		}
		if v.IsDecimal() && !decimalIsIntegral(v.decimal()) {
			return nil, overflow()
		}
		b := v.AsBigInt()
		if target == KindBigInt {
			return (&Value{}).setBigInt(b), nil
		}
		if !b.IsInt64() {
			return nil, overflow()
		}
		i := b.Int64()
		switch target {
		case KindByte:
			res, err := safecast.Convert[int8](i)
			if err != nil {
				return nil, overflow()
			}
			return NewByte(res), nil
		case KindShort:
			res, err := safecast.Convert[int16](i)
			if err != nil {
				return nil, overflow()
			}
			return NewShort(res), nil
		case KindInt:
			res, err := safecast.Convert[int32](i)
			if err != nil {
				return nil, overflow()
			}
			return NewInt(res), nil
		case KindLong:
			return NewLong(i), nil
		}

	case KindFloat:
		if !v.isFinite() {
			return NewFloat(float32(v.f)), nil
		}
		candidate := v.AsFloat32()
		if !floatIsExact(v.decimal(), float64(candidate), 32) {
			return nil, overflow()
		}
		return NewFloat(candidate), nil

	case KindDouble:
		if !v.isFinite() {
			return NewDouble(v.f), nil
		}
		candidate := v.AsFloat64()
		if !floatIsExact(v.decimal(), candidate, 64) {
			return nil, overflow()
		}
		return NewDouble(candidate), nil

	case KindBigDecimal:
		if !v.isFinite() {
			return nil, overflow()
		}
		return (&Value{}).setBigDecimal(v.decimal()), nil
	}

	panic(errors.NewUnreachableError())
}
