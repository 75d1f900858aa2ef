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
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// decimal separators folded to '.' before parsing: the ASCII comma and
// the Arabic decimal, thousands and comma separators.
var decimalSeparatorFolder = strings.NewReplacer(
	",", ".",
	"٫", ".", // ٫
	"،", ".", // ،
	"٬", ".", // ٬
)

// Parse reads a base-10 numeric literal into the narrowest kind that
// holds it exactly. Integer literals probe Byte through Long and fall
// back to BigInt; literals with a fraction or exponent probe Float and
// Double, falling back to BigDecimal when neither binary kind
// round-trips the written digits. Comma and Arabic decimal separators
// are accepted in place of '.'.
func Parse(text string) (*Value, error) {
	return ParseRadix(text, 10)
}

// ParseRadix is Parse with an explicit radix between 2 and 36.
// Fractional literals are only meaningful in radix 10.
func ParseRadix(text string, radix int) (*Value, error) {
	if radix < 2 || radix > 36 {
		return nil, InvalidNumericLiteralError{Literal: text, Radix: radix}
	}

	literal := strings.TrimSpace(text)
	if radix == 10 {
		literal = decimalSeparatorFolder.Replace(literal)
		if f, err := strconv.ParseFloat(literal, 64); err == nil &&
			(math.IsNaN(f) || math.IsInf(f, 0)) {
			return NewDouble(f), nil
		}
		if strings.ContainsAny(literal, ".eE") {
			return parseDecimal(text, literal)
		}
	}

	for _, bitSize := range []int{8, 16, 32, 64} {
		if i, err := strconv.ParseInt(literal, radix, bitSize); err == nil {
			switch bitSize {
			case 8:
				return NewByte(int8(i)), nil
			case 16:
				return NewShort(int16(i)), nil
			case 32:
				return NewInt(int32(i)), nil
			default:
				return NewLong(i), nil
			}
		}
	}
	if b, ok := new(big.Int).SetString(literal, radix); ok {
		return NewBigInt(b), nil
	}
	return nil, InvalidNumericLiteralError{Literal: text, Radix: radix}
}

func parseDecimal(original, literal string) (*Value, error) {
	exact, _, err := apd.NewFromString(literal)
	if err != nil || exact.Form != apd.Finite {
		return nil, InvalidNumericLiteralError{Literal: original, Radix: 10, Err: err}
	}

	if narrow, err := strconv.ParseFloat(literal, 32); err == nil &&
		!math.IsInf(narrow, 0) &&
		floatIsExact(exact, narrow, 32) {
		return NewFloat(float32(narrow)), nil
	}
	if wide, err := strconv.ParseFloat(literal, 64); err == nil &&
		!math.IsInf(wide, 0) &&
		floatIsExact(exact, wide, 64) {
		return NewDouble(wide), nil
	}
	return (&Value{}).setBigDecimal(exact), nil
}

// TryParse is a forgiving Parse: a blank input is Int 0 and an
// unparseable one is Double NaN, so it never fails.
func TryParse(text string) *Value {
	if strings.TrimSpace(text) == "" {
		return NewInt(0)
	}
	v, err := Parse(text)
	if err != nil {
		return NewDouble(math.NaN())
	}
	return v
}
