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
	"github.com/daiitech/naftah/errors"
)

// Kind identifies the concrete representation a Value currently holds.
//
// Kinds partition into two families: the integer family
// (KindByte < KindShort < KindInt < KindLong < KindBigInt)
// and the decimal family
// (KindFloat < KindDouble < KindBigDecimal).
// Promotion widens within a family and never crosses between them;
// an operation over mixed operands computes at the decimal operand's
// kind.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindByte
	KindShort
	KindInt
	KindLong
	KindBigInt

	KindFloat
	KindDouble
	KindBigDecimal
)

func (k Kind) String() string {
	switch k {
	case KindByte:
		return "Byte"
	case KindShort:
		return "Short"
	case KindInt:
		return "Int"
	case KindLong:
		return "Long"
	case KindBigInt:
		return "BigInt"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindBigDecimal:
		return "BigDecimal"
	case KindInvalid:
		return "Invalid"
	}
	panic(errors.NewUnreachableError())
}

// IsInteger reports whether the kind belongs to the integer family.
func (k Kind) IsInteger() bool {
	switch k {
	case KindByte, KindShort, KindInt, KindLong, KindBigInt:
		return true
	}
	return false
}

// IsDecimal reports whether the kind belongs to the decimal family.
func (k Kind) IsDecimal() bool {
	switch k {
	case KindFloat, KindDouble, KindBigDecimal:
		return true
	}
	return false
}

// BitWidth returns the width in bits of a fixed-width integer kind,
// and 0 for every other kind.
func (k Kind) BitWidth() int {
	switch k {
	case KindByte:
		return 8
	case KindShort:
		return 16
	case KindInt:
		return 32
	case KindLong:
		return 64
	}
	return 0
}

// Wider returns the kind one step up in the same family.
// The widest kind of each family (KindBigInt, KindBigDecimal)
// is returned unchanged.
func (k Kind) Wider() Kind {
	switch k {
	case KindByte:
		return KindShort
	case KindShort:
		return KindInt
	case KindInt:
		return KindLong
	case KindLong:
		return KindBigInt
	case KindBigInt:
		return KindBigInt
	case KindFloat:
		return KindDouble
	case KindDouble:
		return KindBigDecimal
	case KindBigDecimal:
		return KindBigDecimal
	}
	panic(errors.NewUnreachableError())
}

// Cmp orders two kinds of the same family by width,
// returning -1, 0 or 1.
func (k Kind) Cmp(other Kind) int {
	switch {
	case k.widthRank() < other.widthRank():
		return -1
	case k.widthRank() > other.widthRank():
		return 1
	}
	return 0
}

// widthRank orders kinds within their family, narrowest first.
func (k Kind) widthRank() int {
	switch k {
	case KindByte, KindFloat:
		return 1
	case KindShort, KindDouble:
		return 2
	case KindInt, KindBigDecimal:
		return 3
	case KindLong:
		return 4
	case KindBigInt:
		return 5
	}
	return 0
}

// widest returns the wider of two kinds of the same family.
func widest(a, b Kind) Kind {
	if b.widthRank() > a.widthRank() {
		return b
	}
	return a
}
