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
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestCompareAcrossKinds(t *testing.T) {

	t.Parallel()

	// equal magnitude compares equal regardless of representation
	assert.Equal(t, 0, Compare(NewLong(1), NewDouble(1)))
	assert.Equal(t, 0, Compare(NewByte(1), NewBigInt(big.NewInt(1))))
	assert.Equal(t, 0, Compare(NewFloat(0.5), NewBigDecimal(requireDecimal(t, "0.50"))))

	assert.Equal(t, -1, Compare(NewDouble(0.1), NewDouble(0.2)))
	assert.Equal(t, 1, Compare(NewLong(math.MaxInt64), NewInt(1)))

	huge, ok := new(big.Int).SetString("99999999999999999999999999", 10)
	assert.True(t, ok)
	assert.Equal(t, -1, Compare(NewLong(math.MaxInt64), NewBigInt(huge)))

	// binary 0.1 is not decimal 0.1 but compares through its written form
	assert.Equal(t, 0, Compare(NewDouble(0.1), NewBigDecimal(requireDecimal(t, "0.1"))))
}

func TestCompareTotalOrderWithNaN(t *testing.T) {

	t.Parallel()

	nan := NewDouble(math.NaN())

	assert.Equal(t, 0, Compare(nan, NewFloat(float32(math.NaN()))))
	assert.Equal(t, -1, Compare(nan, NewDouble(math.Inf(-1))))
	assert.Equal(t, -1, Compare(nan, NewLong(math.MinInt64)))
	assert.Equal(t, 1, Compare(NewLong(0), nan))

	inf := NewDouble(math.Inf(1))
	assert.Equal(t, 1, Compare(inf, NewDouble(math.MaxFloat64)))
	assert.Equal(t, 1, Compare(inf, NewBigInt(big.NewInt(math.MaxInt64))))
	assert.Equal(t, 0, Compare(inf, NewFloat(float32(math.Inf(1)))))
}

func TestEqual(t *testing.T) {

	t.Parallel()

	assert.True(t, Equal(NewInt(3), NewDouble(3)))
	assert.True(t, Equal(NewByte(0), NewBigDecimal(requireDecimal(t, "0.0"))))
	assert.False(t, Equal(NewInt(3), NewDouble(3.5)))

	// NaN equals nothing, itself included
	nan := NewDouble(math.NaN())
	assert.False(t, Equal(nan, nan))
	assert.False(t, Equal(nan, NewInt(0)))
}

func TestCompareAgreesWithIntegerOrder(t *testing.T) {

	properties := gopter.NewProperties(nil)

	properties.Property("matches int64 order", prop.ForAll(
		func(a, b int64) bool {
			expected := 0
			if a < b {
				expected = -1
			} else if a > b {
				expected = 1
			}
			return Compare(NewLong(a), NewLong(b)) == expected
		},
		gen.Int64(),
		gen.Int64(),
	))

	properties.Property("antisymmetric across kinds", prop.ForAll(
		func(a int32, b int32) bool {
			left := NewInt(a)
			right := NewBigInt(big.NewInt(int64(b)))
			return Compare(left, right) == -Compare(right, left)
		},
		gen.Int32(),
		gen.Int32(),
	))

	properties.TestingRun(t)
}
