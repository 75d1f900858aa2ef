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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreIncrementWidensPastMaximum(t *testing.T) {

	t.Parallel()

	v := NewByte(127)
	for i, expected := range []int64{128, 129, 130, 131, 132} {
		res, err := PreInc(v)
		require.NoError(t, err)
		assert.Same(t, v, res)
		assert.Equal(t, expected, v.AsInt64(), "step %d", i+1)
		assert.Equal(t, KindShort, v.Kind(), "step %d", i+1)
	}

	long := NewLong(math.MaxInt64)
	_, err := PreInc(long)
	require.NoError(t, err)
	assert.Equal(t, KindBigInt, long.Kind())
	assert.Equal(t, "9223372036854775808", long.String())
}

func TestPreDecrementWidensPastMinimum(t *testing.T) {

	t.Parallel()

	v := NewByte(-128)
	_, err := PreDec(v)
	require.NoError(t, err)
	assert.Equal(t, KindShort, v.Kind())
	assert.Equal(t, int64(-129), v.AsInt64())

	long := NewLong(math.MinInt64)
	_, err = PreDec(long)
	require.NoError(t, err)
	assert.Equal(t, KindBigInt, long.Kind())
	assert.Equal(t, "-9223372036854775809", long.String())
}

func TestIncrementNormalizesResult(t *testing.T) {

	t.Parallel()

	// like every operation, the stepped value narrows when it fits
	v := NewShort(5)
	_, err := PreInc(v)
	require.NoError(t, err)
	assert.Equal(t, KindByte, v.Kind())
	assert.Equal(t, int64(6), v.AsInt64())

	b := NewBigInt(big.NewInt(1))
	_, err = PreInc(b)
	require.NoError(t, err)
	assert.Equal(t, KindByte, b.Kind())
	assert.Equal(t, "2", b.String())

	// stepping back inside a narrower range narrows
	w := NewShort(128)
	_, err = PreDec(w)
	require.NoError(t, err)
	assert.Equal(t, KindByte, w.Kind())
	assert.Equal(t, int64(127), w.AsInt64())

	long := NewLong(math.MinInt32)
	_, err = PreInc(long)
	require.NoError(t, err)
	assert.Equal(t, KindInt, long.Kind())
	assert.Equal(t, int64(math.MinInt32+1), long.AsInt64())
}

func TestPostIncrementReturnsPriorValue(t *testing.T) {

	t.Parallel()

	v := NewInt(200)
	before, err := PostInc(v)
	require.NoError(t, err)
	assert.Equal(t, int64(200), before.AsInt64())
	assert.Equal(t, KindShort, before.Kind())
	assert.Equal(t, int64(201), v.AsInt64())
	assert.Equal(t, KindShort, v.Kind())

	before, err = PostDec(v)
	require.NoError(t, err)
	assert.Equal(t, int64(201), before.AsInt64())
	assert.Equal(t, int64(200), v.AsInt64())
}

func TestIncrementDecimalKinds(t *testing.T) {

	t.Parallel()

	d := NewDouble(0.5)
	_, err := PreInc(d)
	require.NoError(t, err)
	assert.Equal(t, 1.5, d.AsFloat64())
	assert.Equal(t, KindDouble, d.Kind())

	f := NewFloat(0.5)
	_, err = PreDec(f)
	require.NoError(t, err)
	assert.Equal(t, KindFloat, f.Kind())
	assert.Equal(t, float32(-0.5), f.AsFloat32())

	// the float boundary steps over to Double
	edge := NewFloat(math.MaxFloat32)
	_, err = PreInc(edge)
	require.NoError(t, err)
	assert.Equal(t, KindDouble, edge.Kind())

	// and the double boundary over to BigDecimal, exactly
	top := NewDouble(math.MaxFloat64)
	_, err = PreInc(top)
	require.NoError(t, err)
	assert.Equal(t, KindBigDecimal, top.Kind())
	assert.Equal(t, 1, Compare(top, NewDouble(math.MaxFloat64)))

	bottom := NewDouble(-math.MaxFloat64)
	_, err = PreDec(bottom)
	require.NoError(t, err)
	assert.Equal(t, KindBigDecimal, bottom.Kind())
	assert.Equal(t, -1, Compare(bottom, NewDouble(-math.MaxFloat64)))

	bd := NewBigDecimal(requireDecimal(t, "0.75"))
	_, err = PreInc(bd)
	require.NoError(t, err)
	assert.Equal(t, "1.75", bd.String())
}

func TestIncrementNonFiniteDouble(t *testing.T) {

	t.Parallel()

	v := NewDouble(math.Inf(1))
	_, err := PreInc(v)
	require.NoError(t, err)
	assert.Equal(t, KindDouble, v.Kind())
	assert.True(t, v.IsInfinite())

	n := NewDouble(math.NaN())
	_, err = PreDec(n)
	require.NoError(t, err)
	assert.True(t, n.IsNaN())
}
