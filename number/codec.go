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
	"math/big"

	"github.com/cockroachdb/apd/v3"
	"github.com/fxamacker/cbor/v2"

	"github.com/daiitech/naftah/errors"
)

// wireValue is the CBOR envelope for a Value. Fixed integers travel in
// I, binary floats in F (NaN and the infinities round-trip as IEEE
// payloads), and the arbitrary-precision kinds as their decimal text.
type wireValue struct {
	Kind uint8   `cbor:"1,keyasint"`
	I    int64   `cbor:"2,keyasint,omitempty"`
	F    float64 `cbor:"3,keyasint,omitempty"`
	Text string  `cbor:"4,keyasint,omitempty"`
}

var encMode = func() cbor.EncMode {
	m, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(errors.NewUnreachableError())
	}
	return m
}()

var decMode = func() cbor.DecMode {
	m, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(errors.NewUnreachableError())
	}
	return m
}()

// EncodeCBOR encodes the value in its canonical CBOR envelope.
func EncodeCBOR(v *Value) ([]byte, error) {
	wire := wireValue{Kind: uint8(v.kind)}
	switch v.kind {
	case KindByte, KindShort, KindInt, KindLong:
		wire.I = v.i
	case KindFloat, KindDouble:
		wire.F = v.f
	case KindBigInt:
		wire.Text = v.b.String()
	case KindBigDecimal:
		wire.Text = v.d.Text('E')
	default:
		panic(errors.NewUnreachableError())
	}
	return encMode.Marshal(wire)
}

// DecodeCBOR decodes a value encoded by EncodeCBOR, rejecting payloads
// whose content does not fit the declared kind.
func DecodeCBOR(data []byte) (*Value, error) {
	var wire wireValue
	if err := decMode.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("invalid encoded numeric value: %w", err)
	}

	kind := Kind(wire.Kind)
	switch kind {
	case KindByte, KindShort, KindInt, KindLong:
		if !fitsKind(wire.I, kind) {
			return nil, fmt.Errorf(
				"invalid encoded numeric value: %d out of range for %s",
				wire.I,
				kind,
			)
		}
		return &Value{kind: kind, i: wire.I}, nil

	case KindFloat:
		return NewFloat(float32(wire.F)), nil

	case KindDouble:
		return NewDouble(wire.F), nil

	case KindBigInt:
		b, ok := new(big.Int).SetString(wire.Text, 10)
		if !ok {
			return nil, fmt.Errorf(
				"invalid encoded numeric value: malformed integer text %q",
				wire.Text,
			)
		}
		return (&Value{}).setBigInt(b), nil

	case KindBigDecimal:
		d, _, err := apd.NewFromString(wire.Text)
		if err != nil || d.Form != apd.Finite {
			return nil, fmt.Errorf(
				"invalid encoded numeric value: malformed decimal text %q",
				wire.Text,
			)
		}
		return (&Value{}).setBigDecimal(d), nil
	}

	return nil, fmt.Errorf("invalid encoded numeric value: unknown kind %d", wire.Kind)
}
