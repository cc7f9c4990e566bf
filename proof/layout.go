// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package proof

import (
	"fmt"
	"strings"
)

type Variant uint8

const (
	VariantBasic     Variant = 1
	VariantSovereign Variant = 2
)

// Field names used in layouts
const (
	FieldChallenge          = "challenge"
	FieldSenderSignature    = "senderSignature"
	FieldTimestamp          = "timestamp"
	FieldValidatorSignature = "validatorSignature"
)

// Field describes one fixed-size region of a proof
type Field struct {
	Name   string
	Offset int
	Length int
}

// End returns the exclusive end offset of the field
func (f Field) End() int {
	return f.Offset + f.Length
}

// Layout is the ordered list of fields making up a proof variant. Fields are
// contiguous and the last field ends at the proof size.
type Layout []Field

var basicLayout = Layout{
	{Name: FieldChallenge, Offset: 0, Length: ChallengeSize},
	{Name: FieldTimestamp, Offset: 32, Length: TimestampSize},
	{Name: FieldValidatorSignature, Offset: 36, Length: SignatureSize},
}

var sovereignLayout = Layout{
	{Name: FieldChallenge, Offset: 0, Length: ChallengeSize},
	{Name: FieldSenderSignature, Offset: 32, Length: SignatureSize},
	{Name: FieldTimestamp, Offset: 97, Length: TimestampSize},
	{Name: FieldValidatorSignature, Offset: 101, Length: SignatureSize},
}

// Field returns the named field. It panics if the layout has no such field,
// which would indicate a programming error rather than bad input.
func (l Layout) Field(name string) Field {
	for _, f := range l {
		if f.Name == name {
			return f
		}
	}
	panic(fmt.Sprintf("proof layout has no field %q", name))
}

// Size returns the total number of bytes covered by the layout
func (l Layout) Size() int {
	if len(l) == 0 {
		return 0
	}
	return l[len(l)-1].End()
}

// slice returns the bytes of the named field. The caller must have checked
// the length of data against Size()
func (l Layout) slice(data []byte, name string) []byte {
	f := l.Field(name)
	return data[f.Offset:f.End()]
}

// Layout returns the field table for the variant, or nil for an unknown
// variant
func (v Variant) Layout() Layout {
	switch v {
	case VariantBasic:
		return basicLayout
	case VariantSovereign:
		return sovereignLayout
	default:
		return nil
	}
}

// Size returns the exact proof length for the variant
func (v Variant) Size() int {
	return v.Layout().Size()
}

func (v Variant) String() string {
	switch v {
	case VariantBasic:
		return "basic"
	case VariantSovereign:
		return "sovereign"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(v))
	}
}

// ParseVariant maps a variant name as produced by String() back to a Variant
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic":
		return VariantBasic, nil
	case "sovereign":
		return VariantSovereign, nil
	default:
		return 0, fmt.Errorf("unknown proof variant: %q", name)
	}
}
