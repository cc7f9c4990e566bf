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
	"errors"
	"fmt"
)

// ErrInvalidProofLength is matched by every InvalidProofLengthError
var ErrInvalidProofLength = errors.New("PoH: Invalid proof length")

var ErrUnknownVariant = errors.New("unknown proof variant")

// InvalidProofLengthError reports a proof whose length does not match the
// fixed size of the requested variant. This is a malformed-input error and
// never a validation failure.
type InvalidProofLengthError struct {
	Variant  Variant
	Expected int
	Got      int
}

func (e InvalidProofLengthError) Error() string {
	return fmt.Sprintf(
		"%s: %s proof must be %d bytes, got %d",
		ErrInvalidProofLength,
		e.Variant,
		e.Expected,
		e.Got,
	)
}

func (e InvalidProofLengthError) Is(target error) bool {
	return target == ErrInvalidProofLength
}

func checkLength(variant Variant, data []byte) error {
	if len(data) != variant.Size() {
		return InvalidProofLengthError{
			Variant:  variant,
			Expected: variant.Size(),
			Got:      len(data),
		}
	}
	return nil
}
