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
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHex decodes a hex string with an optional 0x prefix, which is how the
// off-chain tooling passes proofs around
func DecodeHex(hexData string) ([]byte, error) {
	hexData = strings.TrimSpace(hexData)
	hexData = strings.TrimPrefix(strings.TrimPrefix(hexData, "0x"), "0X")
	ret, err := hex.DecodeString(hexData)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return ret, nil
}

// EncodeHex is the inverse of DecodeHex and always adds the 0x prefix
func EncodeHex(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}

// ParseChallenge decodes a 32-byte challenge from hex
func ParseChallenge(hexData string) (Challenge, error) {
	var ret Challenge
	data, err := DecodeHex(hexData)
	if err != nil {
		return ret, err
	}
	if len(data) != ChallengeSize {
		return ret, fmt.Errorf(
			"challenge must be %d bytes, got %d",
			ChallengeSize,
			len(data),
		)
	}
	copy(ret[:], data)
	return ret, nil
}

// ParseTimestamp decodes a 4-byte big-endian timestamp from hex
func ParseTimestamp(hexData string) (Timestamp, error) {
	var ret Timestamp
	data, err := DecodeHex(hexData)
	if err != nil {
		return ret, err
	}
	if len(data) != TimestampSize {
		return ret, fmt.Errorf(
			"timestamp must be %d bytes, got %d",
			TimestampSize,
			len(data),
		)
	}
	copy(ret[:], data)
	return ret, nil
}
