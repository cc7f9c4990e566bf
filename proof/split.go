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

// SplitBasic splits a 101-byte basic proof into its challenge, timestamp and
// validator signature. The returned values are copies and do not alias data.
func SplitBasic(data []byte) (Challenge, Timestamp, Signature, error) {
	var challenge Challenge
	var timestamp Timestamp
	var validatorSig Signature
	if err := checkLength(VariantBasic, data); err != nil {
		return challenge, timestamp, validatorSig, err
	}
	copy(challenge[:], basicLayout.slice(data, FieldChallenge))
	copy(timestamp[:], basicLayout.slice(data, FieldTimestamp))
	copy(validatorSig[:], basicLayout.slice(data, FieldValidatorSignature))
	return challenge, timestamp, validatorSig, nil
}

// SplitSovereign splits a 166-byte sovereign proof into its challenge, sender
// signature, timestamp and validator signature
func SplitSovereign(
	data []byte,
) (Challenge, Signature, Timestamp, Signature, error) {
	var challenge Challenge
	var senderSig Signature
	var timestamp Timestamp
	var validatorSig Signature
	if err := checkLength(VariantSovereign, data); err != nil {
		return challenge, senderSig, timestamp, validatorSig, err
	}
	copy(challenge[:], sovereignLayout.slice(data, FieldChallenge))
	copy(senderSig[:], sovereignLayout.slice(data, FieldSenderSignature))
	copy(timestamp[:], sovereignLayout.slice(data, FieldTimestamp))
	copy(validatorSig[:], sovereignLayout.slice(data, FieldValidatorSignature))
	return challenge, senderSig, timestamp, validatorSig, nil
}

func ParseBasic(data []byte) (BasicProof, error) {
	challenge, timestamp, validatorSig, err := SplitBasic(data)
	if err != nil {
		return BasicProof{}, err
	}
	return BasicProof{
		Challenge:          challenge,
		Timestamp:          timestamp,
		ValidatorSignature: validatorSig,
	}, nil
}

func ParseSovereign(data []byte) (SovereignProof, error) {
	challenge, senderSig, timestamp, validatorSig, err := SplitSovereign(data)
	if err != nil {
		return SovereignProof{}, err
	}
	return SovereignProof{
		Challenge:          challenge,
		SenderSignature:    senderSig,
		Timestamp:          timestamp,
		ValidatorSignature: validatorSig,
	}, nil
}

// ChallengeAndTimestamp extracts the challenge and timestamp from a proof of
// either variant
func ChallengeAndTimestamp(
	variant Variant,
	data []byte,
) (Challenge, Timestamp, error) {
	var challenge Challenge
	var timestamp Timestamp
	layout := variant.Layout()
	if layout == nil {
		return challenge, timestamp, ErrUnknownVariant
	}
	if err := checkLength(variant, data); err != nil {
		return challenge, timestamp, err
	}
	copy(challenge[:], layout.slice(data, FieldChallenge))
	copy(timestamp[:], layout.slice(data, FieldTimestamp))
	return challenge, timestamp, nil
}
