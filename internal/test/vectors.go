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

package test

// Sample keys and addresses. The addresses are the ones derived from the
// private keys (checked against the original off-chain tooling).
const (
	SenderKey     = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	SenderAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	SenderTron    = "TYBNgWfhGuNzdLtjKtxXTfskAhTbMcqbaG"

	ValidatorKey     = "28376b117a7e6f7070a7a69cb7c7a2f583da0700d7240bffbc2ca724e787a5fa"
	ValidatorAddress = "0x27fB77993FEe0c8c49685Ee98c0c9030017cC223"
	ValidatorTron    = "TDccbna5PR6W2cA8XHCBjDQnvY2jfiAVtt"

	SomeoneKey     = "6b337d495469fd625fd76fb9cb2f73faee65c502d369f61aba5ec7e680293492"
	SomeoneAddress = "0xd422e8b828A82936F82c49753074E10f2b5C8011"
	SomeoneTron    = "TVJt5FWpvSK2uSFKFd1tBxiya8fJmLxLkb"

	ZeroAddress = "0x0000000000000000000000000000000000000000"
	ZeroTron    = "T9yD14Nj9j7xAB4dbGeiX9h8unkKHxuWwb"
)

// Challenge and timestamp (2022-03-25 00:00:00Z)
const (
	Challenge = "ef9990adc264ccc6e55bd0cfbf8dbef5177760273ee5aa3f65aae4bbb014750f"
	Timestamp = "623d0600"
)

// Digests over Challenge and Timestamp
const (
	// keccak256(challenge || timestamp)
	BasicDigest = "fb916bef3350eac3452616eb5e639cf9bfb030de5c28c8b1a317f80372d24f4a"
	// keccak256("\x19TRON Signed Message:\n32" || BasicDigest)
	BasicPrefixedDigest = "64c1748ebf34593eba07105474ef790d6c88c9c88a7616043d03e8f55f7674f7"
	// keccak256(challenge || SenderChallengeSignature || timestamp)
	SovereignDigest = "2091648316b3f58c59f8f1af5a1af8c07ac9e6efb4c5be96172ca333c463a272"
	// keccak256("\x19TRON Signed Message:\n32" || SovereignDigest)
	SovereignPrefixedDigest = "7ab2cef47cbad26a76a58fe3c0648d0933f6986f7f4f305cab318b0a0335197b"
)

// Signatures (r || s || v) produced with RFC 6979 nonces
const (
	// validator over BasicDigest
	ValidatorBasicSignature = "fc5865a6b4d5211f3f356cf970c08772aeddb15ecaa4f1127014f5091ff4de37738985bd90a375802c855086115dd017d00a4b333154c9181bd4681f4cbbb1571b"
	// someone over BasicDigest
	SomeoneBasicSignature = "ef669aa356fd6939ac92dbf11899008f4eb5ab0b25da52114dff03df3c55388e41ee0f8f0e32aa8a805d010eb771de707774e61a476bd216bbc003716971a8d01b"
	// sender over Challenge
	SenderChallengeSignature = "30ee6c372ade62bb3e7adf5479ce4e9f799ecf4f178486e823b58631ea276d9a4777ede0015ea1530cca949e00cb24e7ed2c2fa8a5d65c63d8ce60b5f062ce3c1b"
	// validator over SovereignDigest
	ValidatorSovereignSignature = "734803f3d081e0547839a8045d7662bff6b36e4a87ddd6061d2f4b71167185d177a4fdcd67ecab77d740f13f31a9b0ced262bfbf17f776704440170c2fb621471c"
	// someone over SovereignDigest
	SomeoneSovereignSignature = "276e7482168aa437da1d07d801ac871d1e3b54eaf6ad31c7d2db7a7c362b7e28230635770fc9e1c8b44b2c166f293055a219f7afc1b161b704a64242adccf7e51b"
)

// ValidBasicProof returns a basic proof signed by the validator
func ValidBasicProof() []byte {
	return Concat(Challenge, Timestamp, ValidatorBasicSignature)
}

// InvalidBasicProof returns a well-formed basic proof signed by someone other
// than the validator
func InvalidBasicProof() []byte {
	return Concat(Challenge, Timestamp, SomeoneBasicSignature)
}

// ValidSovereignProof returns a sovereign proof signed by the sender and the
// validator
func ValidSovereignProof() []byte {
	return Concat(
		Challenge,
		SenderChallengeSignature,
		Timestamp,
		ValidatorSovereignSignature,
	)
}

// InvalidSovereignProof returns a well-formed sovereign proof whose validator
// signature comes from someone other than the validator
func InvalidSovereignProof() []byte {
	return Concat(
		Challenge,
		SenderChallengeSignature,
		Timestamp,
		SomeoneSovereignSignature,
	)
}
