/*
 * bip32hdwallet: hierarchical deterministic key trees for bitcoin wallets
 * Copyright (C) 2025 bip32hdwallet authors
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

// Package bip32 derives, serialises and validates hierarchical deterministic
// key trees. Private and public extended keys are deliberately distinct
// types: only the private variant can derive hardened children or reveal a
// scalar, and that asymmetry is visible at compile time rather than checked
// at run time. The small ExtendedKey interface covers the capabilities the
// two kinds share.
package bip32

// ExtendedKey is the capability common to both extended key kinds:
// serialisation and metadata access. Derivation is intentionally absent, as
// its signature differs per kind.
type ExtendedKey interface {
	// Serialize encodes the key into the 78-byte extended key payload.
	Serialize() []byte
	// String encodes the key as a Base58Check string.
	String() string
	// Fingerprint returns the 4-byte identifier of the key.
	Fingerprint() [4]byte
	// Depth returns the number of derivation steps from the master key.
	Depth() uint8
	// ChainCode returns the 32-byte chain code.
	ChainCode() [32]byte
	// ChildNumber returns the child number the key was derived with.
	ChildNumber() ChildNumber
	// Network returns the network the key serialises for.
	Network() Network
}

// Both key kinds satisfy the shared capability interface.
var (
	_ ExtendedKey = (*ExtendedPrivateKey)(nil)
	_ ExtendedKey = (*ExtendedPublicKey)(nil)
)

// ParseExtendedKey decodes an extended key string of either kind, dispatching
// on the version prefix.
func ParseExtendedKey(s string) (ExtendedKey, error) {
	p, network, private, err := decodeExtendedKey(s)
	if err != nil {
		return nil, err
	}
	if private {
		return privateKeyFromPayload(p, network)
	}
	return publicKeyFromPayload(p, network)
}
