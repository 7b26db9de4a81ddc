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

package bip32

import (
	"github.com/pkg/errors"
)

// Set of errors returned by this package. Fallible operations wrap these
// sentinels with the failing index, segment or byte offset, so callers can
// recover the kind with errors.Cause.
var (
	// ErrInvalidSeedLength is returned by NewMaster when the seed is outside
	// the [MinSeedBytes, MaxSeedBytes] range permitted for master keys.
	ErrInvalidSeedLength = errors.New("seed length must be between 16 and 64 bytes")

	// ErrInvalidMasterKey is returned by NewMaster in the (astronomically
	// unlikely) case that the seed digest falls outside the valid scalar
	// range for the curve.
	ErrInvalidMasterKey = errors.New("seed produces an invalid master key")

	// ErrInvalidChildKey is returned by child derivation when the derived
	// intermediate value falls outside the valid scalar range, or the
	// resulting key is the zero scalar / point at infinity. There is no
	// retry built in: callers wanting the historical skip-to-next-index
	// behaviour implement the loop themselves.
	ErrInvalidChildKey = errors.New("derived child key is invalid")

	// ErrDepthOverflow is returned when deriving a child of a key that is
	// already at the maximum depth of 255.
	ErrDepthOverflow = errors.New("derivation depth exceeds maximum of 255")

	// ErrHardenedDerivation is returned when a hardened child is requested
	// from an extended public key. Hardened derivation mixes the parent's
	// private scalar into the HMAC input, so a public key alone cannot
	// perform it.
	ErrHardenedDerivation = errors.New("hardened derivation requires a private key")

	// ErrInvalidLength is returned when decoding an extended key string
	// whose decoded payload is not exactly 78 bytes.
	ErrInvalidLength = errors.New("extended key payload must be 78 bytes")

	// ErrInvalidChecksum is returned when the trailing 4-byte double-SHA256
	// checksum of a Base58Check string does not match its payload.
	ErrInvalidChecksum = errors.New("base58check checksum mismatch")

	// ErrUnknownVersion is returned when an extended key's 4-byte version
	// prefix matches no registered network.
	ErrUnknownVersion = errors.New("unknown extended key version prefix")

	// ErrVersionKindMismatch is returned when a correctly encoded extended
	// key of the wrong kind is parsed, e.g. an xpub string passed to
	// ParseExtendedPrivateKey.
	ErrVersionKindMismatch = errors.New("extended key kind does not match version prefix")

	// ErrInvalidKeyData is returned when a structurally valid extended key
	// string carries key material that is not a valid scalar or curve
	// point.
	ErrInvalidKeyData = errors.New("extended key contains invalid key material")

	// ErrMalformedPath is returned when parsing a derivation path string
	// that does not follow the m/0'/1/2 grammar.
	ErrMalformedPath = errors.New("malformed derivation path")

	// ErrIndexOutOfRange is returned when a derivation index is 2^31 or
	// larger. Such an index without a hardened marker would be ambiguous
	// with the hardened encoding, so it is rejected outright.
	ErrIndexOutOfRange = errors.New("derivation index out of range")
)
