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
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/pkg/errors"
)

// serializedKeyLen is the length of the extended key payload:
// version(4) || depth(1) || parent fingerprint(4) || child number(4) ||
// chain code(32) || key material(33).
const serializedKeyLen = 4 + 1 + 4 + 4 + 32 + 33

// checksumLen is the length of the Base58Check checksum suffix.
const checksumLen = 4

// keyPayload is the decoded form of the 78-byte serialisation shared by both
// key kinds. keyData holds either 0x00 || scalar or a compressed point.
type keyPayload struct {
	version           [4]byte
	depth             uint8
	parentFingerprint [4]byte
	childNumber       ChildNumber
	chainCode         [32]byte
	keyData           [33]byte
}

// serialize encodes the payload into the fixed 78-byte wire layout.
func (p *keyPayload) serialize() []byte {
	out := make([]byte, 0, serializedKeyLen)
	out = append(out, p.version[:]...)
	out = append(out, p.depth)
	out = append(out, p.parentFingerprint[:]...)
	out = binary.BigEndian.AppendUint32(out, p.childNumber.Uint32())
	out = append(out, p.chainCode[:]...)
	out = append(out, p.keyData[:]...)
	return out
}

// deserializePayload splits a 78-byte payload into its fields. Length is the
// only structural property checked here; key material validation belongs to
// the kind-specific parsers.
func deserializePayload(data []byte) (keyPayload, error) {
	var p keyPayload
	if len(data) != serializedKeyLen {
		return p, errors.Wrapf(ErrInvalidLength, "decoded payload is %d bytes", len(data))
	}
	copy(p.version[:], data[0:4])
	p.depth = data[4]
	copy(p.parentFingerprint[:], data[5:9])
	p.childNumber = childNumberFromRaw(binary.BigEndian.Uint32(data[9:13]))
	copy(p.chainCode[:], data[13:45])
	copy(p.keyData[:], data[45:78])
	return p, nil
}

// doubleChecksum computes the Base58Check checksum: the first 4 bytes of
// SHA256(SHA256(data)).
func doubleChecksum(data []byte) [checksumLen]byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	var check [checksumLen]byte
	copy(check[:], second[:checksumLen])
	return check
}

// base58CheckEncode appends the double-SHA256 checksum to the payload and
// encodes the result with the Base58 alphabet.
func base58CheckEncode(payload []byte) string {
	check := doubleChecksum(payload)
	full := make([]byte, 0, len(payload)+checksumLen)
	full = append(full, payload...)
	full = append(full, check[:]...)
	return base58.Encode(full)
}

// base58CheckDecode decodes a Base58Check string and verifies its checksum,
// returning the payload without the checksum suffix. The checksum is checked
// before any of the payload is interpreted.
func base58CheckDecode(s string) ([]byte, error) {
	decoded := base58.Decode(s)
	if len(decoded) < checksumLen {
		return nil, errors.Wrapf(ErrInvalidLength, "decoded string is %d bytes", len(decoded))
	}
	payload := decoded[:len(decoded)-checksumLen]
	check := doubleChecksum(payload)
	if !hmac.Equal(check[:], decoded[len(decoded)-checksumLen:]) {
		return nil, errors.Wrap(ErrInvalidChecksum, "decode extended key")
	}
	return payload, nil
}

// decodeExtendedKey performs the kind-independent half of parsing an extended
// key string: Base58Check decode, length check, and version lookup.
func decodeExtendedKey(s string) (keyPayload, Network, bool, error) {
	payload, err := base58CheckDecode(s)
	if err != nil {
		return keyPayload{}, 0, false, err
	}
	p, err := deserializePayload(payload)
	if err != nil {
		return keyPayload{}, 0, false, err
	}
	network, private, ok := lookupVersion(p.version)
	if !ok {
		return keyPayload{}, 0, false, errors.Wrapf(ErrUnknownVersion, "version %x", p.version)
	}
	return p, network, private, nil
}

// fingerprint computes the 4-byte key identifier: the first bytes of
// RIPEMD160(SHA256(compressed public key)).
func fingerprint(pub *btcec.PublicKey) [4]byte {
	var fp [4]byte
	copy(fp[:], btcutil.Hash160(pub.SerializeCompressed())[:4])
	return fp
}

// hmacSHA512 is the digest at the heart of both master key generation and
// child derivation.
func hmacSHA512(key, data []byte) [sha512.Size]byte {
	mac := hmac.New(sha512.New, key)
	mac.Write(data)
	var sum [sha512.Size]byte
	copy(sum[:], mac.Sum(nil))
	return sum
}
