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
	"bytes"
	"encoding/binary"
	"math"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/pkg/errors"
)

// Seed length bounds accepted by NewMaster.
const (
	MinSeedBytes = 16
	MaxSeedBytes = 64
)

// masterHMACKey is the fixed HMAC key used to turn a seed into a master key.
var masterHMACKey = []byte("Bitcoin seed")

// ExtendedPrivateKey is a private key with the chain code and metadata needed
// to derive further keys. Values are immutable: every derivation returns a
// new key, and the scalar is owned exclusively by the value holding it, so
// keys can be shared across goroutines without synchronisation.
type ExtendedPrivateKey struct {
	key               *btcec.PrivateKey
	chainCode         [32]byte
	depth             uint8
	parentFingerprint [4]byte
	childNumber       ChildNumber
	network           Network
}

// NewMaster computes the master extended private key for a seed, per the
// HMAC-SHA512("Bitcoin seed", seed) construction. The left half of the digest
// becomes the master scalar, the right half the master chain code.
func NewMaster(seed []byte, network Network) (*ExtendedPrivateKey, error) {
	if len(seed) < MinSeedBytes || len(seed) > MaxSeedBytes {
		return nil, errors.Wrapf(ErrInvalidSeedLength, "got %d bytes", len(seed))
	}
	sum := hmacSHA512(masterHMACKey, seed)

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(sum[:32]); overflow || scalar.IsZero() {
		return nil, errors.Wrap(ErrInvalidMasterKey, "digest left half is not a usable scalar")
	}

	master := &ExtendedPrivateKey{
		key:     btcec.PrivKeyFromScalar(&scalar),
		network: network,
	}
	copy(master.chainCode[:], sum[32:])
	return master, nil
}

// DeriveChild implements CKDpriv: it derives the child private key for the
// given child number. Hardened children mix the parent scalar into the HMAC
// input; non-hardened children use the parent's compressed public point. An
// out-of-range intermediate scalar or a zero child scalar is reported as
// ErrInvalidChildKey rather than silently skipped.
func (k *ExtendedPrivateKey) DeriveChild(child ChildNumber) (*ExtendedPrivateKey, error) {
	if k.depth == math.MaxUint8 {
		return nil, errors.Wrapf(ErrDepthOverflow, "cannot derive child %s", child)
	}

	data := make([]byte, 0, 37)
	if child.IsHardened() {
		data = append(data, 0x00)
		data = append(data, k.key.Serialize()...)
	} else {
		data = append(data, k.key.PubKey().SerializeCompressed()...)
	}
	data = binary.BigEndian.AppendUint32(data, child.Uint32())
	sum := hmacSHA512(k.chainCode[:], data)

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(sum[:32]); overflow {
		return nil, errors.Wrapf(ErrInvalidChildKey,
			"index %s: intermediate scalar exceeds curve order", child)
	}
	scalar.Add(&k.key.Key)
	if scalar.IsZero() {
		return nil, errors.Wrapf(ErrInvalidChildKey, "index %s: child scalar is zero", child)
	}

	derived := &ExtendedPrivateKey{
		key:               btcec.PrivKeyFromScalar(&scalar),
		depth:             k.depth + 1,
		parentFingerprint: fingerprint(k.key.PubKey()),
		childNumber:       child,
		network:           k.network,
	}
	copy(derived.chainCode[:], sum[32:])
	return derived, nil
}

// DerivePath folds DeriveChild over the path from root to leaf, failing on
// the first invalid step with the step's position attached. The empty path
// returns the key itself.
func (k *ExtendedPrivateKey) DerivePath(path DerivationPath) (*ExtendedPrivateKey, error) {
	derived := k
	for i, child := range path {
		next, err := derived.DeriveChild(child)
		if err != nil {
			return nil, errors.Wrapf(err, "derivation step %d of %s", i, path)
		}
		derived = next
	}
	return derived, nil
}

// ExtendedPublicKey drops the private scalar, keeping the chain code and
// metadata, and computes the compressed public point.
func (k *ExtendedPrivateKey) ExtendedPublicKey() *ExtendedPublicKey {
	return &ExtendedPublicKey{
		key:               k.key.PubKey(),
		chainCode:         k.chainCode,
		depth:             k.depth,
		parentFingerprint: k.parentFingerprint,
		childNumber:       k.childNumber,
		network:           k.network,
	}
}

// Serialize encodes the key into the 78-byte extended key payload. Private
// key material is encoded as 0x00 || scalar.
func (k *ExtendedPrivateKey) Serialize() []byte {
	p := keyPayload{
		version:           k.network.PrivateVersion(),
		depth:             k.depth,
		parentFingerprint: k.parentFingerprint,
		childNumber:       k.childNumber,
		chainCode:         k.chainCode,
	}
	copy(p.keyData[1:], k.key.Serialize())
	return p.serialize()
}

// String encodes the key as a Base58Check string ("xprv..." on mainnet).
func (k *ExtendedPrivateKey) String() string {
	return base58CheckEncode(k.Serialize())
}

// ParseExtendedPrivateKey decodes a Base58Check extended private key string.
// Public-key strings are rejected with ErrVersionKindMismatch.
func ParseExtendedPrivateKey(s string) (*ExtendedPrivateKey, error) {
	p, network, private, err := decodeExtendedKey(s)
	if err != nil {
		return nil, err
	}
	if !private {
		return nil, errors.Wrap(ErrVersionKindMismatch, "expected a private key string")
	}
	return privateKeyFromPayload(p, network)
}

// privateKeyFromPayload validates decoded private key material and builds the
// key value.
func privateKeyFromPayload(p keyPayload, network Network) (*ExtendedPrivateKey, error) {
	if p.keyData[0] != 0x00 {
		return nil, errors.Wrap(ErrInvalidKeyData, "private key material must begin with 0x00")
	}
	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(p.keyData[1:]); overflow || scalar.IsZero() {
		return nil, errors.Wrap(ErrInvalidKeyData, "scalar outside curve order")
	}
	return &ExtendedPrivateKey{
		key:               btcec.PrivKeyFromScalar(&scalar),
		chainCode:         p.chainCode,
		depth:             p.depth,
		parentFingerprint: p.parentFingerprint,
		childNumber:       p.childNumber,
		network:           network,
	}, nil
}

// Equal returns whether other serialises to the same payload byte for byte.
func (k *ExtendedPrivateKey) Equal(other *ExtendedPrivateKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return bytes.Equal(k.Serialize(), other.Serialize())
}

// Fingerprint returns the identifier of this key's public point.
func (k *ExtendedPrivateKey) Fingerprint() [4]byte {
	return fingerprint(k.key.PubKey())
}

// Depth returns how many derivation steps separate this key from its master.
func (k *ExtendedPrivateKey) Depth() uint8 {
	return k.depth
}

// ChainCode returns the 32-byte chain code.
func (k *ExtendedPrivateKey) ChainCode() [32]byte {
	return k.chainCode
}

// ParentFingerprint returns the fingerprint of the parent key, or four zero
// bytes for a master key.
func (k *ExtendedPrivateKey) ParentFingerprint() [4]byte {
	return k.parentFingerprint
}

// ChildNumber returns the child number this key was derived with, or zero
// for a master key.
func (k *ExtendedPrivateKey) ChildNumber() ChildNumber {
	return k.childNumber
}

// Network returns the network the key serialises for.
func (k *ExtendedPrivateKey) Network() Network {
	return k.network
}
