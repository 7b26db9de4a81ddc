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

// ExtendedPublicKey is a public key with the chain code and metadata needed
// to derive non-hardened children. Like its private counterpart it is
// immutable and safe for concurrent use.
type ExtendedPublicKey struct {
	key               *btcec.PublicKey
	chainCode         [32]byte
	depth             uint8
	parentFingerprint [4]byte
	childNumber       ChildNumber
	network           Network
}

// DeriveChild implements CKDpub: it derives the child public key for a
// non-hardened child number by adding point(IL) to the parent point. Hardened
// child numbers are categorically rejected, since they would require the
// parent's private scalar.
func (k *ExtendedPublicKey) DeriveChild(child ChildNumber) (*ExtendedPublicKey, error) {
	if child.IsHardened() {
		return nil, errors.Wrapf(ErrHardenedDerivation, "index %s", child)
	}
	if k.depth == math.MaxUint8 {
		return nil, errors.Wrapf(ErrDepthOverflow, "cannot derive child %s", child)
	}

	data := make([]byte, 0, 37)
	data = append(data, k.key.SerializeCompressed()...)
	data = binary.BigEndian.AppendUint32(data, child.Uint32())
	sum := hmacSHA512(k.chainCode[:], data)

	var intermediate btcec.ModNScalar
	if overflow := intermediate.SetByteSlice(sum[:32]); overflow {
		return nil, errors.Wrapf(ErrInvalidChildKey,
			"index %s: intermediate scalar exceeds curve order", child)
	}

	var intermediatePoint, parentPoint, childPoint btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&intermediate, &intermediatePoint)
	k.key.AsJacobian(&parentPoint)
	btcec.AddNonConst(&intermediatePoint, &parentPoint, &childPoint)
	if childPoint.Z.IsZero() {
		return nil, errors.Wrapf(ErrInvalidChildKey, "index %s: child point is at infinity", child)
	}
	childPoint.ToAffine()

	derived := &ExtendedPublicKey{
		key:               btcec.NewPublicKey(&childPoint.X, &childPoint.Y),
		depth:             k.depth + 1,
		parentFingerprint: fingerprint(k.key),
		childNumber:       child,
		network:           k.network,
	}
	copy(derived.chainCode[:], sum[32:])
	return derived, nil
}

// DerivePath folds DeriveChild over the path from root to leaf. Any hardened
// step fails the whole derivation.
func (k *ExtendedPublicKey) DerivePath(path DerivationPath) (*ExtendedPublicKey, error) {
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

// Serialize encodes the key into the 78-byte extended key payload. Public key
// material is the 33-byte compressed point.
func (k *ExtendedPublicKey) Serialize() []byte {
	p := keyPayload{
		version:           k.network.PublicVersion(),
		depth:             k.depth,
		parentFingerprint: k.parentFingerprint,
		childNumber:       k.childNumber,
		chainCode:         k.chainCode,
	}
	copy(p.keyData[:], k.key.SerializeCompressed())
	return p.serialize()
}

// String encodes the key as a Base58Check string ("xpub..." on mainnet).
func (k *ExtendedPublicKey) String() string {
	return base58CheckEncode(k.Serialize())
}

// ParseExtendedPublicKey decodes a Base58Check extended public key string.
// Private-key strings are rejected with ErrVersionKindMismatch.
func ParseExtendedPublicKey(s string) (*ExtendedPublicKey, error) {
	p, network, private, err := decodeExtendedKey(s)
	if err != nil {
		return nil, err
	}
	if private {
		return nil, errors.Wrap(ErrVersionKindMismatch, "expected a public key string")
	}
	return publicKeyFromPayload(p, network)
}

// publicKeyFromPayload validates decoded point material and builds the key
// value. ParsePubKey rejects points not on the curve and the point at
// infinity.
func publicKeyFromPayload(p keyPayload, network Network) (*ExtendedPublicKey, error) {
	point, err := btcec.ParsePubKey(p.keyData[:])
	if err != nil {
		return nil, errors.Wrap(ErrInvalidKeyData, err.Error())
	}
	return &ExtendedPublicKey{
		key:               point,
		chainCode:         p.chainCode,
		depth:             p.depth,
		parentFingerprint: p.parentFingerprint,
		childNumber:       p.childNumber,
		network:           network,
	}, nil
}

// Equal returns whether other serialises to the same payload byte for byte.
func (k *ExtendedPublicKey) Equal(other *ExtendedPublicKey) bool {
	if k == nil || other == nil {
		return k == other
	}
	return bytes.Equal(k.Serialize(), other.Serialize())
}

// Fingerprint returns the identifier of this key's point.
func (k *ExtendedPublicKey) Fingerprint() [4]byte {
	return fingerprint(k.key)
}

// Depth returns how many derivation steps separate this key from its master.
func (k *ExtendedPublicKey) Depth() uint8 {
	return k.depth
}

// ChainCode returns the 32-byte chain code.
func (k *ExtendedPublicKey) ChainCode() [32]byte {
	return k.chainCode
}

// ParentFingerprint returns the fingerprint of the parent key, or four zero
// bytes for a master key.
func (k *ExtendedPublicKey) ParentFingerprint() [4]byte {
	return k.parentFingerprint
}

// ChildNumber returns the child number this key was derived with, or zero
// for a master key.
func (k *ExtendedPublicKey) ChildNumber() ChildNumber {
	return k.childNumber
}

// Network returns the network the key serialises for.
func (k *ExtendedPublicKey) Network() Network {
	return k.network
}
