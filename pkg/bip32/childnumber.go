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
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// HardenedOffset is the index at which hardened derivation begins. A child
// number stores its hardened flag as bit 31, so hardened index i is encoded
// as i + HardenedOffset.
const HardenedOffset uint32 = 1 << 31

// ChildNumber is a single derivation index in its canonical encoding: the raw
// index with bit 31 set when the derivation is hardened. Values are only
// constructed through the validating constructors (or decoded from an already
// serialised key), so an out-of-range index/flag combination cannot exist.
type ChildNumber uint32

// NewChildNumber builds a ChildNumber from a raw index and a hardened flag.
// The index must be below HardenedOffset regardless of the flag; larger
// values are rejected with ErrIndexOutOfRange.
func NewChildNumber(index uint32, hardened bool) (ChildNumber, error) {
	if index >= HardenedOffset {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "index %d", index)
	}
	if hardened {
		return ChildNumber(index + HardenedOffset), nil
	}
	return ChildNumber(index), nil
}

// Normal builds a non-hardened ChildNumber.
func Normal(index uint32) (ChildNumber, error) {
	return NewChildNumber(index, false)
}

// Hardened builds a hardened ChildNumber.
func Hardened(index uint32) (ChildNumber, error) {
	return NewChildNumber(index, true)
}

// childNumberFromRaw interprets an already serialised uint32 as a
// ChildNumber. Every raw value is a valid encoding, so this is only used when
// decoding trusted 78-byte payloads, never for caller-supplied indices.
func childNumberFromRaw(raw uint32) ChildNumber {
	return ChildNumber(raw)
}

// Index returns the raw index with the hardened bit stripped.
func (c ChildNumber) Index() uint32 {
	return uint32(c) &^ HardenedOffset
}

// IsHardened returns whether the child number requests hardened derivation.
func (c ChildNumber) IsHardened() bool {
	return uint32(c) >= HardenedOffset
}

// Uint32 returns the canonical encoding, as serialised into HMAC inputs and
// key payloads.
func (c ChildNumber) Uint32() uint32 {
	return uint32(c)
}

// String formats the child number as a path segment: the raw index followed
// by an apostrophe when hardened.
func (c ChildNumber) String() string {
	if c.IsHardened() {
		return fmt.Sprintf("%d'", c.Index())
	}
	return strconv.FormatUint(uint64(c.Index()), 10)
}

// parseChildNumber parses a single path segment. A trailing apostrophe (or
// the alternative "h" spelling) marks the index as hardened; formatting
// always emits the apostrophe form.
func parseChildNumber(segment string) (ChildNumber, error) {
	hardened := false
	digits := segment
	if strings.HasSuffix(digits, "'") || strings.HasSuffix(digits, "h") {
		hardened = true
		digits = digits[:len(digits)-1]
	}
	if digits == "" {
		return 0, errors.Wrapf(ErrMalformedPath, "empty path segment %q", segment)
	}
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errors.Wrapf(ErrIndexOutOfRange, "segment %q", segment)
		}
		return 0, errors.Wrapf(ErrMalformedPath, "segment %q is not a decimal index", segment)
	}
	if value >= uint64(HardenedOffset) {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "segment %q", segment)
	}
	return NewChildNumber(uint32(value), hardened)
}
