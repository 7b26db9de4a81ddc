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

package bip39

import (
	"crypto/sha256"
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

// Entropy length bounds. Valid lengths are the multiples of 4 bytes in this
// range: 16, 20, 24, 28 and 32, mapping to 12, 15, 18, 21 and 24 words.
const (
	MinEntropyBytes = 16
	MaxEntropyBytes = 32
)

// validEntropyLen reports whether a byte length has a phrase encoding.
func validEntropyLen(n int) bool {
	return n >= MinEntropyBytes && n <= MaxEntropyBytes && n%4 == 0
}

// NewEntropy reads entropy of the given byte length from r. The source is a
// caller decision so that generation stays testable; production callers pass
// crypto/rand.Reader. Err will only be nil if enough bytes were read from the
// source.
func NewEntropy(r io.Reader, size int) ([]byte, error) {
	if !validEntropyLen(size) {
		return nil, errors.Wrapf(ErrInvalidEntropyLength, "got %d bytes", size)
	}
	data, err := ioutil.ReadAll(&io.LimitedReader{
		R: r,
		N: int64(size),
	})
	if err != nil {
		return nil, errors.Wrap(err, "read entropy")
	}
	if len(data) != size {
		return nil, errors.Wrapf(ErrEntropySource, "read %d of %d bytes", len(data), size)
	}
	return data, nil
}

// checksumBitCount returns the number of checksum bits appended to the given
// entropy: one bit per 32 entropy bits.
func checksumBitCount(entropy []byte) int {
	return len(entropy) * 8 / 32
}

// entropyToIndices appends the SHA256-derived checksum bits to the entropy
// bits and splits the concatenation into bitsPerWord-sized word indices. The
// checksum is at most 8 bits (32-byte entropy), so a single digest byte
// always covers it.
func entropyToIndices(entropy []byte) []int {
	digest := sha256.Sum256(entropy)
	data := make([]byte, 0, len(entropy)+1)
	data = append(data, entropy...)
	data = append(data, digest[0])

	entropyBits := len(entropy) * 8
	totalBits := entropyBits + checksumBitCount(entropy)
	indices := make([]int, totalBits/bitsPerWord)
	for i := range indices {
		var idx int
		for j := 0; j < bitsPerWord; j++ {
			bit := i*bitsPerWord + j
			idx <<= 1
			if data[bit/8]&(1<<(7-bit%8)) != 0 {
				idx |= 1
			}
		}
		indices[i] = idx
	}
	return indices
}

// indicesToEntropy reassembles the bit string from word indices, splits it
// back into entropy and checksum bits, and verifies the checksum over the
// entropy. The index count is assumed to already be one of the valid word
// counts.
func indicesToEntropy(indices []int) ([]byte, error) {
	totalBits := len(indices) * bitsPerWord
	checksumBits := totalBits / (32 + 1)
	entropyBits := totalBits - checksumBits

	buf := make([]byte, (totalBits+7)/8)
	for i, idx := range indices {
		for j := 0; j < bitsPerWord; j++ {
			if idx&(1<<(bitsPerWord-1-j)) != 0 {
				bit := i*bitsPerWord + j
				buf[bit/8] |= 1 << (7 - bit%8)
			}
		}
	}

	entropy := buf[:entropyBits/8]
	digest := sha256.Sum256(entropy)
	mask := byte(0xff) << (8 - checksumBits)
	if digest[0]&mask != buf[entropyBits/8]&mask {
		return nil, errors.Wrap(ErrInvalidChecksum, "embedded checksum does not match entropy")
	}
	return entropy, nil
}
