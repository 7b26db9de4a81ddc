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
	"crypto/sha512"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

// SeedSize is the length of a derived seed.
const SeedSize = 64

// seedIterations is the PBKDF2 round count fixed by the standard.
const seedIterations = 2048

// seedSaltPrefix is prepended to the passphrase to form the PBKDF2 salt.
const seedSaltPrefix = "mnemonic"

// Seed is the 64-byte value a mnemonic stretches into. It is only ever
// produced by (*Mnemonic).Seed, never constructed independently.
type Seed [SeedSize]byte

// Seed stretches the phrase into a 64-byte seed with PBKDF2-HMAC-SHA512.
// Both the phrase and the passphrase are NFKD-normalised first, so phrases
// typed with composed and decomposed Unicode produce the same seed. An empty
// passphrase is valid and common.
func (m *Mnemonic) Seed(passphrase string) Seed {
	password := norm.NFKD.Bytes([]byte(m.String()))
	salt := norm.NFKD.Bytes([]byte(seedSaltPrefix + passphrase))

	var seed Seed
	copy(seed[:], pbkdf2.Key(password, salt, seedIterations, SeedSize, sha512.New))
	return seed
}

// Bytes returns a copy of the seed as a slice.
func (s Seed) Bytes() []byte {
	return append([]byte(nil), s[:]...)
}

// String returns the seed hex-encoded.
func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}
