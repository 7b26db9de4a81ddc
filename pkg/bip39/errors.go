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
	"github.com/pkg/errors"
)

// Set of errors returned by this package.
var (
	// ErrInvalidEntropyLength is returned when entropy is not 16, 20, 24,
	// 28 or 32 bytes. The entropy length fixes the word count of the
	// resulting mnemonic, so no other size has a phrase encoding.
	ErrInvalidEntropyLength = errors.New("entropy length must be 16, 20, 24, 28 or 32 bytes")

	// ErrInvalidWordCount is returned when a phrase does not contain 12,
	// 15, 18, 21 or 24 words.
	ErrInvalidWordCount = errors.New("mnemonic word count must be 12, 15, 18, 21 or 24")

	// ErrUnknownWord is returned when a phrase contains a word that is not
	// in the selected wordlist. The offending word is attached to the
	// error.
	ErrUnknownWord = errors.New("word is not in the wordlist")

	// ErrInvalidChecksum is returned when the checksum bits embedded in a
	// phrase do not match the checksum recomputed over its entropy bits.
	ErrInvalidChecksum = errors.New("mnemonic checksum mismatch")

	// ErrUnsupportedLanguage is returned when no wordlist is registered for
	// the requested language.
	ErrUnsupportedLanguage = errors.New("no wordlist registered for language")

	// ErrEntropySource is returned when the random source fails to produce
	// enough bytes.
	ErrEntropySource = errors.New("not enough bytes read from random source")
)
