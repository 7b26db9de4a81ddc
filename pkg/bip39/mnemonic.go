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

// Package bip39 turns entropy into recoverable mnemonic phrases and mnemonic
// phrases into seeds. Phrases embed a checksum, so importing one validates it
// against the wordlist and the checksum before any key material is derived
// from it.
package bip39

import (
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Mnemonic is a validated phrase: an ordered word sequence drawn from a
// single language's wordlist whose embedded checksum verifies. Values are
// immutable once constructed.
type Mnemonic struct {
	words    []string
	entropy  []byte
	language Language
}

// wordCountEntropyBytes maps the valid phrase lengths to their entropy byte
// lengths.
var wordCountEntropyBytes = map[int]int{
	12: 16,
	15: 20,
	18: 24,
	21: 28,
	24: 32,
}

// Generate draws fresh entropy for the requested word count from r and
// encodes it as a phrase. The random source is explicit so that tests can be
// deterministic; production callers pass crypto/rand.Reader.
func Generate(r io.Reader, wordCount int, language Language) (*Mnemonic, error) {
	size, ok := wordCountEntropyBytes[wordCount]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidWordCount, "got %d words", wordCount)
	}
	entropy, err := NewEntropy(r, size)
	if err != nil {
		return nil, err
	}
	return FromEntropy(entropy, language)
}

// FromEntropy encodes existing entropy as a phrase. The entropy length must
// be one of the five valid sizes.
func FromEntropy(entropy []byte, language Language) (*Mnemonic, error) {
	if !validEntropyLen(len(entropy)) {
		return nil, errors.Wrapf(ErrInvalidEntropyLength, "got %d bytes", len(entropy))
	}
	list, err := language.list()
	if err != nil {
		return nil, err
	}

	indices := entropyToIndices(entropy)
	words := make([]string, len(indices))
	for i, idx := range indices {
		words[i] = list[idx]
	}
	return &Mnemonic{
		words:    words,
		entropy:  append([]byte(nil), entropy...),
		language: language,
	}, nil
}

// FromPhrase imports an existing phrase, validating the word count, every
// word's membership in the wordlist, and the embedded checksum.
func FromPhrase(phrase string, language Language) (*Mnemonic, error) {
	if _, err := language.list(); err != nil {
		return nil, err
	}
	words := strings.Fields(phrase)
	if _, ok := wordCountEntropyBytes[len(words)]; !ok {
		return nil, errors.Wrapf(ErrInvalidWordCount, "got %d words", len(words))
	}

	indices := make([]int, len(words))
	for i, word := range words {
		idx, ok := language.wordIndex(word)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownWord, "word %q", word)
		}
		indices[i] = idx
	}

	entropy, err := indicesToEntropy(indices)
	if err != nil {
		return nil, err
	}
	return &Mnemonic{
		words:    words,
		entropy:  entropy,
		language: language,
	}, nil
}

// Validate reports whether the phrase would import cleanly. It never panics
// on malformed input.
func Validate(phrase string, language Language) bool {
	_, err := FromPhrase(phrase, language)
	return err == nil
}

// Words returns a copy of the phrase's words in order.
func (m *Mnemonic) Words() []string {
	return append([]string(nil), m.words...)
}

// String returns the space-separated phrase.
func (m *Mnemonic) String() string {
	return strings.Join(m.words, " ")
}

// Entropy returns a copy of the entropy the phrase encodes, without the
// checksum bits.
func (m *Mnemonic) Entropy() []byte {
	return append([]byte(nil), m.entropy...)
}

// Language returns the wordlist language the phrase is drawn from.
func (m *Mnemonic) Language() Language {
	return m.language
}

// Equal returns whether other encodes the same words in the same language.
func (m *Mnemonic) Equal(other *Mnemonic) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.language != other.language || len(m.words) != len(other.words) {
		return false
	}
	for i := range m.words {
		if m.words[i] != other.words[i] {
			return false
		}
	}
	return true
}
