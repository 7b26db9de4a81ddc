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
	"math/bits"

	"github.com/pkg/errors"
)

// You can re-generate the Go wordlist source from the upstream wordlist files
// using 'go generate'. You can also verify that the wordlist is the official
// one by re-downloading it from the BIP repo.
//go:generate ./wordlist_generate.sh data/wordlist_english.txt wordlist_english.go

// bitsPerWord is the number of bits represented by each word. This is
// directly dependent on the size of the wordlist, and is core to the entropy
// packing and unpacking below. It also makes the calculations clearer.
var bitsPerWord = bits.Len(wordlistSize - 1)

// Language identifies the wordlist a mnemonic's words are drawn from. Adding
// a language means registering a new validated 2048-word table with
// unambiguous prefixes, per the external standard; the packing code is
// language-agnostic.
type Language int

const (
	// English is the reference wordlist, and the only one registered by
	// default.
	English Language = iota
)

// String returns the lowercase language name.
func (l Language) String() string {
	switch l {
	case English:
		return "english"
	default:
		return "unknown"
	}
}

// wordlists maps each registered language to its ordered word table.
var wordlists = map[Language]*[wordlistSize]string{
	English: &englishWordlist,
}

// reverseWordlists holds a reverse-lookup table per language for the indices
// of words inside the generated wordlists. This is less efficient than a
// binary search (since the wordlists are also ordered), but it's simpler in
// Go.
var reverseWordlists map[Language]map[string]int

func init() {
	reverseWordlists = make(map[Language]map[string]int, len(wordlists))
	for language, list := range wordlists {
		reverse := make(map[string]int, wordlistSize)
		for idx, word := range list {
			reverse[word] = idx
		}
		if len(reverse) != wordlistSize {
			panic("bip39 wordlist lookup table is wrong size!")
		}
		reverseWordlists[language] = reverse
	}
}

// list returns the ordered word table for the language.
func (l Language) list() (*[wordlistSize]string, error) {
	list, ok := wordlists[l]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedLanguage, "language %q", l)
	}
	return list, nil
}

// wordIndex returns the index of a word in the language's table.
func (l Language) wordIndex(word string) (int, bool) {
	reverse, ok := reverseWordlists[l]
	if !ok {
		return 0, false
	}
	idx, ok := reverse[word]
	return idx, ok
}
