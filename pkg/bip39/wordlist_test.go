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
	"sort"
	"testing"

	"github.com/pkg/errors"
)

// TestWordlistShape checks the structural properties the packing code relies
// on: the table size, its ordering, and the 11-bit word width.
func TestWordlistShape(t *testing.T) {
	if wordlistSize != 2048 {
		t.Fatalf("expected 2048 words, got %d", wordlistSize)
	}
	if bitsPerWord != 11 {
		t.Errorf("expected 11 bits per word, got %d", bitsPerWord)
	}
	if !sort.StringsAreSorted(englishWordlist[:]) {
		t.Errorf("english wordlist is not sorted")
	}
	if first := englishWordlist[0]; first != "abandon" {
		t.Errorf("expected first word \"abandon\", got %q", first)
	}
	if last := englishWordlist[wordlistSize-1]; last != "zoo" {
		t.Errorf("expected last word \"zoo\", got %q", last)
	}
}

// TestWordlistPrefixes checks that every word is uniquely identified by its
// first four characters, which the standard guarantees so that wallets can
// accept truncated entry.
func TestWordlistPrefixes(t *testing.T) {
	prefixes := make(map[string]string, wordlistSize)
	for _, word := range englishWordlist {
		prefix := word
		if len(prefix) > 4 {
			prefix = prefix[:4]
		}
		if previous, ok := prefixes[prefix]; ok {
			t.Errorf("words %q and %q share the prefix %q", previous, word, prefix)
		}
		prefixes[prefix] = word
	}
}

// TestWordIndex checks the reverse lookup against the forward table.
func TestWordIndex(t *testing.T) {
	for idx, word := range englishWordlist {
		found, ok := English.wordIndex(word)
		if !ok {
			t.Fatalf("word %q missing from reverse lookup", word)
		}
		if found != idx {
			t.Errorf("word %q: expected index %d, got %d", word, idx, found)
		}
	}
	if _, ok := English.wordIndex("csharp"); ok {
		t.Errorf("reverse lookup accepted a word outside the list")
	}
}

// TestUnsupportedLanguage checks that an unregistered language is rejected at
// every entry point.
func TestUnsupportedLanguage(t *testing.T) {
	bogus := Language(42)
	if bogus.String() != "unknown" {
		t.Errorf("expected unknown language name, got %q", bogus.String())
	}
	if _, err := FromEntropy(make([]byte, 16), bogus); errors.Cause(err) != ErrUnsupportedLanguage {
		t.Errorf("FromEntropy: expected ErrUnsupportedLanguage, got %v", err)
	}
	if _, err := FromPhrase("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about", bogus); errors.Cause(err) != ErrUnsupportedLanguage {
		t.Errorf("FromPhrase: expected ErrUnsupportedLanguage, got %v", err)
	}
}
