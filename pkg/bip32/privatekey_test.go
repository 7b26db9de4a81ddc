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
	"encoding/hex"
	"testing"

	"github.com/pkg/errors"
)

// mustSeed decodes a hex seed fixture.
func mustSeed(t *testing.T, seedHex string) []byte {
	t.Helper()
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		t.Fatalf("invalid seed fixture %q: %v", seedHex, err)
	}
	return seed
}

// mustMaster builds the master key for a hex seed fixture.
func mustMaster(t *testing.T, seedHex string, network Network) *ExtendedPrivateKey {
	t.Helper()
	master, err := NewMaster(mustSeed(t, seedHex), network)
	if err != nil {
		t.Fatalf("cannot build master key for seed %q: %v", seedHex, err)
	}
	return master
}

// Published derivation fixtures. The first set walks a chain that exercises
// hardened, non-hardened and large indices; the second starts from a seed
// whose master digest has a leading zero byte, which catches any
// serialisation that strips scalar padding.
var derivationFixtures = []struct {
	seed  string
	chain []struct {
		path string
		priv string
		pub  string
	}
}{
	{
		seed: "000102030405060708090a0b0c0d0e0f",
		chain: []struct {
			path string
			priv string
			pub  string
		}{
			{
				"m",
				"xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi",
				"xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8",
			},
			{
				"m/0'",
				"xprv9uHRZZhk6KAJC1avXpDAp4MDc3sQKNxDiPvvkX8Br5ngLNv1TxvUxt4cV1rGL5hj6KCesnDYUhd7oWgT11eZG7XnxHrnYeSvkzY7d2bhkJ7",
				"xpub68Gmy5EdvgibQVfPdqkBBCHxA5htiqg55crXYuXoQRKfDBFA1WEjWgP6LHhwBZeNK1VTsfTFUHCdrfp1bgwQ9xv5ski8PX9rL2dZXvgGDnw",
			},
			{
				"m/0'/1",
				"xprv9wTYmMFdV23N2TdNG573QoEsfRrWKQgWeibmLntzniatZvR9BmLnvSxqu53Kw1UmYPxLgboyZQaXwTCg8MSY3H2EU4pWcQDnRnrVA1xe8fs",
				"xpub6ASuArnXKPbfEwhqN6e3mwBcDTgzisQN1wXN9BJcM47sSikHjJf3UFHKkNAWbWMiGj7Wf5uMash7SyYq527Hqck2AxYysAA7xmALppuCkwQ",
			},
			{
				"m/0'/1/2'",
				"xprv9z4pot5VBttmtdRTWfWQmoH1taj2axGVzFqSb8C9xaxKymcFzXBDptWmT7FwuEzG3ryjH4ktypQSAewRiNMjANTtpgP4mLTj34bhnZX7UiM",
				"xpub6D4BDPcP2GT577Vvch3R8wDkScZWzQzMMUm3PWbmWvVJrZwQY4VUNgqFJPMM3No2dFDFGTsxxpG5uJh7n7epu4trkrX7x7DogT5Uv6fcLW5",
			},
			{
				"m/0'/1/2'/2",
				"xprvA2JDeKCSNNZky6uBCviVfJSKyQ1mDYahRjijr5idH2WwLsEd4Hsb2Tyh8RfQMuPh7f7RtyzTtdrbdqqsunu5Mm3wDvUAKRHSC34sJ7in334",
				"xpub6FHa3pjLCk84BayeJxFW2SP4XRrFd1JYnxeLeU8EqN3vDfZmbqBqaGJAyiLjTAwm6ZLRQUMv1ZACTj37sR62cfN7fe5JnJ7dh8zL4fiyLHV",
			},
			{
				"m/0'/1/2'/2/1000000000",
				"xprvA41z7zogVVwxVSgdKUHDy1SKmdb533PjDz7J6N6mV6uS3ze1ai8FHa8kmHScGpWmj4WggLyQjgPie1rFSruoUihUZREPSL39UNdE3BBDu76",
				"xpub6H1LXWLaKsWFhvm6RVpEL9P4KfRZSW7abD2ttkWP3SSQvnyA8FSVqNTEcYFgJS2UaFcxupHiYkro49S8yGasTvXEYBVPamhGW6cFJodrTHy",
			},
		},
	},
	{
		seed: "4b381541583be4423346c643850da4b320e46a87ae3d2a4e6da11eba819cd4acba45d239319ac14f863b8d5ab5a0d0c64d2e8a1e7d1457df2e5a3c51c73235be",
		chain: []struct {
			path string
			priv string
			pub  string
		}{
			{
				"m",
				"xprv9s21ZrQH143K25QhxbucbDDuQ4naNntJRi4KUfWT7xo4EKsHt2QJDu7KXp1A3u7Bi1j8ph3EGsZ9Xvz9dGuVrtHHs7pXeTzjuxBrCmmhgC6",
				"xpub661MyMwAqRbcEZVB4dScxMAdx6d4nFc9nvyvH3v4gJL378CSRZiYmhRoP7mBy6gSPSCYk6SzXPTf3ND1cZAceL7SfJ1Z3GC8vBgp2epUt13",
			},
			{
				"m/0'",
				"xprv9uPDJpEQgRQfDcW7BkF7eTya6RPxXeJCqCJGHuCJ4GiRVLzkTXBAJMu2qaMWPrS7AANYqdq6vcBcBUdJCVVFceUvJFjaPdGZ2y9WACViL4L",
				"xpub68NZiKmJWnxxS6aaHmn81bvJeTESw724CRDs6HbuccFQN9Ku14VQrADWgqbhhTHBaohPX4CjNLf9fq9MYo6oDaPPLPxSb7gwQN3ih19Zm4Y",
			},
		},
	},
}

// TestDerivationFixtures walks the published derivation chains and compares
// both the private and the neutered serialisation at every step, then parses
// each string back and checks the roundtrip.
func TestDerivationFixtures(t *testing.T) {
	for _, fixture := range derivationFixtures {
		master := mustMaster(t, fixture.seed, Bitcoin)
		for _, step := range fixture.chain {
			path, err := ParseDerivationPath(step.path)
			if err != nil {
				t.Fatalf("invalid fixture path %q: %v", step.path, err)
			}
			derived, err := master.DerivePath(path)
			if err != nil {
				t.Fatalf("deriving %q failed unexpectedly: %v", step.path, err)
			}
			if s := derived.String(); s != step.priv {
				t.Errorf("%s: private key mismatch:\nexpected %s\ngot      %s", step.path, step.priv, s)
			}
			if s := derived.ExtendedPublicKey().String(); s != step.pub {
				t.Errorf("%s: public key mismatch:\nexpected %s\ngot      %s", step.path, step.pub, s)
			}
			if uint8(len(path)) != derived.Depth() {
				t.Errorf("%s: expected depth %d, got %d", step.path, len(path), derived.Depth())
			}

			reparsed, err := ParseExtendedPrivateKey(step.priv)
			if err != nil {
				t.Errorf("parsing %q failed unexpectedly: %v", step.priv, err)
			} else if !reparsed.Equal(derived) {
				t.Errorf("%s: parsed key does not equal derived key", step.path)
			}
		}
	}
}

// TestNewMasterSeedLength checks the inclusive seed length bounds.
func TestNewMasterSeedLength(t *testing.T) {
	for _, test := range []struct {
		length   int
		expected error
	}{
		{0, ErrInvalidSeedLength},
		{MinSeedBytes - 1, ErrInvalidSeedLength},
		{MinSeedBytes, nil},
		{32, nil},
		{MaxSeedBytes, nil},
		{MaxSeedBytes + 1, ErrInvalidSeedLength},
	} {
		_, err := NewMaster(make([]byte, test.length), Bitcoin)
		if errors.Cause(err) != test.expected {
			t.Errorf("NewMaster with %d-byte seed: expected error %v, got %v", test.length, test.expected, err)
		}
	}
}

// TestNewMasterDeterministic checks that the same seed always gives the same
// master key and that different seeds diverge.
func TestNewMasterDeterministic(t *testing.T) {
	seedHex := "000102030405060708090a0b0c0d0e0f"
	first := mustMaster(t, seedHex, Bitcoin)
	second := mustMaster(t, seedHex, Bitcoin)
	if !first.Equal(second) {
		t.Errorf("same seed produced different master keys")
	}
	other := mustMaster(t, "fffdfcfbfaf9f8f7f6f5f4f3f2f1f0ff", Bitcoin)
	if first.Equal(other) {
		t.Errorf("different seeds produced equal master keys")
	}
}

// TestMasterMetadata checks the fixed metadata of a freshly built master key.
func TestMasterMetadata(t *testing.T) {
	master := mustMaster(t, "000102030405060708090a0b0c0d0e0f", Bitcoin)
	if master.Depth() != 0 {
		t.Errorf("master depth: expected 0, got %d", master.Depth())
	}
	if master.ParentFingerprint() != [4]byte{} {
		t.Errorf("master parent fingerprint: expected zero, got %x", master.ParentFingerprint())
	}
	if master.ChildNumber() != 0 {
		t.Errorf("master child number: expected 0, got %v", master.ChildNumber())
	}
	if master.Network() != Bitcoin {
		t.Errorf("master network: expected %v, got %v", Bitcoin, master.Network())
	}
}

// TestDeriveChildLinksParent checks that a child records its parent's
// fingerprint and its own child number.
func TestDeriveChildLinksParent(t *testing.T) {
	master := mustMaster(t, "000102030405060708090a0b0c0d0e0f", Bitcoin)
	child, err := master.DeriveChild(mustChild(t, 7, true))
	if err != nil {
		t.Fatalf("deriving child failed unexpectedly: %v", err)
	}
	if child.ParentFingerprint() != master.Fingerprint() {
		t.Errorf("child parent fingerprint %x does not match master fingerprint %x",
			child.ParentFingerprint(), master.Fingerprint())
	}
	if !child.ChildNumber().IsHardened() || child.ChildNumber().Index() != 7 {
		t.Errorf("child number not preserved: got %v", child.ChildNumber())
	}
	if child.Depth() != 1 {
		t.Errorf("child depth: expected 1, got %d", child.Depth())
	}
}

// TestHardenedAndNormalDiverge checks that hardened index i and non-hardened
// index i derive unrelated keys.
func TestHardenedAndNormalDiverge(t *testing.T) {
	master := mustMaster(t, "000102030405060708090a0b0c0d0e0f", Bitcoin)
	hardened, err := master.DeriveChild(mustChild(t, 0, true))
	if err != nil {
		t.Fatalf("hardened derivation failed unexpectedly: %v", err)
	}
	normal, err := master.DeriveChild(mustChild(t, 0, false))
	if err != nil {
		t.Fatalf("normal derivation failed unexpectedly: %v", err)
	}
	if hardened.Equal(normal) {
		t.Errorf("hardened and normal derivation of index 0 produced the same key")
	}
	if hardened.ChainCode() == normal.ChainCode() {
		t.Errorf("hardened and normal derivation of index 0 produced the same chain code")
	}
}

// TestDeriveChildDeterministic checks that derivation of the same index from
// the same parent is reproducible.
func TestDeriveChildDeterministic(t *testing.T) {
	master := mustMaster(t, "000102030405060708090a0b0c0d0e0f", Bitcoin)
	first, err := master.DeriveChild(mustChild(t, 42, false))
	if err != nil {
		t.Fatalf("derivation failed unexpectedly: %v", err)
	}
	second, err := master.DeriveChild(mustChild(t, 42, false))
	if err != nil {
		t.Fatalf("derivation failed unexpectedly: %v", err)
	}
	if !first.Equal(second) {
		t.Errorf("repeated derivation of the same index diverged")
	}
}

// TestDepthOverflow checks that the 256th derivation step is rejected rather
// than wrapping the depth counter.
func TestDepthOverflow(t *testing.T) {
	key := mustMaster(t, "000102030405060708090a0b0c0d0e0f", Bitcoin)
	child := mustChild(t, 0, false)
	for depth := 0; depth < 255; depth++ {
		next, err := key.DeriveChild(child)
		if err != nil {
			t.Fatalf("derivation at depth %d failed unexpectedly: %v", depth, err)
		}
		key = next
	}
	if key.Depth() != 255 {
		t.Fatalf("expected depth 255, got %d", key.Depth())
	}
	if _, err := key.DeriveChild(child); errors.Cause(err) != ErrDepthOverflow {
		t.Errorf("expected ErrDepthOverflow at depth 255, got %v", err)
	}
}

// TestDerivePathEmpty checks that the empty path is the identity.
func TestDerivePathEmpty(t *testing.T) {
	master := mustMaster(t, "000102030405060708090a0b0c0d0e0f", Bitcoin)
	derived, err := master.DerivePath(DerivationPath{})
	if err != nil {
		t.Fatalf("deriving the empty path failed unexpectedly: %v", err)
	}
	if !derived.Equal(master) {
		t.Errorf("empty path derivation does not equal the original key")
	}
}

// TestPrivateSerializeRoundtrip checks the raw 78-byte payload roundtrip,
// including the testnet version bytes.
func TestPrivateSerializeRoundtrip(t *testing.T) {
	for _, network := range []Network{Bitcoin, Testnet} {
		master := mustMaster(t, "000102030405060708090a0b0c0d0e0f", network)
		payload := master.Serialize()
		if len(payload) != serializedKeyLen {
			t.Fatalf("serialised payload is %d bytes, expected %d", len(payload), serializedKeyLen)
		}
		version := network.PrivateVersion()
		if !bytes.Equal(payload[:4], version[:]) {
			t.Errorf("payload version %x does not match network %v", payload[:4], network)
		}
		reparsed, err := ParseExtendedPrivateKey(master.String())
		if err != nil {
			t.Fatalf("reparsing serialised key failed unexpectedly: %v", err)
		}
		if !reparsed.Equal(master) {
			t.Errorf("roundtrip through string form lost information on %v", network)
		}
		if reparsed.Network() != network {
			t.Errorf("roundtrip network: expected %v, got %v", network, reparsed.Network())
		}
	}
}

// TestTestnetStringPrefix checks the human-readable prefixes of testnet keys.
func TestTestnetStringPrefix(t *testing.T) {
	master := mustMaster(t, "000102030405060708090a0b0c0d0e0f", Testnet)
	const priv = "tprv8ZgxMBicQKsPeDgjzdC36fs6bMjGApWDNLR9erAXMs5skhMv36j9MV5ecvfavji5khqjWaWSFhN3YcCUUdiKH6isR4Pwy3U5y5egddBr16m"
	const pub = "tpubD6NzVbkrYhZ4XgiXtGrdW5XDAPFCL9h7we1vwNCpn8tGbBcgfVYjXyhWo4E1xkh56hjod1RhGjxbaTLV3X4FyWuejifB9jusQ46QzG87VKp"
	if s := master.String(); s != priv {
		t.Errorf("testnet master private key mismatch:\nexpected %s\ngot      %s", priv, s)
	}
	if s := master.ExtendedPublicKey().String(); s != pub {
		t.Errorf("testnet master public key mismatch:\nexpected %s\ngot      %s", pub, s)
	}
}
