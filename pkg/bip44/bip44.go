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

// Package bip44 builds the five-level derivation paths used by multi-account
// wallets, of the form
//
//	m / purpose' / coin_type' / account' / change / address_index
//
// The first three levels are always hardened and the last two never are. A
// Path is a structured, validated view of such a path; it converts to a
// generic bip32.DerivationPath for the actual key derivation.
package bip44

import (
	"github.com/pkg/errors"

	"github.com/navasvarela/bip32hdwallet/pkg/bip32"
)

// Purpose is the purpose field shared by all paths built here, as assigned
// to this scheme in the registry of purpose codes.
const Purpose uint32 = 44

// CoinType selects the coin_type' level of the path. Registered coins get a
// constant below; any other uint32 below 2^31 is a valid custom value.
type CoinType uint32

const (
	// Bitcoin is the coin type for bitcoin mainnet.
	Bitcoin CoinType = 0
	// BitcoinTestnet is the coin type shared by all test networks.
	BitcoinTestnet CoinType = 1
	// Litecoin is the coin type for litecoin.
	Litecoin CoinType = 2
	// Dogecoin is the coin type for dogecoin.
	Dogecoin CoinType = 3
	// Ethereum is the coin type for ethereum.
	Ethereum CoinType = 60
)

// Change selects between the two address chains of an account.
type Change uint32

const (
	// External is the chain for receive addresses.
	External Change = 0
	// Internal is the chain for change addresses.
	Internal Change = 1
)

var (
	// ErrNotBip44 is returned when parsing a path that is well-formed but
	// does not have the five-level shape described above.
	ErrNotBip44 = errors.New("path does not have the m/44'/coin'/account'/change/index shape")

	// ErrInvalidChange is returned when the change level is neither 0 nor 1.
	ErrInvalidChange = errors.New("change level must be 0 (external) or 1 (internal)")
)

// Path is a validated five-level wallet path. The zero value is not useful;
// build one with Standard or ParsePath.
type Path struct {
	coin         CoinType
	account      uint32
	change       Change
	addressIndex uint32
}

// Standard returns the path m/44'/coin'/account'/change/addressIndex. The
// account and address index must be below 2^31, and the change level must be
// External or Internal.
func Standard(coin CoinType, account uint32, change Change, addressIndex uint32) (Path, error) {
	if change != External && change != Internal {
		return Path{}, errors.Wrapf(ErrInvalidChange, "change %d", uint32(change))
	}
	// Validate each level through the bip32 constructors so that
	// out-of-range values fail the same way everywhere.
	levels := []struct {
		name     string
		value    uint32
		hardened bool
	}{
		{"coin type", uint32(coin), true},
		{"account", account, true},
		{"change", uint32(change), false},
		{"address index", addressIndex, false},
	}
	for _, level := range levels {
		if _, err := bip32.NewChildNumber(level.value, level.hardened); err != nil {
			return Path{}, errors.Wrapf(err, "%s %d", level.name, level.value)
		}
	}
	return Path{
		coin:         coin,
		account:      account,
		change:       change,
		addressIndex: addressIndex,
	}, nil
}

// ParsePath parses a textual path and requires it to have the five-level
// wallet shape: purpose 44 hardened, hardened coin type and account, and
// non-hardened change and address index.
func ParsePath(path string) (Path, error) {
	parsed, err := bip32.ParseDerivationPath(path)
	if err != nil {
		return Path{}, err
	}
	if len(parsed) != 5 {
		return Path{}, errors.Wrapf(ErrNotBip44, "path has %d levels", len(parsed))
	}
	purpose, coin, account, change, index := parsed[0], parsed[1], parsed[2], parsed[3], parsed[4]
	if !purpose.IsHardened() || purpose.Index() != Purpose {
		return Path{}, errors.Wrapf(ErrNotBip44, "purpose level is %s", purpose)
	}
	if !coin.IsHardened() {
		return Path{}, errors.Wrapf(ErrNotBip44, "coin type level %s is not hardened", coin)
	}
	if !account.IsHardened() {
		return Path{}, errors.Wrapf(ErrNotBip44, "account level %s is not hardened", account)
	}
	if change.IsHardened() {
		return Path{}, errors.Wrapf(ErrNotBip44, "change level %s is hardened", change)
	}
	if index.IsHardened() {
		return Path{}, errors.Wrapf(ErrNotBip44, "address index level %s is hardened", index)
	}
	return Standard(CoinType(coin.Index()), account.Index(), Change(change.Index()), index.Index())
}

// DerivationPath returns the path as the generic form consumed by
// bip32.DerivePath.
func (p Path) DerivationPath() bip32.DerivationPath {
	// The levels were validated on construction, so the conversions below
	// cannot fail.
	mustChild := func(index uint32, hardened bool) bip32.ChildNumber {
		child, err := bip32.NewChildNumber(index, hardened)
		if err != nil {
			panic("bip44: validated path level out of range: " + err.Error())
		}
		return child
	}
	return bip32.DerivationPath{
		mustChild(Purpose, true),
		mustChild(uint32(p.coin), true),
		mustChild(p.account, true),
		mustChild(uint32(p.change), false),
		mustChild(p.addressIndex, false),
	}
}

// String returns the canonical textual form, using an apostrophe for
// hardened levels.
func (p Path) String() string {
	return p.DerivationPath().String()
}

// CoinType returns the coin_type' level.
func (p Path) CoinType() CoinType {
	return p.coin
}

// Account returns the account' level.
func (p Path) Account() uint32 {
	return p.account
}

// Change returns the change level.
func (p Path) Change() Change {
	return p.change
}

// AddressIndex returns the address_index level.
func (p Path) AddressIndex() uint32 {
	return p.addressIndex
}
