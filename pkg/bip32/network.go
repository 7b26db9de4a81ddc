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

// Network selects the 4-byte version prefixes used when serialising extended
// keys. The prefixes are what make mainnet private keys render as "xprv..."
// and testnet public keys as "tpub...".
type Network int

const (
	// Bitcoin is the main bitcoin network (xprv/xpub prefixes).
	Bitcoin Network = iota
	// Testnet is the bitcoin test network (tprv/tpub prefixes).
	Testnet
)

// versionEntry ties a network to its serialisation prefixes.
type versionEntry struct {
	network Network
	private [4]byte
	public  [4]byte
}

// versionRegistry holds the prefix pairs for every supported network. Lookup
// on decode walks this table, so registering a network here is all that is
// needed to make its keys round-trip.
var versionRegistry = []versionEntry{
	{Bitcoin, [4]byte{0x04, 0x88, 0xad, 0xe4}, [4]byte{0x04, 0x88, 0xb2, 0x1e}},
	{Testnet, [4]byte{0x04, 0x35, 0x83, 0x94}, [4]byte{0x04, 0x35, 0x87, 0xcf}},
}

// PrivateVersion returns the version prefix used for extended private keys on
// this network.
func (n Network) PrivateVersion() [4]byte {
	for _, entry := range versionRegistry {
		if entry.network == n {
			return entry.private
		}
	}
	panic("bip32: version prefix requested for unregistered network")
}

// PublicVersion returns the version prefix used for extended public keys on
// this network.
func (n Network) PublicVersion() [4]byte {
	for _, entry := range versionRegistry {
		if entry.network == n {
			return entry.public
		}
	}
	panic("bip32: version prefix requested for unregistered network")
}

// String returns a human-readable network name.
func (n Network) String() string {
	switch n {
	case Bitcoin:
		return "bitcoin"
	case Testnet:
		return "testnet"
	default:
		return "unknown"
	}
}

// lookupVersion maps a decoded version prefix back to its network and key
// kind. The second return is true for a private-key prefix.
func lookupVersion(version [4]byte) (Network, bool, bool) {
	for _, entry := range versionRegistry {
		if version == entry.private {
			return entry.network, true, true
		}
		if version == entry.public {
			return entry.network, false, true
		}
	}
	return 0, false, false
}
