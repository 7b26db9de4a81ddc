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
	"strings"

	"github.com/pkg/errors"
)

// DerivationPath is an ordered, root-to-leaf sequence of child numbers. The
// empty path is the identity: deriving it returns the key itself.
type DerivationPath []ChildNumber

// ParseDerivationPath parses the conventional slash-separated grammar: "m"
// for the root, followed by decimal indices each optionally suffixed with an
// apostrophe (or "h") for hardened derivation, e.g. "m/44'/0'/0'/0/0".
func ParseDerivationPath(path string) (DerivationPath, error) {
	if path == "m" {
		return DerivationPath{}, nil
	}
	if !strings.HasPrefix(path, "m/") {
		return nil, errors.Wrapf(ErrMalformedPath, "path %q must start with \"m\"", path)
	}
	segments := strings.Split(path[2:], "/")
	parsed := make(DerivationPath, 0, len(segments))
	for _, segment := range segments {
		child, err := parseChildNumber(segment)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, child)
	}
	return parsed, nil
}

// String formats the path in the same grammar accepted by
// ParseDerivationPath, always using the apostrophe hardened marker.
func (p DerivationPath) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, child := range p {
		b.WriteString("/")
		b.WriteString(child.String())
	}
	return b.String()
}

// Extend returns a new path with the given child numbers appended. The
// receiver is never modified.
func (p DerivationPath) Extend(children ...ChildNumber) DerivationPath {
	extended := make(DerivationPath, 0, len(p)+len(children))
	extended = append(extended, p...)
	extended = append(extended, children...)
	return extended
}

// Equal returns whether other denotes the same derivation steps.
func (p DerivationPath) Equal(other DerivationPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}
