// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-sshkey.
//
// go-sshkey is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package openssh

import (
	"github.com/jeremyhahn/go-sshkey/pkg/types"
	"github.com/jeremyhahn/go-sshkey/pkg/wire"
)

// assembler turns the raw fields of one private key record into a typed key
// pair, performing algorithm-specific validation. The cursor is positioned
// just past the key type tag.
type assembler interface {
	keyType() string
	assemble(r *wire.Reader) (*types.KeyPair, error)
}

// assemblers maps key type tags to the assemblers compiled into this build.
// Registration happens from per-algorithm init functions so that a build tag
// excluding an algorithm removes its entry entirely; the decoder then reports
// the tag as unsupported without any conditional logic of its own.
var assemblers = map[string]assembler{}

func registerAssembler(a assembler) {
	assemblers[a.keyType()] = a
}
