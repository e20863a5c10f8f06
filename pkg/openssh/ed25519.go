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
	"bytes"
	"crypto/ed25519"
	"fmt"

	"github.com/jeremyhahn/go-sshkey/pkg/types"
	"github.com/jeremyhahn/go-sshkey/pkg/wire"
)

func init() {
	registerAssembler(ed25519Assembler{})
}

type ed25519Assembler struct{}

func (ed25519Assembler) keyType() string {
	return types.AlgorithmEd25519.String()
}

// assemble reads an ssh-ed25519 record: public key (32 bytes), private key
// (64 bytes, seed followed by public key), comment. The trailing 32 bytes of
// the private key must equal the declared public key.
func (ed25519Assembler) assemble(r *wire.Reader) (*types.KeyPair, error) {
	pub, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: ed25519 public key: %v", ErrMalformedKey, err)
	}
	priv, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: ed25519 private key: %v", ErrMalformedKey, err)
	}
	comment, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: ed25519 comment: %v", ErrMalformedKey, err)
	}

	if len(pub) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 public key is %d bytes", ErrMalformedKey, len(pub))
	}
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: ed25519 private key is %d bytes", ErrMalformedKey, len(priv))
	}
	if !bytes.Equal(priv[ed25519.PublicKeySize:], pub) {
		return nil, fmt.Errorf("%w: ed25519 public key does not match private key", ErrKeyMismatch)
	}

	return &types.KeyPair{
		Algorithm: types.AlgorithmEd25519,
		Comment:   string(comment),
		Ed25519:   ed25519.PrivateKey(append([]byte(nil), priv...)),
	}, nil
}
