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

//go:build !sshkey_no_ecdsa

package openssh

import (
	"bytes"
	"crypto/ecdh"
	"fmt"

	"github.com/jeremyhahn/go-sshkey/pkg/types"
	"github.com/jeremyhahn/go-sshkey/pkg/wire"
)

func init() {
	registerAssembler(p256Assembler{})
}

const curveNameP256 = "nistp256"

// p256ScalarSize is the fixed width of a P-256 private scalar in bytes.
const p256ScalarSize = 32

type p256Assembler struct{}

func (p256Assembler) keyType() string {
	return types.AlgorithmECDSAP256.String()
}

// assemble reads an ecdsa-sha2-nistp256 record: curve name, public point
// (uncompressed SEC1), private scalar (mpint), comment. The public key is
// re-derived from the scalar and must match the declared point byte for
// byte.
func (p256Assembler) assemble(r *wire.Reader) (*types.KeyPair, error) {
	curve, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: p256 curve name: %v", ErrMalformedKey, err)
	}
	if string(curve) != curveNameP256 {
		return nil, fmt.Errorf("%w: unexpected curve %q for ecdsa-sha2-nistp256", ErrMalformedKey, curve)
	}
	pub, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: p256 public key: %v", ErrMalformedKey, err)
	}
	scalar, err := r.ReadMPInt()
	if err != nil {
		return nil, fmt.Errorf("%w: p256 private scalar: %v", ErrMalformedKey, err)
	}
	comment, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: p256 comment: %v", ErrMalformedKey, err)
	}

	// Narrow the mpint magnitude to exactly 32 bytes, right-aligned. Bytes
	// beyond the 32 least-significant are dropped. This is a deliberate
	// narrowing specific to the P-256 scalar size, not a general mpint
	// conversion; values for this curve are already reduced mod the group
	// order.
	buf := make([]byte, p256ScalarSize)
	mag := scalar.Bytes()
	if len(mag) > p256ScalarSize {
		mag = mag[len(mag)-p256ScalarSize:]
	}
	copy(buf[p256ScalarSize-len(mag):], mag)

	key, err := ecdh.P256().NewPrivateKey(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: p256 scalar rejected: %v", ErrMalformedKey, err)
	}
	if !bytes.Equal(key.PublicKey().Bytes(), pub) {
		return nil, fmt.Errorf("%w: p256 public key does not match private scalar", ErrKeyMismatch)
	}

	return &types.KeyPair{
		Algorithm: types.AlgorithmECDSAP256,
		Comment:   string(comment),
		P256:      key,
	}, nil
}
