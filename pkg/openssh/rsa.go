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

//go:build !sshkey_no_rsa

package openssh

import (
	"crypto"
	"crypto/rsa"
	"fmt"
	"math"
	"math/big"

	"github.com/jeremyhahn/go-sshkey/pkg/types"
	"github.com/jeremyhahn/go-sshkey/pkg/wire"
)

func init() {
	registerAssembler(rsaAssembler{})
}

type rsaAssembler struct{}

func (rsaAssembler) keyType() string {
	return types.AlgorithmRSA.String()
}

// assemble reads an ssh-rsa record: mpints n, e, d, iqmp, p, q, then the
// comment. The CRT exponents dP = d mod (p-1) and dQ = d mod (q-1) are not
// stored in the container and are derived here; the assembled key must pass
// the library validity check (including d*e = 1 mod lambda(n)).
func (rsaAssembler) assemble(r *wire.Reader) (*types.KeyPair, error) {
	var n, e, d, iqmp, p, q *big.Int
	for _, field := range []struct {
		name string
		dst  **big.Int
	}{
		{"n", &n}, {"e", &e}, {"d", &d}, {"iqmp", &iqmp}, {"p", &p}, {"q", &q},
	} {
		v, err := r.ReadMPInt()
		if err != nil {
			return nil, fmt.Errorf("%w: rsa %s: %v", ErrMalformedKey, field.name, err)
		}
		*field.dst = v
	}
	comment, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: rsa comment: %v", ErrMalformedKey, err)
	}

	if !e.IsInt64() || e.Int64() < 3 || e.Int64() > math.MaxInt32 {
		return nil, fmt.Errorf("%w: rsa public exponent out of range", ErrMalformedKey)
	}
	// Guard the modular reductions below; p and q must be at least 2 for
	// p-1 and q-1 to be valid moduli.
	if p.Cmp(big.NewInt(2)) < 0 || q.Cmp(big.NewInt(2)) < 0 {
		return nil, fmt.Errorf("%w: rsa prime factor out of range", ErrMalformedKey)
	}

	one := big.NewInt(1)
	pMinus1 := new(big.Int).Sub(p, one)
	qMinus1 := new(big.Int).Sub(q, one)
	dP := new(big.Int).Mod(d, pMinus1)
	dQ := new(big.Int).Mod(d, qMinus1)

	key := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: n,
			E: int(e.Int64()),
		},
		D:      d,
		Primes: []*big.Int{p, q},
		Precomputed: rsa.PrecomputedValues{
			Dp:   dP,
			Dq:   dQ,
			Qinv: iqmp,
		},
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: rsa: %v", ErrKeyMismatch, err)
	}

	return &types.KeyPair{
		Algorithm: types.AlgorithmRSA,
		Comment:   string(comment),
		RSA:       key,
		RSAHash:   crypto.SHA512,
	}, nil
}
