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

// Package types contains the shared result types produced by the decoders.
// It has no dependency on pkg/openssh to prevent import cycles.
package types

import (
	"crypto"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"errors"
	"math/big"
)

// Algorithm identifies the key algorithm of a decoded key pair. The values
// match the SSH key type tags used on the wire.
type Algorithm string

const (
	// AlgorithmEd25519 represents an Ed25519 key pair.
	AlgorithmEd25519 Algorithm = "ssh-ed25519"

	// AlgorithmRSA represents an RSA key pair.
	AlgorithmRSA Algorithm = "ssh-rsa"

	// AlgorithmECDSAP256 represents an ECDSA key pair on NIST P-256.
	AlgorithmECDSAP256 Algorithm = "ecdsa-sha2-nistp256"
)

// String returns the wire-format key type tag.
func (a Algorithm) String() string {
	return string(a)
}

// ErrNoKeyMaterial is returned by KeyPair accessors when the variant
// selected by Algorithm is not populated.
var ErrNoKeyMaterial = errors.New("types: key pair has no key material")

// KeyPair is a decoded private key. Exactly one of the variant fields is
// populated, selected by Algorithm; decoders never return a partially
// assembled value.
type KeyPair struct {
	// Algorithm selects which variant field below is populated.
	Algorithm Algorithm

	// Comment is the free-form comment stored alongside the key,
	// typically "user@host". May be empty.
	Comment string

	// Ed25519 is the full 64-byte private key: 32-byte seed followed by
	// the 32-byte public key.
	Ed25519 ed25519.PrivateKey

	// RSA is the private key with CRT precomputation (Dp, Dq, Qinv)
	// already populated.
	RSA *rsa.PrivateKey

	// RSAHash is the signature hash associated with an RSA key.
	RSAHash crypto.Hash

	// P256 holds the 32-byte P-256 private scalar. The public key is
	// re-derivable and not stored separately.
	P256 *ecdh.PrivateKey
}

// Public returns the public half of the key pair, or nil if the selected
// variant is not populated.
func (k *KeyPair) Public() crypto.PublicKey {
	switch k.Algorithm {
	case AlgorithmEd25519:
		if k.Ed25519 == nil {
			return nil
		}
		return k.Ed25519.Public()
	case AlgorithmRSA:
		if k.RSA == nil {
			return nil
		}
		return &k.RSA.PublicKey
	case AlgorithmECDSAP256:
		if k.P256 == nil {
			return nil
		}
		return k.P256.PublicKey()
	}
	return nil
}

// Signer returns the key as a crypto.Signer suitable for producing
// signatures. P-256 keys are converted from their scalar form to an
// *ecdsa.PrivateKey.
func (k *KeyPair) Signer() (crypto.Signer, error) {
	switch k.Algorithm {
	case AlgorithmEd25519:
		if k.Ed25519 == nil {
			return nil, ErrNoKeyMaterial
		}
		return k.Ed25519, nil
	case AlgorithmRSA:
		if k.RSA == nil {
			return nil, ErrNoKeyMaterial
		}
		return k.RSA, nil
	case AlgorithmECDSAP256:
		if k.P256 == nil {
			return nil, ErrNoKeyMaterial
		}
		return p256Signer(k.P256)
	}
	return nil, ErrNoKeyMaterial
}

// p256Signer rebuilds an *ecdsa.PrivateKey from the ECDH scalar form.
func p256Signer(key *ecdh.PrivateKey) (crypto.Signer, error) {
	d := new(big.Int).SetBytes(key.Bytes())
	priv := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: elliptic.P256()},
		D:         d,
	}
	priv.PublicKey.X, priv.PublicKey.Y = priv.Curve.ScalarBaseMult(d.Bytes())
	return priv, nil
}
