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
	"errors"
	"fmt"

	"golang.org/x/crypto/ssh"
)

var (
	// ErrMalformedKey is returned when the container structure is invalid:
	// bad magic, truncated buffer, length fields pointing past the end of
	// the buffer, or a missing key record.
	ErrMalformedKey = errors.New("openssh: malformed private key container")

	// ErrIncorrectPassword is returned when the check words at the head of
	// the decrypted private section disagree, the primary signal that
	// decryption used the wrong key.
	ErrIncorrectPassword = errors.New("openssh: incorrect password")

	// ErrPasswordNotExpected is returned when a password is supplied for a
	// container whose KDF is "none"; such a container cannot be decrypted
	// with a password.
	ErrPasswordNotExpected = errors.New("openssh: key is not passphrase-protected")

	// ErrKeyMismatch is returned when algorithm-specific validation fails:
	// the Ed25519 public half does not match the secret, the RSA key fails
	// its validity check, or the declared P-256 public point does not match
	// the one derived from the scalar. This usually means a corrupt file or
	// a wrong password whose output happened to parse structurally.
	ErrKeyMismatch = errors.New("openssh: key material is inconsistent")

	// ErrDecryptionFailed wraps failures reported by the cipher or KDF
	// primitives (invalid key material, invalid lengths).
	ErrDecryptionFailed = errors.New("openssh: decryption failed")
)

// PassphraseRequiredError is returned when the container is encrypted but no
// password was supplied. When the container's embedded public key parses,
// PublicKey is populated so callers can identify the key before prompting
// for credentials.
type PassphraseRequiredError struct {
	PublicKey ssh.PublicKey
}

// Error implements the error interface.
func (e *PassphraseRequiredError) Error() string {
	return "openssh: key is passphrase-protected, password required"
}

// UnsupportedKeyTypeError is returned when the key type tag in the private
// section names an algorithm that is unknown or not compiled into this
// build. The two cases are deliberately indistinguishable.
type UnsupportedKeyTypeError struct {
	// KeyType holds the exact tag bytes read from the buffer.
	KeyType []byte
}

// Error implements the error interface.
func (e *UnsupportedKeyTypeError) Error() string {
	return fmt.Sprintf("openssh: unsupported key type %q", e.KeyType)
}

// UnsupportedCipherError is returned when the container names a cipher this
// decoder does not implement.
type UnsupportedCipherError struct {
	Cipher string
}

// Error implements the error interface.
func (e *UnsupportedCipherError) Error() string {
	return fmt.Sprintf("openssh: unsupported cipher %q", e.Cipher)
}

// UnsupportedKDFError is returned when the container names a key-derivation
// function this decoder does not implement.
type UnsupportedKDFError struct {
	KDF string
}

// Error implements the error interface.
func (e *UnsupportedKDFError) Error() string {
	return fmt.Sprintf("openssh: unsupported KDF %q", e.KDF)
}
