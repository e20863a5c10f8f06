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

// Package openssh decodes private keys stored in the OpenSSH
// "openssh-key-v1" container format, optionally decrypting them with a
// password, and returns structured key material for Ed25519, RSA, and
// NIST P-256 keys.
//
// # Overview
//
// Decode operates on the raw container bytes, i.e. the payload of an
// "OPENSSH PRIVATE KEY" PEM block. PEM armor handling, file I/O, and key
// serialization are the caller's responsibility.
//
//	block, _ := pem.Decode(pemBytes)
//	key, err := openssh.Decode(block.Bytes, []byte("password"))
//
// Input is treated as untrusted: every field is bounds-checked, and
// malformed or truncated containers return ErrMalformedKey rather than
// panicking. Encrypted containers require a password; when none is supplied
// Decode returns a *PassphraseRequiredError carrying the container's
// embedded public key, so callers can tell the user which key wants a
// passphrase before prompting.
//
// # Supported configurations
//
// Ciphers: aes128-cbc, aes128-ctr, aes256-cbc, aes256-ctr, and "none".
// KDFs: bcrypt and "none". Key types: ssh-ed25519, ssh-rsa, and
// ecdsa-sha2-nistp256. RSA and P-256 support can be compiled out with the
// sshkey_no_rsa and sshkey_no_ecdsa build tags; a key type that is not
// compiled in is reported with the same *UnsupportedKeyTypeError as an
// unknown one.
//
// # First-key-only semantics
//
// The container format can declare multiple keys, but like OpenSSH itself
// this decoder only assembles and returns the first key record. Remaining
// records are never parsed. This is a documented contract of the format as
// used in practice, not a limitation to work around.
package openssh
