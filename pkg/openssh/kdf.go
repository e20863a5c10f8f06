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
	"fmt"

	"github.com/dchest/bcrypt_pbkdf"

	"github.com/jeremyhahn/go-sshkey/pkg/wire"
)

const (
	cipherNone = "none"
	kdfNone    = "none"
	kdfBcrypt  = "bcrypt"
)

// ivSize is the length of the initialization vector carried at the tail of
// the derived key material for every supported cipher.
const ivSize = 16

// derivedLen returns the amount of key material the KDF must produce for
// cipherName: the cipher key followed by a 16-byte IV.
func derivedLen(cipherName string) (int, error) {
	switch cipherName {
	case "aes128-cbc", "aes128-ctr":
		return 32, nil
	case "aes256-cbc", "aes256-ctr":
		return 48, nil
	default:
		return 0, &UnsupportedCipherError{Cipher: cipherName}
	}
}

// decryptPrivateSection turns the container's private section into
// plaintext. For unencrypted containers (KDF "none") the section is returned
// as is; supplying a password against such a container is a usage error.
func decryptPrivateSection(cipherName, kdfName string, kdfOptions, password, ciphertext []byte) ([]byte, error) {
	if kdfName == kdfNone {
		if len(password) > 0 {
			return nil, ErrPasswordNotExpected
		}
		if cipherName != cipherNone {
			return nil, fmt.Errorf("%w: cipher %q declared with no KDF", ErrMalformedKey, cipherName)
		}
		return ciphertext, nil
	}

	if len(password) == 0 {
		return nil, &PassphraseRequiredError{}
	}

	n, err := derivedLen(cipherName)
	if err != nil {
		return nil, err
	}

	material, err := deriveKey(kdfName, kdfOptions, password, n)
	if err != nil {
		return nil, err
	}
	key, iv := material[:n-ivSize], material[n-ivSize:]

	return decrypt(cipherName, key, iv, ciphertext)
}

// deriveKey runs the named KDF over the password and the KDF options blob,
// producing n bytes of key material.
func deriveKey(kdfName string, kdfOptions, password []byte, n int) ([]byte, error) {
	switch kdfName {
	case kdfBcrypt:
		// kdfoptions: salt (string), rounds (uint32).
		r := wire.NewReader(kdfOptions)
		salt, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("%w: bcrypt salt: %v", ErrMalformedKey, err)
		}
		rounds, err := r.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("%w: bcrypt rounds: %v", ErrMalformedKey, err)
		}
		material, err := bcrypt_pbkdf.Key(password, salt, int(rounds), n)
		if err != nil {
			return nil, fmt.Errorf("%w: bcrypt: %v", ErrDecryptionFailed, err)
		}
		return material, nil
	default:
		return nil, &UnsupportedKDFError{KDF: kdfName}
	}
}
