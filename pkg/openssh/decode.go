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

	"github.com/jeremyhahn/go-sshkey/pkg/logging"
	"github.com/jeremyhahn/go-sshkey/pkg/types"
	"github.com/jeremyhahn/go-sshkey/pkg/wire"
)

// magic is the fixed 15-byte prefix of every openssh-key-v1 container.
const magic = "openssh-key-v1\x00"

var logger = logging.DefaultLogger()

// SetLogger replaces the package logger. Install a logger created with
// debug enabled to trace cipher, KDF and key type dispatch.
func SetLogger(l *logging.Logger) {
	logger = l
}

// Decode parses an openssh-key-v1 container and returns the first key it
// holds. A nil or empty password means no password was supplied; encrypted
// containers then fail with *PassphraseRequiredError.
//
// The secret buffer is never written to and no reference to it survives the
// call.
func Decode(secret []byte, password []byte) (*types.KeyPair, error) {
	r := wire.NewReader(secret)

	m, err := r.ReadBytes(len(magic))
	if err != nil || string(m) != magic {
		return nil, fmt.Errorf("%w: bad magic", ErrMalformedKey)
	}

	cipherName, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: cipher name: %v", ErrMalformedKey, err)
	}
	kdfName, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: kdf name: %v", ErrMalformedKey, err)
	}
	kdfOptions, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: kdf options: %v", ErrMalformedKey, err)
	}

	nkeys, err := r.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: key count: %v", ErrMalformedKey, err)
	}
	if nkeys == 0 {
		return nil, fmt.Errorf("%w: container declares no keys", ErrMalformedKey)
	}

	logger.Debugf("openssh container: cipher=%s kdf=%s keys=%d", cipherName, kdfName, nkeys)

	// Public key blobs are opaque here; they are not validated against the
	// private section. The first one is kept so a password-required error
	// can identify the key.
	var pubBlob []byte
	for i := uint32(0); i < nkeys; i++ {
		blob, err := r.ReadString()
		if err != nil {
			return nil, fmt.Errorf("%w: public key %d: %v", ErrMalformedKey, i, err)
		}
		if i == 0 {
			pubBlob = blob
		}
	}

	section, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: private section: %v", ErrMalformedKey, err)
	}

	encrypted := string(kdfName) != kdfNone
	plain, err := decryptPrivateSection(string(cipherName), string(kdfName), kdfOptions, password, section)
	if err != nil {
		var passErr *PassphraseRequiredError
		if errors.As(err, &passErr) {
			if pub, pubErr := ssh.ParsePublicKey(pubBlob); pubErr == nil {
				passErr.PublicKey = pub
			}
		}
		return nil, err
	}

	pr := wire.NewReader(plain)
	check0, err := pr.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: check values: %v", ErrMalformedKey, err)
	}
	check1, err := pr.ReadUint32()
	if err != nil {
		return nil, fmt.Errorf("%w: check values: %v", ErrMalformedKey, err)
	}
	if check0 != check1 {
		if encrypted {
			return nil, ErrIncorrectPassword
		}
		return nil, fmt.Errorf("%w: check values disagree", ErrMalformedKey)
	}

	keyType, err := pr.ReadString()
	if err != nil {
		return nil, fmt.Errorf("%w: key type: %v", ErrMalformedKey, err)
	}

	asm, ok := assemblers[string(keyType)]
	if !ok {
		return nil, &UnsupportedKeyTypeError{KeyType: append([]byte(nil), keyType...)}
	}

	logger.Debugf("assembling %s key", keyType)
	return asm.assemble(pr)
}
