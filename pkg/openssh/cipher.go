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
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// decrypt applies the named cipher to ciphertext and returns the plaintext.
// CBC operates on whole blocks with no padding removal; the openssh format
// pads the private section with a 1, 2, 3, ... sequence that trails the
// comment and is simply never read. CTR is a stream cipher, so the output
// length always equals the input length.
func decrypt(cipherName string, key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	plain := make([]byte, len(ciphertext))
	switch cipherName {
	case "aes128-cbc", "aes256-cbc":
		if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
			return nil, fmt.Errorf("%w: ciphertext length %d is not a block multiple", ErrDecryptionFailed, len(ciphertext))
		}
		cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)
	case "aes128-ctr", "aes256-ctr":
		cipher.NewCTR(block, iv).XORKeyStream(plain, ciphertext)
	default:
		return nil, &UnsupportedCipherError{Cipher: cipherName}
	}
	return plain, nil
}
