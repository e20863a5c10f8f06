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

package wire

import "errors"

var (
	// ErrShortBuffer is returned when a read would extend past the end of the
	// underlying buffer, including length-prefixed fields whose declared length
	// exceeds the bytes remaining.
	ErrShortBuffer = errors.New("wire: read past end of buffer")
)
