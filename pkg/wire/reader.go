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

// Package wire implements bounds-checked reading of the SSH wire format:
// big-endian fixed-width integers, uint32 length-prefixed byte strings, and
// mpint multi-precision integers as defined by RFC 4251 section 5.
//
// Every read is length-checked against the underlying buffer before any byte
// is accessed, so arbitrarily truncated or corrupted input produces
// ErrShortBuffer rather than a panic. A failed read leaves the cursor
// position unchanged.
package wire

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Reader is a forward-only cursor over a byte buffer. The zero value is an
// empty reader; use NewReader to wrap a buffer. Reader does not copy the
// buffer, so callers must not mutate it while reads are in progress.
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// ReadBytes consumes exactly n bytes and returns them as a sub-slice of the
// underlying buffer.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, n, r.Remaining())
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadUint32 consumes 4 bytes and returns them as a big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadString consumes a uint32 length followed by that many bytes. A declared
// length that exceeds the remaining buffer fails without consuming anything.
func (r *Reader) ReadString() ([]byte, error) {
	start := r.pos
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	// Compare in uint64 space so a 4GiB length cannot overflow int on
	// 32-bit platforms before the bounds check.
	if uint64(n) > uint64(r.Remaining()) {
		r.pos = start
		return nil, fmt.Errorf("%w: string declares %d bytes, have %d", ErrShortBuffer, n, r.Remaining())
	}
	b := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return b, nil
}

// ReadMPInt consumes a length-prefixed big-endian two's-complement integer
// and returns it as a *big.Int. A leading 0x00 sign byte on a positive value
// is absorbed by the magnitude conversion; a set high bit on the first byte
// yields a negative value.
func (r *Reader) ReadMPInt() (*big.Int, error) {
	b, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return new(big.Int), nil
	}
	if b[0]&0x80 != 0 {
		// Two's complement: invert, add one, negate.
		inv := make([]byte, len(b))
		for i, c := range b {
			inv[i] = ^c
		}
		v := new(big.Int).SetBytes(inv)
		v.Add(v, big.NewInt(1))
		return v.Neg(v), nil
	}
	return new(big.Int).SetBytes(b), nil
}
