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

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
)

func TestReadUint32(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		r := NewReader([]byte{0x00, 0x00, 0x01, 0x02, 0xff})
		v, err := r.ReadUint32()
		if err != nil {
			t.Fatalf("ReadUint32 failed: %v", err)
		}
		if v != 0x0102 {
			t.Fatalf("unexpected value: %#x", v)
		}
		if r.Remaining() != 1 {
			t.Fatalf("unexpected remaining: %d", r.Remaining())
		}
	})

	t.Run("Short", func(t *testing.T) {
		r := NewReader([]byte{0x00, 0x01, 0x02})
		if _, err := r.ReadUint32(); !errors.Is(err, ErrShortBuffer) {
			t.Fatalf("expected ErrShortBuffer, got %v", err)
		}
		if r.Remaining() != 3 {
			t.Fatalf("failed read moved the cursor: remaining %d", r.Remaining())
		}
	})
}

func TestReadString(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		r := NewReader([]byte{0x00, 0x00, 0x00, 0x03, 'a', 'b', 'c', 'd'})
		s, err := r.ReadString()
		if err != nil {
			t.Fatalf("ReadString failed: %v", err)
		}
		if !bytes.Equal(s, []byte("abc")) {
			t.Fatalf("unexpected string: %q", s)
		}
		if r.Remaining() != 1 {
			t.Fatalf("unexpected remaining: %d", r.Remaining())
		}
	})

	t.Run("Empty", func(t *testing.T) {
		r := NewReader([]byte{0x00, 0x00, 0x00, 0x00})
		s, err := r.ReadString()
		if err != nil {
			t.Fatalf("ReadString failed: %v", err)
		}
		if len(s) != 0 {
			t.Fatalf("expected empty string, got %q", s)
		}
	})

	t.Run("LengthPastEnd", func(t *testing.T) {
		r := NewReader([]byte{0x00, 0x00, 0x00, 0x10, 'a', 'b'})
		if _, err := r.ReadString(); !errors.Is(err, ErrShortBuffer) {
			t.Fatalf("expected ErrShortBuffer, got %v", err)
		}
		// Position must be unchanged, including the length prefix.
		if r.Remaining() != 6 {
			t.Fatalf("failed read moved the cursor: remaining %d", r.Remaining())
		}
	})

	t.Run("HugeLength", func(t *testing.T) {
		r := NewReader([]byte{0xff, 0xff, 0xff, 0xff, 'a'})
		if _, err := r.ReadString(); !errors.Is(err, ErrShortBuffer) {
			t.Fatalf("expected ErrShortBuffer, got %v", err)
		}
	})
}

func TestReadMPInt(t *testing.T) {
	t.Run("Positive", func(t *testing.T) {
		r := NewReader([]byte{0x00, 0x00, 0x00, 0x02, 0x01, 0xff})
		v, err := r.ReadMPInt()
		if err != nil {
			t.Fatalf("ReadMPInt failed: %v", err)
		}
		if v.Cmp(big.NewInt(0x01ff)) != 0 {
			t.Fatalf("unexpected value: %s", v)
		}
	})

	t.Run("PositiveWithSignByte", func(t *testing.T) {
		// 0x80 needs a leading zero to stay positive.
		r := NewReader([]byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x80})
		v, err := r.ReadMPInt()
		if err != nil {
			t.Fatalf("ReadMPInt failed: %v", err)
		}
		if v.Cmp(big.NewInt(0x80)) != 0 {
			t.Fatalf("unexpected value: %s", v)
		}
		if len(v.Bytes()) != 1 {
			t.Fatalf("magnitude not minimal: % x", v.Bytes())
		}
	})

	t.Run("Negative", func(t *testing.T) {
		// 0xff 0x15 is -235 in two's complement.
		r := NewReader([]byte{0x00, 0x00, 0x00, 0x02, 0xff, 0x15})
		v, err := r.ReadMPInt()
		if err != nil {
			t.Fatalf("ReadMPInt failed: %v", err)
		}
		if v.Cmp(big.NewInt(-235)) != 0 {
			t.Fatalf("unexpected value: %s", v)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		r := NewReader([]byte{0x00, 0x00, 0x00, 0x00})
		v, err := r.ReadMPInt()
		if err != nil {
			t.Fatalf("ReadMPInt failed: %v", err)
		}
		if v.Sign() != 0 {
			t.Fatalf("expected zero, got %s", v)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		r := NewReader([]byte{0x00, 0x00, 0x00, 0x08, 0x01})
		if _, err := r.ReadMPInt(); !errors.Is(err, ErrShortBuffer) {
			t.Fatalf("expected ErrShortBuffer, got %v", err)
		}
	})
}

// TestNoPanicOnTruncation feeds every prefix of a composite buffer through
// all read operations; none may panic, regardless of where the buffer ends.
func TestNoPanicOnTruncation(t *testing.T) {
	full := []byte{
		0x00, 0x00, 0x00, 0x04, 'k', 'e', 'y', '1',
		0x00, 0x00, 0x00, 0x02, 0x01, 0x02,
		0x00, 0x00, 0x00, 0x2a,
	}
	for i := 0; i <= len(full); i++ {
		r := NewReader(full[:i])
		for {
			if _, err := r.ReadString(); err != nil {
				break
			}
		}
		r = NewReader(full[:i])
		for {
			if _, err := r.ReadMPInt(); err != nil {
				break
			}
		}
		r = NewReader(full[:i])
		for {
			if _, err := r.ReadUint32(); err != nil {
				break
			}
		}
	}
}
