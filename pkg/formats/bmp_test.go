package formats

import (
	"encoding/binary"
	"testing"
)

func bmpInfoHeaderFixture(width, height int32) []byte {
	b := make([]byte, 32)
	copy(b[0:2], "BM")
	binary.LittleEndian.PutUint32(b[14:18], 40)
	binary.LittleEndian.PutUint32(b[18:22], uint32(width))
	binary.LittleEndian.PutUint32(b[22:26], uint32(height))
	return b
}

func bmpCoreHeaderFixture(width, height uint16) []byte {
	b := make([]byte, 32)
	copy(b[0:2], "BM")
	binary.LittleEndian.PutUint32(b[14:18], 12) // BITMAPCOREHEADER length
	binary.LittleEndian.PutUint16(b[18:20], width)
	binary.LittleEndian.PutUint16(b[20:22], height)
	return b
}

func TestParseBMPInfoHeader(t *testing.T) {
	s := newTestStream(bmpInfoHeaderFixture(40, 27))
	res, err := ParseBMP(s)
	if err != nil {
		t.Fatalf("ParseBMP: %v", err)
	}
	if res.Width != 40 || res.Height != 27 {
		t.Fatalf("got %dx%d, want 40x27", res.Width, res.Height)
	}
}

func TestParseBMPTopDownHeightIsAbsolute(t *testing.T) {
	s := newTestStream(bmpInfoHeaderFixture(100, -50))
	res, err := ParseBMP(s)
	if err != nil {
		t.Fatalf("ParseBMP: %v", err)
	}
	if res.Height != 50 {
		t.Fatalf("height = %d, want 50 (absolute value of a top-down bitmap's negative height)", res.Height)
	}
}

func TestParseBMPCoreHeader(t *testing.T) {
	s := newTestStream(bmpCoreHeaderFixture(16, 16))
	res, err := ParseBMP(s)
	if err != nil {
		t.Fatalf("ParseBMP: %v", err)
	}
	if res.Width != 16 || res.Height != 16 {
		t.Fatalf("got %dx%d, want 16x16", res.Width, res.Height)
	}
}
