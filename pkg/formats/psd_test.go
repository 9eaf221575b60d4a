package formats

import (
	"encoding/binary"
	"testing"
)

func psdFixture(width, height uint32) []byte {
	b := make([]byte, 26)
	copy(b[0:4], "8BPS")
	binary.BigEndian.PutUint32(b[14:18], height)
	binary.BigEndian.PutUint32(b[18:22], width)
	return b
}

func TestParsePSDDimensions(t *testing.T) {
	s := newTestStream(psdFixture(300, 200))
	res, err := ParsePSD(s)
	if err != nil {
		t.Fatalf("ParsePSD: %v", err)
	}
	if res.Width != 300 || res.Height != 200 {
		t.Fatalf("got %dx%d, want 300x200", res.Width, res.Height)
	}
}
