package formats

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/Fepozopo/imgfacts/pkg/chunk"
	"github.com/Fepozopo/imgfacts/pkg/stream"
)

func newTestStream(data []byte) *stream.Stream {
	return stream.New(chunk.NewOffsetSource(bytes.NewReader(data), 8))
}

func gifFixture(width, height uint16) []byte {
	b := make([]byte, 11)
	copy(b[0:6], "GIF89a")
	binary.LittleEndian.PutUint16(b[6:8], width)
	binary.LittleEndian.PutUint16(b[8:10], height)
	return b
}

func TestParseGIFDimensions(t *testing.T) {
	cases := []struct {
		width, height uint16
	}{
		{1, 1},
		{640, 480},
		{65535, 12},
	}
	for _, c := range cases {
		s := newTestStream(gifFixture(c.width, c.height))
		res, err := ParseGIF(s)
		if err != nil {
			t.Fatalf("ParseGIF(%dx%d): %v", c.width, c.height, err)
		}
		if res.Width != int(c.width) || res.Height != int(c.height) {
			t.Fatalf("got %dx%d, want %dx%d", res.Width, res.Height, c.width, c.height)
		}
		if res.Orientation != 1 {
			t.Fatalf("orientation = %d, want 1", res.Orientation)
		}
	}
}

func TestParseGIFTruncatedFails(t *testing.T) {
	s := newTestStream([]byte("GIF89a"))
	if _, err := ParseGIF(s); err == nil {
		t.Fatal("expected an error for a truncated GIF header")
	}
}
