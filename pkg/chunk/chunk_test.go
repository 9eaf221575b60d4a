package chunk

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestOffsetSourceFullChunks(t *testing.T) {
	data := bytes.Repeat([]byte{0xAB}, 600)
	src := NewOffsetSource(bytes.NewReader(data), 256)

	c1, err := src.Next()
	if err != nil || len(c1) != 256 {
		t.Fatalf("chunk 1: got %d bytes, err=%v", len(c1), err)
	}
	c2, err := src.Next()
	if err != nil || len(c2) != 256 {
		t.Fatalf("chunk 2: got %d bytes, err=%v", len(c2), err)
	}
	c3, err := src.Next()
	if err != nil || len(c3) != 88 {
		t.Fatalf("chunk 3 (short, not end): got %d bytes, err=%v", len(c3), err)
	}
	c4, err := src.Next()
	if err != nil || len(c4) != 0 {
		t.Fatalf("chunk 4 (end signal): got %d bytes, err=%v", len(c4), err)
	}
}

func TestOffsetSourceDefaultChunkSize(t *testing.T) {
	src := NewOffsetSource(bytes.NewReader(make([]byte, 10)), 0)
	if src.chunkSize != DefaultSize {
		t.Fatalf("expected default chunk size %d, got %d", DefaultSize, src.chunkSize)
	}
}

type errReaderAt struct{}

func (errReaderAt) ReadAt(p []byte, off int64) (int, error) {
	return 0, errors.New("boom")
}

func TestOffsetSourcePropagatesFailure(t *testing.T) {
	src := NewOffsetSource(errReaderAt{}, 16)
	_, err := src.Next()
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestSequentialSource(t *testing.T) {
	r := strings.NewReader("hello world, this is a longer stream of bytes")
	src := NewSequentialSource(r, 10)

	var got []byte
	for {
		c, err := src.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(c) == 0 {
			break
		}
		got = append(got, c...)
	}
	if string(got) != "hello world, this is a longer stream of bytes" {
		t.Fatalf("unexpected reassembled content: %q", got)
	}
}
