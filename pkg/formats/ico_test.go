package formats

import "testing"

func TestParseICOZeroByteMeans256(t *testing.T) {
	s := newTestStream(icoDirFixture(1, [][2]byte{{0, 0}}))
	res, err := ParseICO(s)
	if err != nil {
		t.Fatalf("ParseICO: %v", err)
	}
	if res.Width != 256 || res.Height != 256 {
		t.Fatalf("got %dx%d, want 256x256", res.Width, res.Height)
	}
}

func TestParseICONoEntriesFails(t *testing.T) {
	s := newTestStream(icoDirFixture(0, nil))
	if _, err := ParseICO(s); err == nil {
		t.Fatal("expected ErrMalformed for an empty directory")
	}
}

func icoDirFixture(iconType uint16, entries [][2]byte) []byte {
	b := make([]byte, 6)
	b[2] = byte(iconType)
	b[4] = byte(len(entries))
	for _, e := range entries {
		entry := make([]byte, 16)
		entry[0], entry[1] = e[0], e[1]
		b = append(b, entry...)
	}
	return b
}
