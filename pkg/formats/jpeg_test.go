package formats

import "testing"

// jpegWithExifFixture assembles SOI, an APP1 Exif segment wrapping a
// minimal little-endian IFD0, and an SOF0 frame header.
func jpegWithExifFixture(orientation uint16, sofHeight, sofWidth uint16) []byte {
	tiff := tiffFixture(1, 1, orientation) // width/height inside EXIF are unused by the JPEG path
	payload := append([]byte("Exif\x00\x00"), tiff...)

	var b []byte
	b = append(b, 0xFF, 0xD8) // SOI
	b = append(b, 0xFF, 0xE1) // APP1
	segLen := len(payload) + 2
	b = append(b, byte(segLen>>8), byte(segLen))
	b = append(b, payload...)

	b = append(b, 0xFF, 0xC0) // SOF0
	b = append(b, 0x00, 0x00) // length, unchecked by readSOFSize
	b = append(b, 0x08)       // precision
	b = append(b, byte(sofHeight>>8), byte(sofHeight))
	b = append(b, byte(sofWidth>>8), byte(sofWidth))
	return b
}

func TestParseJPEGAppliesExifOrientationNoRotation(t *testing.T) {
	s := newTestStream(jpegWithExifFixture(3, 408, 230))
	res, err := ParseJPEG(s)
	if err != nil {
		t.Fatalf("ParseJPEG: %v", err)
	}
	if res.Width != 230 || res.Height != 408 {
		t.Fatalf("got %dx%d, want 230x408", res.Width, res.Height)
	}
	if res.Orientation != 3 {
		t.Fatalf("orientation = %d, want 3", res.Orientation)
	}
}

func TestParseJPEGSwapsDimensionsForRotatedOrientation(t *testing.T) {
	s := newTestStream(jpegWithExifFixture(6, 450, 600))
	res, err := ParseJPEG(s)
	if err != nil {
		t.Fatalf("ParseJPEG: %v", err)
	}
	// orientation 6 rotates the sensor axes: SOF reports height=450,
	// width=600, and the final dimensions must be swapped accordingly.
	if res.Width != 450 || res.Height != 600 {
		t.Fatalf("got %dx%d, want swapped 450x600", res.Width, res.Height)
	}
	if res.Orientation != 6 {
		t.Fatalf("orientation = %d, want 6", res.Orientation)
	}
}

func TestParseJPEGWithoutExifDefaultsOrientation(t *testing.T) {
	var b []byte
	b = append(b, 0xFF, 0xD8)
	b = append(b, 0xFF, 0xC0)
	b = append(b, 0x00, 0x00)
	b = append(b, 0x08)
	b = append(b, 0x01, 0x90) // height = 400
	b = append(b, 0x01, 0x2C) // width = 300

	s := newTestStream(b)
	res, err := ParseJPEG(s)
	if err != nil {
		t.Fatalf("ParseJPEG: %v", err)
	}
	if res.Width != 300 || res.Height != 400 {
		t.Fatalf("got %dx%d, want 300x400", res.Width, res.Height)
	}
	if res.Orientation != 1 {
		t.Fatalf("orientation = %d, want 1 (no EXIF present)", res.Orientation)
	}
}

func TestParseJPEGTruncatedAfterSOIFails(t *testing.T) {
	s := newTestStream([]byte{0xFF, 0xD8})
	if _, err := ParseJPEG(s); err == nil {
		t.Fatal("expected an error for a JPEG truncated right after SOI")
	}
}
