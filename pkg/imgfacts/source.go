package imgfacts

import (
	"io"
	"os"

	"github.com/Fepozopo/imgfacts/internal/config"
	"github.com/Fepozopo/imgfacts/pkg/chunk"
)

// resolved bundles the chunk.Source built for one parse along with the
// cleanup the orchestrator must perform once it is done: rewind always
// happens on a caller-supplied rewindable source; close only happens
// when the orchestrator itself opened the source (a path was given).
type resolved struct {
	src    chunk.Source
	rewind func() error
	close  func() error
}

// resolveSource turns any of the byte sources this library accepts — a
// filesystem path, an io.ReaderAt, or a plain io.Reader — into a
// chunk.Source plus its cleanup hooks.
func resolveSource(source any) (resolved, error) {
	size := config.ChunkSize()

	switch v := source.(type) {
	case string:
		f, err := os.Open(v)
		if err != nil {
			return resolved{}, err
		}
		info, err := f.Stat()
		if err != nil {
			f.Close()
			return resolved{}, err
		}
		if info.IsDir() {
			f.Close()
			return resolved{}, &os.PathError{Op: "read", Path: v, Err: os.ErrInvalid}
		}
		return resolved{
			src:    chunk.NewOffsetSource(f, size),
			rewind: func() error { _, err := f.Seek(0, io.SeekStart); return err },
			close:  f.Close,
		}, nil

	case io.ReaderAt:
		r := resolved{src: chunk.NewOffsetSource(v, size)}
		if seeker, ok := source.(io.Seeker); ok {
			r.rewind = func() error { _, err := seeker.Seek(0, io.SeekStart); return err }
		}
		return r, nil

	case io.Reader:
		r := resolved{src: chunk.NewSequentialSource(v, size)}
		if seeker, ok := source.(io.Seeker); ok {
			r.rewind = func() error { _, err := seeker.Seek(0, io.SeekStart); return err }
		}
		return r, nil

	default:
		return resolved{}, errUnsupportedSource
	}
}
