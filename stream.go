package pid

import (
	"errors"
	"io"
	"os"
)

// Stream is the random access stream contract the converter reads from and
// writes to. Hosts bind it to whatever storage they manage; every
// operation reports failure by error rather than panicking.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker

	// Size returns the total length of the stream in bytes.
	Size() (int64, error)
}

type fileStream struct {
	*os.File
}

// NewFileStream wraps an open file as a Stream.
func NewFileStream(f *os.File) Stream {
	return fileStream{f}
}

func (s fileStream) Size() (int64, error) {
	info, err := s.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// A MemoryStream is a growable in-memory Stream. Seeking past the end is
// allowed; the gap zero-fills on the next write, matching file semantics.
// The zero value is an empty stream ready for use.
type MemoryStream struct {
	buf []byte
	off int64
}

// NewMemoryStream returns a MemoryStream with p as its initial content and
// the cursor at the start.
func NewMemoryStream(p []byte) *MemoryStream {
	return &MemoryStream{buf: p}
}

func (s *MemoryStream) Read(p []byte) (int, error) {
	if s.off >= int64(len(s.buf)) {
		return 0, io.EOF
	}
	n := copy(p, s.buf[s.off:])
	s.off += int64(n)
	return n, nil
}

func (s *MemoryStream) Write(p []byte) (int, error) {
	if end := s.off + int64(len(p)); end > int64(len(s.buf)) {
		buf := make([]byte, end)
		copy(buf, s.buf)
		s.buf = buf
	}
	n := copy(s.buf[s.off:], p)
	s.off += int64(n)
	return n, nil
}

func (s *MemoryStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.off + offset
	case io.SeekEnd:
		abs = int64(len(s.buf)) + offset
	default:
		return 0, errors.New("pid: invalid seek whence")
	}
	if abs < 0 {
		return 0, errors.New("pid: negative seek position")
	}
	s.off = abs
	return abs, nil
}

func (s *MemoryStream) Size() (int64, error) {
	return int64(len(s.buf)), nil
}

// Bytes returns the current content of the stream. The slice is only valid
// until the next write.
func (s *MemoryStream) Bytes() []byte {
	return s.buf
}
