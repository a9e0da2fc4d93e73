package objectstore

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLen is how much of the body is inspected to detect its content type.
const sniffLen = 3072

// Source is content that can be opened for reading. Open returns the content
// and its size, or -1 when the size is not known up front.
type Source interface {
	Open() (io.ReadCloser, int64, error)
}

type fileSource struct {
	path string
}

// File returns a Source reading the local file at path.
func File(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Open() (io.ReadCloser, int64, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	return f, info.Size(), nil
}

type streamSource struct {
	r io.Reader
}

// Stream returns a Source reading from r. The caller keeps ownership of r;
// it is not closed.
func Stream(r io.Reader) Source {
	return &streamSource{r: r}
}

func (s *streamSource) Open() (io.ReadCloser, int64, error) {
	size := int64(-1)
	if l, ok := s.r.(interface{ Len() int }); ok {
		size = int64(l.Len())
	}
	return io.NopCloser(s.r), size, nil
}

// sniff detects the content type from the head of r and returns a reader
// that still yields the full content.
func sniff(r io.Reader) (io.Reader, string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, "", err
	}
	head = head[:n]
	return io.MultiReader(bytes.NewReader(head), r), mimetype.Detect(head).String(), nil
}
