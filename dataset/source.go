package dataset

import (
	"io"
	"os"
	"strings"
)

// Source is a named, openable persisted source.
type Source struct {
	// Name identifies the source in errors and logs, usually a file path.
	Name string

	// Open returns a fresh reader positioned at the start of the source.
	Open func() (io.ReadCloser, error)
}

// FileSource returns a Source that opens the file at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// ReaderSource wraps an already-open reader. The reader is consumed by the
// first Open; it is never closed by the package.
func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// StringSource returns a Source over an in-memory text.
func StringSource(name, text string) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(text)), nil },
	}
}
