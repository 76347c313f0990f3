// internal/words/source.go
//
// Where the word lists come from.
// Responsibilities:
//   - Source: the acceptance list and the target list as readers.
//   - FileSource: both lists from disk; the full list doubles as the
//     target list when no common list is configured.

package words

import (
	"io"
	"os"
)

// Source supplies the two newline-delimited word blobs.
type Source interface {
	// Full returns every word the game accepts as a guess.
	Full() (io.ReadCloser, error)
	// Common returns the words eligible to become a target.
	Common() (io.ReadCloser, error)
}

// FileSource reads both lists from disk.
// When CommonPath is empty the full list doubles as the candidate list.
type FileSource struct {
	FullPath   string
	CommonPath string
}

func (f FileSource) Full() (io.ReadCloser, error) { return os.Open(f.FullPath) }

func (f FileSource) Common() (io.ReadCloser, error) {
	if f.CommonPath == "" {
		return os.Open(f.FullPath)
	}
	return os.Open(f.CommonPath)
}
