// assets/embed.go
//
// Embedded default word lists, so the server and terminal client run without
// any configured files.
//
//   - words.txt:  full dictionary of accepted guesses.
//   - common.txt: common words eligible as targets (also accepted as guesses).

package assets

import (
	"embed"
	"io"
)

//go:embed words.txt common.txt
var FS embed.FS

// Embedded is a word source backed by FS.
type Embedded struct{}

func (Embedded) Full() (io.ReadCloser, error) { return FS.Open("words.txt") }

func (Embedded) Common() (io.ReadCloser, error) { return FS.Open("common.txt") }
