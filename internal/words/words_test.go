package words

import (
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullList = `# comment
crane
slate
  stare
toolong
abc

erase
`

const commonList = `speed
smile
four
`

func TestNew_FiltersAndNormalizes(t *testing.T) {
	s := New(5, strings.NewReader(fullList), strings.NewReader(commonList), nil)

	candidates, acceptable := s.Stats()
	assert.Equal(t, 2, candidates)
	// crane, slate, stare, erase + speed, smile
	assert.Equal(t, 6, acceptable)
	assert.Equal(t, 5, s.WordLength())

	for _, w := range []string{"crane", "CRANE", "Stare", "erase", "speed", "SMILE"} {
		assert.True(t, s.IsAcceptable(w), w)
	}
	for _, w := range []string{"toolong", "abc", "four", "zzzzz", ""} {
		assert.False(t, s.IsAcceptable(w), w)
	}
}

func TestNew_NilReadersYieldEmptyStore(t *testing.T) {
	s := New(5, nil, nil, nil)
	c, a := s.Stats()
	assert.Zero(t, c)
	assert.Zero(t, a)

	_, err := s.PickRandomTarget()
	assert.True(t, errors.Is(err, ErrEmptyCandidateList))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestNew_FailingReaderDiscardsList(t *testing.T) {
	s := New(5, failingReader{}, strings.NewReader(commonList), nil)
	c, a := s.Stats()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, a)
}

func TestPickRandomTarget_UsesInjectedRand(t *testing.T) {
	common := "alpha\nbravo\ncharl\ndelta\n"
	s1 := New(5, nil, strings.NewReader(common), rand.New(rand.NewSource(7)))
	s2 := New(5, nil, strings.NewReader(common), rand.New(rand.NewSource(7)))

	for i := 0; i < 20; i++ {
		a, err := s1.PickRandomTarget()
		require.NoError(t, err)
		b, err := s2.PickRandomTarget()
		require.NoError(t, err)
		assert.Equal(t, a, b)
		assert.True(t, s1.IsAcceptable(a))
	}
}

type fixedRand int

func (f fixedRand) Intn(n int) int { return int(f) % n }

func TestPickRandomTarget_CoversCandidates(t *testing.T) {
	common := "alpha\nbravo\ncharl\n"
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		s := New(5, nil, strings.NewReader(common), fixedRand(i))
		w, err := s.PickRandomTarget()
		require.NoError(t, err)
		seen[w] = true
	}
	assert.Equal(t, map[string]bool{"ALPHA": true, "BRAVO": true, "CHARL": true}, seen)
}

func TestPickRandomTarget_DefaultRandInRange(t *testing.T) {
	s := New(5, nil, strings.NewReader("alpha\nbravo\n"), nil)
	for i := 0; i < 50; i++ {
		w, err := s.PickRandomTarget()
		require.NoError(t, err)
		assert.Contains(t, []string{"ALPHA", "BRAVO"}, w)
	}
}

func TestCandidateAt(t *testing.T) {
	s := New(5, nil, strings.NewReader("alpha\nbravo\n"), nil)
	w, err := s.CandidateAt(1)
	require.NoError(t, err)
	assert.Equal(t, "BRAVO", w)

	_, err = s.CandidateAt(2)
	assert.Error(t, err)

	_, err = New(5, nil, nil, nil).CandidateAt(0)
	assert.ErrorIs(t, err, ErrEmptyCandidateList)
}

type stubSource struct {
	full, common string
	fullErr      error
}

func (s stubSource) Full() (io.ReadCloser, error) {
	if s.fullErr != nil {
		return nil, s.fullErr
	}
	return io.NopCloser(strings.NewReader(s.full)), nil
}

func (s stubSource) Common() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.common)), nil
}

func TestLoad_SourceErrorsAreSilent(t *testing.T) {
	s := Load(5, stubSource{fullErr: errors.New("missing"), common: "speed\n"}, nil)
	c, a := s.Stats()
	assert.Equal(t, 1, c)
	assert.Equal(t, 1, a)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	full := filepath.Join(dir, "full.txt")
	require.NoError(t, os.WriteFile(full, []byte("crane\nslate\n"), 0o644))

	s := Load(5, FileSource{FullPath: full}, nil)
	c, a := s.Stats()
	assert.Equal(t, 2, c)
	assert.Equal(t, 2, a)

	s = Load(5, FileSource{FullPath: filepath.Join(dir, "nope.txt")}, nil)
	c, a = s.Stats()
	assert.Zero(t, c)
	assert.Zero(t, a)
}
