// internal/words/words.go
//
// Word store for the game engine.
//
// Responsibilities:
//   - Load the full dictionary (acceptance set) and the common-word list
//     (target candidates) from a Source.
//   - Answer membership tests in O(1) via a set.
//   - Pick a uniformly random target through an injectable Rand.
//
// Word Lists:
//   - "full":   every legal guess of the configured length.
//   - "common": words eligible to be chosen as the hidden target.
//     Candidates are always added to the acceptance set too.
//
// Constraints:
//   • Words keep only lines whose rune count equals the configured length.
//   • Lists are normalized to uppercase.
//   • A missing or unreadable source yields an empty list, never an error.
//   • The Store is immutable after construction and safe to share.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// ErrEmptyCandidateList is returned when a target is requested from a store
// that has no candidate words.
var ErrEmptyCandidateList = errors.New("words: candidate list is empty")

// Rand is the source of randomness used for target selection.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Store holds the acceptance set and the candidate list.
type Store struct {
	wordLength int
	accept     map[string]struct{} // full ∪ common
	candidates []string            // common, in source order
	rnd        Rand
}

// New builds a Store from two newline-delimited readers.
// A nil reader, or one that fails mid-way, leaves its list empty.
// If rnd is nil a crypto/rand backed source is used.
func New(wordLength int, full, common io.Reader, rnd Rand) *Store {
	if rnd == nil {
		rnd = cryptoRand{}
	}
	s := &Store{
		wordLength: wordLength,
		accept:     make(map[string]struct{}),
		rnd:        rnd,
	}

	for _, w := range readWords(full, wordLength, "full") {
		s.accept[w] = struct{}{}
	}
	s.candidates = readWords(common, wordLength, "common")

	// Targets must always be legal guesses.
	for _, w := range s.candidates {
		s.accept[w] = struct{}{}
	}
	return s
}

// Load opens both lists from src and builds a Store.
// Open failures are logged and produce empty lists.
func Load(wordLength int, src Source, rnd Rand) *Store {
	full, err := src.Full()
	if err != nil {
		log.Warn().Err(err).Msg("words: full list unavailable")
		full = nil
	} else {
		defer full.Close()
	}
	common, err := src.Common()
	if err != nil {
		log.Warn().Err(err).Msg("words: common list unavailable")
		common = nil
	} else {
		defer common.Close()
	}
	return New(wordLength, readerOrNil(full), readerOrNil(common), rnd)
}

// readerOrNil avoids handing New a typed-nil io.ReadCloser.
func readerOrNil(rc io.ReadCloser) io.Reader {
	if rc == nil {
		return nil
	}
	return rc
}

// readWords scans r line by line, keeping uppercase words of exactly n runes.
func readWords(r io.Reader, n int, name string) []string {
	if r == nil {
		return nil
	}
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if utf8.RuneCountInString(w) != n {
			continue
		}
		out = append(out, strings.ToUpper(w))
	}
	if err := sc.Err(); err != nil {
		log.Warn().Err(err).Str("list", name).Msg("words: read failed, list discarded")
		return nil
	}
	return out
}

// WordLength reports the configured word length.
func (s *Store) WordLength() int { return s.wordLength }

// IsAcceptable reports whether word is a legal guess (case-insensitive).
func (s *Store) IsAcceptable(word string) bool {
	_, ok := s.accept[strings.ToUpper(word)]
	return ok
}

// PickRandomTarget returns a uniformly random candidate.
func (s *Store) PickRandomTarget() (string, error) {
	if len(s.candidates) == 0 {
		return "", ErrEmptyCandidateList
	}
	return s.candidates[s.rnd.Intn(len(s.candidates))], nil
}

// CandidateAt returns the i-th candidate, used for deterministic (daily) picks.
func (s *Store) CandidateAt(i int) (string, error) {
	if len(s.candidates) == 0 {
		return "", ErrEmptyCandidateList
	}
	if i < 0 || i >= len(s.candidates) {
		return "", errors.New("words: candidate index out of range")
	}
	return s.candidates[i], nil
}

// Stats returns counts of loaded words: (candidates, acceptable).
func (s *Store) Stats() (candidates int, acceptable int) {
	return len(s.candidates), len(s.accept)
}

// cryptoRand draws indices from crypto/rand.
type cryptoRand struct{}

func (cryptoRand) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(v.Int64())
}
