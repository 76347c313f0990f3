// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// Every player gets the same target on the same UTC date; the index is
// HMAC-SHA256(salt, YYYY-MM-DD) modulo the candidate count.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Candidates is the slice of the word store the daily pick needs.
type Candidates interface {
	Stats() (candidates int, acceptable int)
	CandidateAt(i int) (string, error)
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed is the value every player shares on a date: the leading eight
// bytes of HMAC-SHA256(salt, date), big-endian.
func Seed(salt, date string) uint64 {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(date))
	return binary.BigEndian.Uint64(mac.Sum(nil))
}

// WordIndex maps a date key onto [0, n). It is 0 when there is nothing to pick.
func WordIndex(date, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	return int(Seed(salt, date) % uint64(n))
}

// Pick returns today's date key, candidate index and target word.
func Pick(c Candidates, now time.Time, salt string) (date string, idx int, word string, err error) {
	date = DateKey(now)
	n, _ := c.Stats()
	idx = WordIndex(date, salt, n)
	word, err = c.CandidateAt(idx)
	return date, idx, word, err
}
