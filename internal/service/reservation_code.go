package service

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	codeCharset   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeSuffixLen = 5

	// Attempts before giving up when the random suffix keeps colliding.
	maxCodeAttempts = 3
)

// newReservationCode builds a human-facing code: RES + two-digit year and
// month (UTC) + a dash + 5 random alphanumerics, e.g. RES2608-K3X9A.
func newReservationCode(now time.Time) string {
	now = now.UTC()
	suffix := make([]byte, codeSuffixLen)
	for i := range suffix {
		suffix[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return fmt.Sprintf("RES%02d%02d-%s", now.Year()%100, int(now.Month()), suffix)
}
