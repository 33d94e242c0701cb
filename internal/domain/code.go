package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

// NewReservationCode формирует кандидата кода брони: RES-YYYYMM-XXXXXX.
// Уникальность кандидата проверяется вызывающей стороной по базе.
func NewReservationCode(now time.Time) (string, error) {
	buf := make([]byte, CodeSuffixLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("domain: generate code suffix: %w", err)
	}

	suffix := make([]byte, CodeSuffixLength)
	for i, b := range buf {
		suffix[i] = CodeAlphabet[int(b)%len(CodeAlphabet)]
	}

	return fmt.Sprintf("%s-%s", now.Format(CodePrefixFormat), suffix), nil
}
