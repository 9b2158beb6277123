package utils

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

// Unambiguous alphabet: no 0/O, 1/I/L.
const confirmationAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// GenerateConfirmationNumber creates a human-readable confirmation number.
// Format: SURF-YYYYMMDD-XXXXXX where X is drawn from crypto/rand. All
// bookings paid by one payment share one confirmation number, so the value
// must be generated once per payment reference and never regenerated.
func GenerateConfirmationNumber() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the whole process is in trouble;
		// fall back to a uuid-derived suffix rather than panicking.
		return fmt.Sprintf("SURF-%s-%s", time.Now().Format("20060102"), uuid.NewString()[:6])
	}
	for i, b := range buf {
		buf[i] = confirmationAlphabet[int(b)%len(confirmationAlphabet)]
	}
	return fmt.Sprintf("SURF-%s-%s", time.Now().Format("20060102"), string(buf))
}
