package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NextID returns a 50-character, roughly time-ordered record id: the
// millisecond timestamp zero-padded to 15 digits, 32 hex digits of a
// random UUID and a "000" suffix.
func NextID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%015d%s000", time.Now().UnixMilli(), hex)
}

// Now is the default for created_at columns: Unix time in seconds.
func Now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
