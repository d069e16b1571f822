package repository

import (
	"fmt"
	"os"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// formatNumero renders a sequence value as the human-facing OS number.
// Zero-padding is a minimum width, not a truncation: sequence 42 yields
// "000042", sequence 1000000 yields the 7-character "1000000".
func formatNumero(seq int64) string {
	return fmt.Sprintf("%06d", seq)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}
