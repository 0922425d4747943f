package validate

import (
	"regexp"
	"strings"
	"time"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 \-]{6,18}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 ._'\-]{1,50}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reDur   = regexp.MustCompile(`^(daily|weekly|monthly)$`)
	reAvail = regexp.MustCompile(`^(available|booked|out_of_stock)$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 80 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && rePhone.MatchString(s)
}

// Q validates a search query: trims, enforces allowed characters and
// max length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a simple resource identifier (product/category ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Duration validates a rental duration tier.
func Duration(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reDur.MatchString(s)
}

// Availability validates the product availability enum.
func Availability(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reAvail.MatchString(s)
}

// Name validates a displayable person name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// StartDate accepts YYYY-MM-DD not earlier than today (the form's
// date input has min=today; this is the server-side half of that).
func StartDate(s string, now time.Time) (string, bool) {
	s = strings.TrimSpace(s)
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return "", false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if d.Before(today) {
		return "", false
	}
	return s, true
}
