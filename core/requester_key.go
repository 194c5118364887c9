package core

import (
	"regexp"
	"strings"
)

const maxRequesterKeyLength = 254

var requesterKeyPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@.]+$`)

// NormalizeRequesterKey trims and lowercases a raw contact address and checks its format.
// Two keys that only differ in case or surrounding whitespace identify the same requester.
func NormalizeRequesterKey(raw string) (RequesterKey, error) {
	key := strings.ToLower(strings.TrimSpace(raw))

	if key == "" || len(key) > maxRequesterKeyLength || !requesterKeyPattern.MatchString(key) {
		return "", ErrInvalidRequesterKey
	}

	return key, nil
}
