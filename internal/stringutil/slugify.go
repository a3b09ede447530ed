package stringutil

import (
	"crypto/rand"
	"fmt"
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify converts a name to a URL-friendly slug: lowercase, runs of
// anything other than letters and digits collapsed to one hyphen, no
// leading or trailing hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// RandomSlug returns prefix followed by a hyphen and six random base-36 characters.
func RandomSlug(prefix string) string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("stringutil: reading random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = slugAlphabet[int(b)%len(slugAlphabet)]
	}
	return prefix + "-" + string(buf)
}

// UniqueSlug slugifies base and appends -1, -2, ... until taken reports the
// candidate as free. An empty slug falls back to RandomSlug(fallbackPrefix).
// taken is called with lowercase candidates.
func UniqueSlug(base, fallbackPrefix string, taken func(string) bool) string {
	clean := Slugify(base)
	if clean == "" {
		clean = RandomSlug(fallbackPrefix)
	}
	candidate := clean
	for i := 1; taken(candidate); i++ {
		candidate = fmt.Sprintf("%s-%d", clean, i)
	}
	return candidate
}
