// Package mapsurl builds shareable Google Maps directions links for
// multi-stop round trips.
package mapsurl

import (
	"strings"
)

const prefix = "https://www.google.com/maps/dir/"

// upperhex is the alphabet for percent-encoding.
const upperhex = "0123456789ABCDEF"

// Build returns a directions link for a round trip: base, each waypoint in
// order, then base again. Every point is fully percent-encoded, so the
// result is one contiguous token with no whitespace and no raw separator
// inside a point; chat clients render it as a single link.
func Build(base string, waypoints []string) string {
	points := make([]string, 0, len(waypoints)+2)
	points = append(points, escapePoint(base))
	for _, wp := range waypoints {
		points = append(points, escapePoint(wp))
	}
	points = append(points, escapePoint(base))

	return prefix + strings.Join(points, "/")
}

// escapePoint percent-encodes every byte outside the RFC 3986 unreserved
// set. Stricter than url.PathEscape on purpose: reserved characters and
// the point separator itself must never survive unescaped.
func escapePoint(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}
