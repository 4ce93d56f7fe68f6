package mapsurl_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/okruta/routelog/internal/pkg/mapsurl"
)

func TestBuild_RoundTripOrder(t *testing.T) {
	base := "Метро Харківська, Київ"
	waypoints := []string{"вул. Хрещатик 1, Київ", "Ірпінь, Соборна 15"}

	link := mapsurl.Build(base, waypoints)

	const prefix = "https://www.google.com/maps/dir/"
	if !strings.HasPrefix(link, prefix) {
		t.Fatalf("unexpected prefix: %s", link)
	}

	encoded := strings.Split(strings.TrimPrefix(link, prefix), "/")
	if len(encoded) != len(waypoints)+2 {
		t.Fatalf("expected %d points, got %d", len(waypoints)+2, len(encoded))
	}

	var decoded []string
	for _, p := range encoded {
		d, err := url.PathUnescape(p)
		if err != nil {
			t.Fatalf("decode %q: %v", p, err)
		}
		decoded = append(decoded, d)
	}

	want := append(append([]string{base}, waypoints...), base)
	for i := range want {
		if decoded[i] != want[i] {
			t.Errorf("point %d: expected %q, got %q", i, want[i], decoded[i])
		}
	}
}

func TestBuild_NoWhitespaceOrRawSeparator(t *testing.T) {
	link := mapsurl.Build("Метро Харківська, Київ", []string{"вул. Банкова 11/5, Київ"})

	if strings.ContainsAny(link, " \t\n") {
		t.Errorf("link contains literal whitespace: %s", link)
	}

	// Only the joining separators may be slashes; the slash inside the
	// house number must be encoded.
	points := strings.TrimPrefix(link, "https://www.google.com/maps/dir/")
	if got := strings.Count(points, "/"); got != 2 {
		t.Errorf("expected exactly 2 separators, found %d in %s", got, points)
	}
}

func TestBuild_NonASCIIFullyEncoded(t *testing.T) {
	link := mapsurl.Build("Київ", nil)

	tail := strings.TrimPrefix(link, "https://www.google.com/maps/dir/")
	for i := 0; i < len(tail); i++ {
		c := tail[i]
		if c >= 0x80 {
			t.Fatalf("unencoded non-ASCII byte at %d in %s", i, tail)
		}
	}
	if !strings.Contains(tail, "%D0") {
		t.Errorf("expected percent-encoded Cyrillic, got %s", tail)
	}
}

func TestBuild_NoWaypoints(t *testing.T) {
	link := mapsurl.Build("Київ", nil)

	tail := strings.TrimPrefix(link, "https://www.google.com/maps/dir/")
	parts := strings.Split(tail, "/")
	if len(parts) != 2 {
		t.Fatalf("expected base/base, got %v", parts)
	}
	if parts[0] != parts[1] {
		t.Errorf("start and finish should match: %v", parts)
	}
}
