package buildinfo

import "testing"

func TestString(t *testing.T) {
	if got := String(); got != "orchard dev (commit=none, date=unknown)" {
		t.Fatalf("unexpected build string %q", got)
	}
}
