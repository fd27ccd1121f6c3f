package profile

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
	"github.com/mateusz-blaszkowski/log-tuner/internal/stub"
)

func newTestIOS(t *testing.T) Profile {
	t.Helper()
	p, err := New("cisco-ios", config.DefaultGeneration(), testRand())
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCiscoIOSStub(t *testing.T) {
	p := newTestIOS(t)

	line := "Apr 14 14:09:06 CET: Vlan3649 Grp 92 state Speak -> Standby"
	line = p.StubTimestamp(line)
	line = p.StubMisc(line)

	want := " CET: " + stub.TokenVLAN + " " + stub.TokenGroup + " state Speak -> Standby"
	if line != want {
		t.Errorf("stubbed line = %q, want %q", line, want)
	}
}

func TestCiscoIOSStubIdentity(t *testing.T) {
	p := newTestIOS(t)

	tests := []struct {
		name string
		line string
	}{
		{"blank", ""},
		{"whitespace", "   "},
		{"shorter than prefix", "short line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.StubTimestamp(tt.line); got != tt.line {
				t.Errorf("StubTimestamp(%q) = %q, want unchanged", tt.line, got)
			}
			if got := p.StubMisc(tt.line); got != tt.line {
				t.Errorf("StubMisc(%q) = %q, want unchanged", tt.line, got)
			}
		})
	}
}

func TestCiscoIOSRefillMisc(t *testing.T) {
	p := newTestIOS(t)

	line := "CET: " + stub.TokenVLAN + " " + stub.TokenGroup + " and " + stub.TokenVLAN + " changed"
	got := p.RefillMisc(line)

	if strings.Contains(got, stub.TokenVLAN) || strings.Contains(got, stub.TokenGroup) {
		t.Fatalf("tokens survived refill: %q", got)
	}

	vlans := regexp.MustCompile(`Vlan(\d+)`).FindAllStringSubmatch(got, -1)
	if len(vlans) != 2 {
		t.Fatalf("found %d Vlan counters, want 2: %q", len(vlans), got)
	}
	for _, m := range vlans {
		v, _ := strconv.Atoi(m[1])
		if v < 1 || v > maxVLAN {
			t.Errorf("Vlan%d out of [1,%d]", v, maxVLAN)
		}
	}

	grps := regexp.MustCompile(`Grp (\d+)`).FindAllStringSubmatch(got, -1)
	if len(grps) != 1 {
		t.Fatalf("found %d Grp counters, want 1: %q", len(grps), got)
	}
	if v, _ := strconv.Atoi(grps[0][1]); v < 1 || v > maxGroup {
		t.Errorf("Grp %d out of [1,%d]", v, maxGroup)
	}
}

func TestCiscoIOSRefillTimestamps(t *testing.T) {
	p := newTestIOS(t)
	c := NewCursor(p.SeedTime(), 100, testRand())

	lines := []string{" CET: one", "", " CET: two", "   ", " CET: three"}
	got := p.RefillTimestamps(lines, c)

	if got[1] != "" || got[3] != "   " {
		t.Errorf("blank lines were modified: %q / %q", got[1], got[3])
	}

	var prev time.Time
	for _, i := range []int{0, 2, 4} {
		prefix := got[i][:len(ciscoIOSSeedTime)]
		ts, err := time.Parse(ciscoIOSTimeLayout, prefix)
		if err != nil {
			t.Fatalf("line %d prefix %q does not parse: %v", i, prefix, err)
		}
		if ts.Before(prev) {
			t.Fatalf("timestamps not monotonic: %v after %v", ts, prev)
		}
		if !strings.HasSuffix(got[i], lines[i]) {
			t.Errorf("line body lost: %q", got[i])
		}
		prev = ts
	}
}

func TestCiscoIOSBlankLinesDoNotAdvanceCursor(t *testing.T) {
	p := newTestIOS(t)

	// Interleaving blanks must not consume cursor advances: the same seed
	// yields identical timestamps for the non-blank lines either way.
	dense := NewCursor(p.SeedTime(), 100, rand.New(rand.NewSource(5)))
	plain := p.RefillTimestamps([]string{" a", " b", " c"}, dense)

	sparse := NewCursor(p.SeedTime(), 100, rand.New(rand.NewSource(5)))
	mixed := p.RefillTimestamps([]string{" a", "", " b", "   ", " c"}, sparse)

	for i, j := range []int{0, 2, 4} {
		if mixed[j] != plain[i] {
			t.Errorf("line %d = %q, want %q", j, mixed[j], plain[i])
		}
	}
	if !sparse.Time().Equal(dense.Time()) {
		t.Errorf("cursor ended at %v with blanks, %v without", sparse.Time(), dense.Time())
	}
}
