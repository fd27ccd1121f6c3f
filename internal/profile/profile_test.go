package profile

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestNames(t *testing.T) {
	want := []string{"cisco-ios", "cisco-wlc", "extreme-os"}
	if got := Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNewKnownProfiles(t *testing.T) {
	cfg := config.DefaultGeneration()
	cfg.MACPoolSize = 8 // keep construction cheap

	for _, name := range Names() {
		p, err := New(name, cfg, testRand())
		if err != nil {
			t.Fatalf("New(%q) error = %v", name, err)
		}
		if p.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, p.Name())
		}
		if p.Description() == "" {
			t.Errorf("profile %q has no description", name)
		}
	}
}

func TestNewUnknownProfile(t *testing.T) {
	_, err := New("syslog-ng", config.DefaultGeneration(), testRand())
	if err == nil {
		t.Fatal("New() with unknown name did not error")
	}

	// The error must list the valid names so the CLI message is usable.
	for _, name := range Names() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not mention %q", err, name)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		f, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", name, err)
		}
		if f == nil {
			t.Fatalf("Lookup(%q) returned nil factory", name)
		}
	}

	if _, err := Lookup("syslog-ng"); err == nil {
		t.Error("Lookup() with unknown name did not error")
	}
}

func TestList(t *testing.T) {
	infos := List()
	if len(infos) != len(Names()) {
		t.Fatalf("List() returned %d profiles, want %d", len(infos), len(Names()))
	}
	for i, name := range Names() {
		if infos[i].Name != name {
			t.Errorf("List()[%d].Name = %q, want %q", i, infos[i].Name, name)
		}
	}
}

func TestCursorMonotonic(t *testing.T) {
	seed := time.Date(2017, 5, 10, 7, 25, 58, 0, time.UTC)
	c := NewCursor(seed, 100, testRand())

	prev := c.Time()
	for i := 0; i < 500; i++ {
		now := c.Advance()
		if now.Before(prev) {
			t.Fatalf("cursor moved backwards: %v -> %v", prev, now)
		}
		if delta := now.Sub(prev); delta > 100*time.Millisecond {
			t.Fatalf("advance of %v exceeds the 100ms bound", delta)
		}
		prev = now
	}

	if prev.Before(seed) {
		t.Error("cursor ended before its seed")
	}
}

func TestCursorDefaultStep(t *testing.T) {
	seed := time.Now()
	c := NewCursor(seed, 0, testRand())

	for i := 0; i < 100; i++ {
		before := c.Time()
		after := c.Advance()
		if delta := after.Sub(before); delta > config.DefaultMaxStepMS*time.Millisecond {
			t.Fatalf("advance of %v exceeds the default bound", delta)
		}
	}
}

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		width int
		want  string
	}{
		{"normal strip", "Apr 14 14:09:06 CET: rest", 15, " CET: rest"},
		{"exact width", "Apr 14 14:09:06", 15, ""},
		{"shorter than width", "short", 15, "short"},
		{"blank line", "", 15, ""},
		{"whitespace only", "   ", 15, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripPrefix(tt.line, tt.width); got != tt.want {
				t.Errorf("stripPrefix(%q, %d) = %q, want %q", tt.line, tt.width, got, tt.want)
			}
		})
	}
}

func TestSeedTimesRoundTrip(t *testing.T) {
	tests := []struct {
		profile string
		layout  string
		seed    string
	}{
		{"cisco-ios", ciscoIOSTimeLayout, ciscoIOSSeedTime},
		{"cisco-wlc", ciscoWLCTimeLayout, ciscoWLCSeedTime},
		{"extreme-os", extremeOSTimeLayout, extremeOSSeedTime},
	}

	cfg := config.Generation{MACPoolSize: 1}
	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			p, err := New(tt.profile, cfg, testRand())
			if err != nil {
				t.Fatal(err)
			}
			if got := p.SeedTime().Format(tt.layout); got != tt.seed {
				t.Errorf("SeedTime() renders as %q, want %q", got, tt.seed)
			}
		})
	}
}
