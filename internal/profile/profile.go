// Package profile defines the per-format stub/refill behavior of the
// template engine. A Profile bundles everything the engine needs to know
// about one log source format; new formats are added by implementing the
// interface and registering a factory, never by touching engine code.
package profile

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
	"github.com/mateusz-blaszkowski/log-tuner/internal/stub"
)

// Profile is the capability set of one log format.
//
// StubTimestamp and StubMisc run during extraction, RefillMisc and
// RefillTimestamps during regeneration. RefillTimestamps operates on the
// whole generated batch at once because the timestamp sequence is the one
// piece of cross-line state; everything else is per-line and stateless.
type Profile interface {
	Name() string
	Description() string

	// StubTimestamp removes or replaces the format's timestamp. Fixed-width
	// formats strip the prefix entirely (it is reconstructed in front of the
	// line during regeneration); pattern-based formats substitute the
	// datetime token in place.
	StubTimestamp(line string) string

	// StubMisc replaces format-specific volatile counters (MACs, VLAN and
	// group numbers, suppression summaries) with their tokens.
	StubMisc(line string) string

	// RefillMisc replaces the misc tokens of a single line with fresh
	// random values.
	RefillMisc(line string) string

	// RefillTimestamps renders a timestamp for every non-blank line of the
	// batch, advancing the cursor once per line. Blank lines pass through
	// without advancing the cursor.
	RefillTimestamps(lines []string, c *Cursor) []string

	// SeedTime is the fixed timestamp the cursor starts from.
	SeedTime() time.Time
}

// Factory builds a Profile instance for one run.
type Factory func(cfg config.Generation, rng *rand.Rand) Profile

var registry = map[string]Factory{}

// Register adds a profile factory under the given name. Called from init
// functions of the profile implementations.
func Register(name string, f Factory) {
	registry[name] = f
}

// Lookup returns the factory registered under name without constructing
// a profile. Unknown names report the full list of valid names so the
// CLI error is self-explanatory.
func Lookup(name string) (Factory, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile %q (valid profiles: %s)",
			name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// New builds the named profile.
func New(name string, cfg config.Generation, rng *rand.Rand) (Profile, error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return f(cfg, rng), nil
}

// Names returns the registered profile names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Info describes a registered profile for listings.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List returns name and description of every registered profile, sorted
// by name. Instances are built with default settings just for metadata.
func List() []Info {
	rng := rand.New(rand.NewSource(1))
	cfg := config.Generation{MACPoolSize: 1, MaxStepMS: 1}
	infos := make([]Info, 0, len(registry))
	for _, name := range Names() {
		p := registry[name](cfg, rng)
		infos = append(infos, Info{Name: p.Name(), Description: p.Description()})
	}
	return infos
}

// stripPrefix drops the fixed-width timestamp header of a line. Lines
// shorter than the prefix are returned unchanged rather than truncated.
func stripPrefix(line string, width int) string {
	if stub.IsBlank(line) || len(line) < width {
		return line
	}
	return line[width:]
}

// replaceEach swaps every occurrence of token for a freshly generated
// value. Generated values never contain the token, so the loop terminates.
func replaceEach(line, token string, gen func() string) string {
	for strings.Contains(line, token) {
		line = strings.Replace(line, token, gen(), 1)
	}
	return line
}

// mustTime parses a profile's seed timestamp. Layouts and values are
// compile-time constants, so failure is a programming error.
func mustTime(layout, value string) time.Time {
	t, err := time.Parse(layout, value)
	if err != nil {
		panic("profile: bad seed timestamp: " + err.Error())
	}
	return t
}
