package profile

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
	"github.com/mateusz-blaszkowski/log-tuner/internal/stub"
)

// extremeOS handles Extreme Networks XOS-style logs. The timestamp is a
// fixed-width prefix stripped during extraction; the volatile misc data is
// the message-suppression summary ("... 17 additional times in the last
// 42 second"), which is stubbed and refilled as one compound unit.
type extremeOS struct {
	rng *rand.Rand
}

const (
	extremeOSPrefixWidth = 22
	extremeOSTimeLayout  = "01/02/2006 15:04:05.00"
	extremeOSSeedTime    = "05/10/2017 07:25:58.11"

	maxRepeatTimes   = 300
	maxRepeatSeconds = 100
)

func init() {
	Register("extreme-os", func(cfg config.Generation, rng *rand.Rand) Profile {
		return &extremeOS{rng: rng}
	})
}

func (p *extremeOS) Name() string { return "extreme-os" }

func (p *extremeOS) Description() string {
	return "Extreme XOS logs (fixed-width timestamp prefix, suppression summaries)"
}

func (p *extremeOS) StubTimestamp(line string) string {
	return stripPrefix(line, extremeOSPrefixWidth)
}

func (p *extremeOS) StubMisc(line string) string {
	return stub.Get("repeat").Apply(line)
}

func (p *extremeOS) RefillMisc(line string) string {
	if stub.IsBlank(line) || !strings.Contains(line, stub.TokenRepeat) {
		return line
	}
	times := strconv.Itoa(1 + p.rng.Intn(maxRepeatTimes))
	seconds := strconv.Itoa(1 + p.rng.Intn(maxRepeatSeconds))
	filled := strings.NewReplacer(
		stub.TokenTimes, times,
		stub.TokenSeconds, seconds,
	).Replace(stub.TokenRepeat)
	return strings.ReplaceAll(line, stub.TokenRepeat, filled)
}

func (p *extremeOS) RefillTimestamps(lines []string, c *Cursor) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if stub.IsBlank(line) {
			out[i] = line
			continue
		}
		out[i] = c.Advance().Format(extremeOSTimeLayout) + line
	}
	return out
}

func (p *extremeOS) SeedTime() time.Time {
	return mustTime(extremeOSTimeLayout, extremeOSSeedTime)
}
