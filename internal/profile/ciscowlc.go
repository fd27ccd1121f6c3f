package profile

import (
	"math/rand"
	"strings"
	"time"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
	"github.com/mateusz-blaszkowski/log-tuner/internal/stub"
)

// ciscoWLC handles Cisco wireless controller logs. The timestamp is a
// bare HH:MM:SS.mmm clock that can appear anywhere in the line, so it is
// stubbed in place rather than stripped. MAC addresses are the volatile
// misc data.
//
// MAC refill draws from a pool of addresses precomputed at construction;
// picking from the pool is much cheaper than generating an address per
// line. The pool is immutable after construction.
type ciscoWLC struct {
	rng  *rand.Rand
	macs []string
}

const (
	ciscoWLCTimeLayout = "15:04:05.000"
	ciscoWLCSeedTime   = "14:14:51.655"
)

func init() {
	Register("cisco-wlc", newCiscoWLC)
}

func newCiscoWLC(cfg config.Generation, rng *rand.Rand) Profile {
	size := cfg.MACPoolSize
	if size <= 0 {
		size = config.DefaultMACPoolSize
	}
	macs := make([]string, size)
	for i := range macs {
		macs[i] = stub.RandomMAC(rng)
	}
	return &ciscoWLC{rng: rng, macs: macs}
}

func (p *ciscoWLC) Name() string { return "cisco-wlc" }

func (p *ciscoWLC) Description() string {
	return "Cisco WLC logs (in-line HH:MM:SS.mmm timestamps, MAC addresses)"
}

func (p *ciscoWLC) StubTimestamp(line string) string {
	return stub.Get("clock").Apply(line)
}

func (p *ciscoWLC) StubMisc(line string) string {
	return stub.Get("mac").Apply(line)
}

func (p *ciscoWLC) RefillMisc(line string) string {
	if stub.IsBlank(line) || !strings.Contains(line, stub.TokenMAC) {
		return line
	}
	mac := p.macs[p.rng.Intn(len(p.macs))]
	return strings.Replace(line, stub.TokenMAC, mac, stub.ReplaceLimit)
}

func (p *ciscoWLC) RefillTimestamps(lines []string, c *Cursor) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if stub.IsBlank(line) {
			out[i] = line
			continue
		}
		ts := c.Advance().Format(ciscoWLCTimeLayout)
		out[i] = strings.ReplaceAll(line, stub.TokenDatetime, ts)
	}
	return out
}

func (p *ciscoWLC) SeedTime() time.Time {
	return mustTime(ciscoWLCTimeLayout, ciscoWLCSeedTime)
}
