package profile

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
	"github.com/mateusz-blaszkowski/log-tuner/internal/stub"
)

// ciscoIOS handles Cisco IOS HSRP-style logs:
//
//	Apr 14 14:09:06 CET: Vlan3649 Grp 92 state Speak -> Standby
//
// The timestamp is a fixed-width prefix that is stripped during extraction
// and reconstructed in front of the line during regeneration. VLAN and
// standby group counters are the volatile misc data.
type ciscoIOS struct {
	rng *rand.Rand
}

const (
	ciscoIOSPrefixWidth = 15
	ciscoIOSTimeLayout  = "Jan 02 15:04:05.00"
	ciscoIOSSeedTime    = "Feb 11 08:05:11.00"

	maxVLAN  = 5000
	maxGroup = 300
)

func init() {
	Register("cisco-ios", func(cfg config.Generation, rng *rand.Rand) Profile {
		return &ciscoIOS{rng: rng}
	})
}

func (p *ciscoIOS) Name() string { return "cisco-ios" }

func (p *ciscoIOS) Description() string {
	return "Cisco IOS HSRP logs (fixed-width timestamp prefix, Vlan/Grp counters)"
}

func (p *ciscoIOS) StubTimestamp(line string) string {
	return stripPrefix(line, ciscoIOSPrefixWidth)
}

func (p *ciscoIOS) StubMisc(line string) string {
	line = stub.Get("vlan").Apply(line)
	return stub.Get("grp").Apply(line)
}

func (p *ciscoIOS) RefillMisc(line string) string {
	if stub.IsBlank(line) {
		return line
	}
	line = replaceEach(line, stub.TokenVLAN, func() string {
		return "Vlan" + strconv.Itoa(1+p.rng.Intn(maxVLAN))
	})
	return replaceEach(line, stub.TokenGroup, func() string {
		return "Grp " + strconv.Itoa(1+p.rng.Intn(maxGroup))
	})
}

func (p *ciscoIOS) RefillTimestamps(lines []string, c *Cursor) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if stub.IsBlank(line) {
			out[i] = line
			continue
		}
		out[i] = c.Advance().Format(ciscoIOSTimeLayout) + line
	}
	return out
}

func (p *ciscoIOS) SeedTime() time.Time {
	return mustTime(ciscoIOSTimeLayout, ciscoIOSSeedTime)
}
