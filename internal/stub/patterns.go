package stub

import (
	"regexp"
)

// Placeholder tokens substituted for volatile log line data during
// extraction. Bracketed pseudo-tags keep them visually distinct from
// anything a real log line could contain.
const (
	TokenIP       = "[IPV4]"
	TokenDatetime = "[DATETIME]"
	TokenMAC      = "[MAC]"
	TokenVLAN     = "[VLAN]"
	TokenGroup    = "[GRP]"
	TokenTimes    = "[TIMES]"
	TokenSeconds  = "[SECONDS]"

	// TokenRepeat is the compound "repeated N times in the last M seconds"
	// placeholder. It is stubbed and refilled as a single unit.
	TokenRepeat = TokenTimes + " additional times in the last " + TokenSeconds + " second"
)

// Pattern ties a named regex to the placeholder token it produces.
type Pattern struct {
	Name        string
	Regex       *regexp.Regexp
	Token       string
	Description string
}

// Volatile substring patterns shared by the log format profiles.
var (
	// Dotted quads: 10.0.0.1, 192.168.304.1. Components are deliberately
	// unbounded digit runs rather than strict 0-255 octets, matching how
	// such counters show up in device logs.
	ipv4Regex = regexp.MustCompile(`[0-9]+(?:\.[0-9]+){3}`)

	// Bare wall-clock timestamps with milliseconds: 14:14:51.655
	clockRegex = regexp.MustCompile(`\d{2}:\d{2}:\d{2}\.\d{3}`)

	// Colon-separated hex sextets: 00:1b:44:11:3a:b7
	macRegex = regexp.MustCompile(`(?i)[0-9a-f]{2}(?::[0-9a-f]{2}){5}`)

	// Interface and standby-group counters: Vlan3649, Grp 92
	vlanRegex = regexp.MustCompile(`Vlan\d+`)
	grpRegex  = regexp.MustCompile(`Grp \d+`)

	// Suppression summaries: "17 additional times in the last 42 second"
	repeatRegex = regexp.MustCompile(`\d+ additional times in the last \d+ second`)
)

// BuiltIn contains all volatile-data patterns known to the stubbers,
// keyed by name. Profiles pick the subset relevant to their format.
var BuiltIn = map[string]Pattern{
	"ipv4": {
		Name:        "ipv4",
		Regex:       ipv4Regex,
		Token:       TokenIP,
		Description: "IPv4-style dotted quads",
	},
	"clock": {
		Name:        "clock",
		Regex:       clockRegex,
		Token:       TokenDatetime,
		Description: "HH:MM:SS.mmm timestamps",
	},
	"mac": {
		Name:        "mac",
		Regex:       macRegex,
		Token:       TokenMAC,
		Description: "MAC addresses",
	},
	"vlan": {
		Name:        "vlan",
		Regex:       vlanRegex,
		Token:       TokenVLAN,
		Description: "VLAN interface numbers",
	},
	"grp": {
		Name:        "grp",
		Regex:       grpRegex,
		Token:       TokenGroup,
		Description: "Standby group numbers",
	},
	"repeat": {
		Name:        "repeat",
		Regex:       repeatRegex,
		Token:       TokenRepeat,
		Description: "Message suppression summaries",
	},
}

// Get returns the named built-in pattern. It panics on unknown names,
// which only happens on a programming error in a profile.
func Get(name string) Pattern {
	p, ok := BuiltIn[name]
	if !ok {
		panic("stub: unknown pattern " + name)
	}
	return p
}
