// Package stub implements the two halves of placeholder handling:
// replacing volatile substrings of a log line with fixed placeholder
// tokens (extraction) and replacing tokens with freshly generated random
// values (regeneration).
//
// All functions are pure with respect to their line argument and are
// identity on blank lines and on lines free of the target pattern.
package stub

import (
	"fmt"
	"math/rand"
	"strings"
)

// ReplaceLimit caps how many occurrences of a single matched value (or of
// a single token during refill) are replaced per line. It defends against
// runaway replacement on malformed lines.
const ReplaceLimit = 10

// IsBlank reports whether a line is empty or whitespace-only. Blank lines
// pass through every stubber and refill untouched.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Apply replaces occurrences of p in line with p's token.
//
// Each distinct matched value gets exactly one replacement pass, capped
// at ReplaceLimit textual occurrences. Many distinct values in one line
// are all stubbed; only repeats of a single value beyond the cap survive
// as literals, keeping stubbing symmetric with the capped refill.
func (p Pattern) Apply(line string) string {
	if IsBlank(line) {
		return line
	}
	seen := make(map[string]bool)
	for _, match := range p.Regex.FindAllString(line, -1) {
		if seen[match] {
			continue
		}
		seen[match] = true
		line = strings.Replace(line, match, p.Token, ReplaceLimit)
	}
	return line
}

// IPs stubs IPv4-style dotted quads anywhere in the line.
func IPs(line string) string {
	return Get("ipv4").Apply(line)
}

// RefillIPs replaces up to ReplaceLimit occurrences of the IP token with
// one freshly generated random address. All occurrences within a line get
// the same address, mirroring the single-value-per-line substitution model
// of extraction.
func RefillIPs(line string, rng *rand.Rand) string {
	if IsBlank(line) || !strings.Contains(line, TokenIP) {
		return line
	}
	return strings.Replace(line, TokenIP, RandomIP(rng), ReplaceLimit)
}

// RandomIP returns a dotted quad with each octet uniform over [0,255].
func RandomIP(rng *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		rng.Intn(256), rng.Intn(256), rng.Intn(256), rng.Intn(256))
}

// RandomMAC returns a lowercase colon-separated MAC address with each
// byte uniform over [0,255].
func RandomMAC(rng *rand.Rand) string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		rng.Intn(256), rng.Intn(256), rng.Intn(256),
		rng.Intn(256), rng.Intn(256), rng.Intn(256))
}
