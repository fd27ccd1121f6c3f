// Package tuner implements the two-phase template engine: extraction of
// placeholder templates from a sample log, and regeneration of a
// synthetic log of a target size from those templates.
//
// The pipeline per line is timestamp stub → IP stub → misc stub during
// extraction, and template pick → IP refill → misc refill during
// regeneration, with one batched timestamp refill at the end carrying the
// monotonic cursor across the whole output.
package tuner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
	"github.com/mateusz-blaszkowski/log-tuner/internal/profile"
	"github.com/mateusz-blaszkowski/log-tuner/internal/stub"
)

// ErrEmptySample is returned when the sample contains no lines (or no
// bytes) to derive templates and a size estimate from.
var ErrEmptySample = errors.New("sample log is empty")

// Tuner drives extraction and regeneration for one profile.
type Tuner struct {
	profile profile.Profile
	cfg     config.Generation
	rng     *rand.Rand

	templates   []string
	sampleLines int
	sampleBytes int64
}

// Option configures a Tuner.
type Option func(*Tuner)

// WithRand injects the random source. Share one source with the profile
// when a fully deterministic run is needed.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tuner) {
		t.rng = rng
	}
}

// New creates a Tuner for the given profile.
func New(p profile.Profile, cfg config.Generation, opts ...Option) *Tuner {
	t := &Tuner{
		profile: p,
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Extract builds the template pool from the raw sample bytes. One
// template per sample line, in sample order; blank lines become empty
// templates. The pool is immutable afterwards.
func (t *Tuner) Extract(data []byte) {
	lines := splitLines(data)
	pool := make([]string, len(lines))
	for i, line := range lines {
		line = t.profile.StubTimestamp(line)
		line = stub.IPs(line)
		line = t.profile.StubMisc(line)
		pool[i] = line
	}
	t.templates = pool
	t.sampleLines = len(lines)
	t.sampleBytes = int64(len(data))
}

// Templates returns the extracted template pool.
func (t *Tuner) Templates() []string {
	return t.templates
}

// RequiredLines estimates how many output lines approximate targetBytes,
// from the sample's average line size. Integer arithmetic on purpose: the
// result is an approximation either way, since templates change length
// after refill.
func RequiredLines(targetBytes int64, sampleLines int, sampleBytes int64) (int, error) {
	if sampleLines == 0 {
		return 0, ErrEmptySample
	}
	avg := sampleBytes / int64(sampleLines)
	if avg == 0 {
		return 0, ErrEmptySample
	}
	return int(targetBytes / avg), nil
}

// Generate produces n synthetic lines from the template pool. Templates
// are picked uniformly at random; per-line refills run first, then the
// batched timestamp refill threads the cursor across the whole result.
func (t *Tuner) Generate(n int) []string {
	if len(t.templates) == 0 || n <= 0 {
		return nil
	}
	lines := make([]string, n)
	for i := range lines {
		line := t.templates[t.rng.Intn(len(t.templates))]
		line = stub.RefillIPs(line, t.rng)
		line = t.profile.RefillMisc(line)
		lines[i] = line
	}
	cursor := profile.NewCursor(t.profile.SeedTime(), t.cfg.MaxStepMS, t.rng)
	return t.profile.RefillTimestamps(lines, cursor)
}

// Stats summarizes one Run.
type Stats struct {
	Profile        string `json:"profile"`
	SampleLines    int    `json:"sample_lines"`
	SampleBytes    int64  `json:"sample_bytes"`
	GeneratedLines int    `json:"generated_lines"`
	BytesWritten   int64  `json:"bytes_written"`
	ElapsedMS      int64  `json:"elapsed_ms"`
}

// Run performs a complete extraction and regeneration pass: derive
// templates from data, estimate the line count for targetBytes, generate
// and write the synthetic log to w.
func (t *Tuner) Run(data []byte, targetBytes int64, w io.Writer) (Stats, error) {
	start := time.Now()

	t.Extract(data)
	n, err := RequiredLines(targetBytes, t.sampleLines, t.sampleBytes)
	if err != nil {
		return Stats{}, err
	}

	lines := t.Generate(n)

	bw := bufio.NewWriter(w)
	var written int64
	for _, line := range lines {
		wrote, err := bw.WriteString(line)
		if err != nil {
			return Stats{}, fmt.Errorf("write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return Stats{}, fmt.Errorf("write output: %w", err)
		}
		written += int64(wrote) + 1
	}
	if err := bw.Flush(); err != nil {
		return Stats{}, fmt.Errorf("write output: %w", err)
	}

	return Stats{
		Profile:        t.profile.Name(),
		SampleLines:    t.sampleLines,
		SampleBytes:    t.sampleBytes,
		GeneratedLines: len(lines),
		BytesWritten:   written,
		ElapsedMS:      time.Since(start).Milliseconds(),
	}, nil
}

// splitLines splits sample bytes on '\n', byte-oriented. A trailing
// newline does not produce a phantom empty line; interior blank lines are
// kept as empty strings.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}
