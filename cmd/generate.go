package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
	"github.com/mateusz-blaszkowski/log-tuner/internal/output"
	"github.com/mateusz-blaszkowski/log-tuner/internal/profile"
	"github.com/mateusz-blaszkowski/log-tuner/internal/tuner"
	"github.com/mateusz-blaszkowski/log-tuner/internal/watch"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic log file from a sample",
	Long: `Read a sample log file, extract line templates by stubbing volatile
data, and write a synthetic log of roughly the requested size with the
templates refilled with random values.

Examples:
  log-tuner generate -i samples/hsrp.log -o big.log -s 1000 -c cisco-ios
  log-tuner generate -i wlc.log -o out.log -s 50 -c cisco-wlc --seed 42
  log-tuner generate -i xos.log -o out.log -s 10 -c extreme-os --watch`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringP("input", "i", "", "sample log file (required)")
	generateCmd.Flags().StringP("output", "o", "", "destination file (required)")
	generateCmd.Flags().IntP("size", "s", 0, "target output size in megabytes (required)")
	generateCmd.Flags().StringP("profile", "c", "", "log format profile, see 'log-tuner profiles' (required)")
	generateCmd.Flags().Int64("seed", 0, "random seed for reproducible output (0 = time-based)")
	generateCmd.Flags().Bool("watch", false, "keep running and regenerate whenever the sample changes")

	_ = generateCmd.MarkFlagRequired("input")
	_ = generateCmd.MarkFlagRequired("output")
	_ = generateCmd.MarkFlagRequired("size")
	_ = generateCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	outPath, _ := cmd.Flags().GetString("output")
	sizeMB, _ := cmd.Flags().GetInt("size")
	profileName, _ := cmd.Flags().GetString("profile")
	seed, _ := cmd.Flags().GetInt64("seed")
	watchMode, _ := cmd.Flags().GetBool("watch")

	if sizeMB <= 0 {
		return fmt.Errorf("size must be a positive number of megabytes, got %d", sizeMB)
	}

	cfg, err := config.FromViper()
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Generation.Seed = seed
	}

	// Fail on an unknown profile before touching any files.
	if _, err := profile.Lookup(profileName); err != nil {
		return err
	}

	targetBytes := int64(sizeMB) * 1024 * 1024
	run := func() error {
		return generateOnce(cmd, input, outPath, targetBytes, profileName, cfg)
	}

	if err := run(); err != nil {
		return err
	}
	if !watchMode {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if viper.GetBool("verbose") {
		fmt.Fprintln(os.Stderr, "Watching", input, "for changes (Ctrl-C to stop)")
	}
	return watch.New(input, run).Run(ctx)
}

// generateOnce performs one full extract-and-generate pass.
func generateOnce(cmd *cobra.Command, input, outPath string, targetBytes int64, profileName string, cfg config.Config) error {
	rng := newRand(cfg.Generation.Seed)

	prof, err := profile.New(profileName, cfg.Generation, rng)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read sample: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	t := tuner.New(prof, cfg.Generation, tuner.WithRand(rng))
	stats, err := t.Run(data, targetBytes, out)
	if err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	format := output.ParseFormat(viper.GetString("format"))
	return output.New(cmd.OutOrStdout(), format).WriteSummary(stats)
}

// newRand builds the run's random source. Zero means time-based seeding.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
