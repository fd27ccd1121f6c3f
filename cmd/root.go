package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mateusz-blaszkowski/log-tuner/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "log-tuner",
	Short: "Synthesize large log files from a small sample",
	Long: `Log-tuner grows a small representative log sample into a large,
realistic-looking synthetic log for load testing and capacity planning.

It works in two phases: volatile data in the sample (timestamps, IP and
MAC addresses, device counters) is replaced with placeholder templates,
then templates are sampled at random and refilled with fresh values until
the output reaches the requested size. Timestamps increase monotonically
across the generated file.

Examples:
  log-tuner generate -i samples/hsrp.log -o big.log -s 1000 -c cisco-ios
  log-tuner generate -i wlc.log -o wlc-big.log -s 50 -c cisco-wlc --watch
  log-tuner profiles`,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.log-tuner.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format for summaries (text, json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".log-tuner")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LOG_TUNER")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)
	viper.SetDefault("generation.mac_pool_size", config.DefaultMACPoolSize)
	viper.SetDefault("generation.max_step_ms", config.DefaultMaxStepMS)
	viper.SetDefault("generation.seed", 0)

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
