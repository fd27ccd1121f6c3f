package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mateusz-blaszkowski/log-tuner/internal/output"
	"github.com/mateusz-blaszkowski/log-tuner/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the available log format profiles",
	Long: `Display the registered log format profiles that can be passed to
'generate --profile'.

Examples:
  log-tuner profiles
  log-tuner profiles --format json`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, args []string) error {
	format := output.ParseFormat(viper.GetString("format"))
	return output.New(cmd.OutOrStdout(), format).WriteProfiles(profile.List())
}
