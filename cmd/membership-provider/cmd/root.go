package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"opencsg.com/github-team-membership/cmd/membership-provider/cmd/invoke"
	"opencsg.com/github-team-membership/cmd/membership-provider/cmd/start"
	"opencsg.com/github-team-membership/cmd/membership-provider/cmd/version"
	"opencsg.com/github-team-membership/common/config"
	"opencsg.com/github-team-membership/common/log"
)

var (
	logLevel   string
	logFormat  string
	configFile string
)

var RootCmd = &cobra.Command{
	Use:          "membership-provider",
	Short:        "Lifecycle provider for GitHub team memberships.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "set log level to debug, info, warn or error (case-insensitive). default is INFO")
	RootCmd.PersistentFlags().StringVarP(&logFormat, "log-format", "f", "json", "set log format to json or text. default is json")
	RootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path of an optional toml config file, environment variables take precedence")
	RootCmd.DisableAutoGenTag = true

	cobra.OnInitialize(func() {
		// logs go to stderr, stdout is reserved for invoke results
		log.Setup(os.Stderr, logLevel, logFormat)
		config.SetConfigFile(configFile)
	})

	RootCmd.AddCommand(
		start.Cmd,
		invoke.Cmd,
		version.Cmd,
	)
}
