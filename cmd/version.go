package cmd

import (
	"fmt"

	"github.com/mj1618/winlist/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "winlist %s\ncommit: %s\nbuilt: %s\n",
			version.Version, version.Commit, version.BuildDate)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
