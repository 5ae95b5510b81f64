package cmd

import (
	"fmt"
	"runtime"

	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/ui"
	"github.com/nchapman/convosage/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show convosage version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.Bold(fmt.Sprintf("ConvoSage %s (%s/%s)", version.Version, runtime.GOOS, runtime.GOARCH)))

		fmt.Println()
		fmt.Println(ui.Bold("Paths:"))
		fmt.Printf("  Config:   %s\n", ui.Muted(config.ConfigPath()))
		fmt.Printf("  Database: %s\n", ui.Muted(config.DefaultDatabasePath()))
		fmt.Printf("  Sessions: %s\n", ui.Muted(config.SessionsPath()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
