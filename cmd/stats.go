package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nchapman/convosage/internal/chatapi"
	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/ui"
	"github.com/spf13/cobra"
)

var statsServerURL string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show status of a running server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("%s Failed to load config: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		serverURL := cfg.Client.BaseURL
		if statsServerURL != "" {
			serverURL = statsServerURL
		}

		api := chatapi.NewClientFromURL(serverURL)

		health, err := api.Health(cmd.Context())
		if err != nil {
			fmt.Printf("%s Server at %s is not responding: %v\n", ui.ErrorMsg("Error:"), serverURL, err)
			os.Exit(1)
		}

		stats, err := api.Stats(cmd.Context())
		if err != nil {
			fmt.Printf("%s Failed to fetch stats: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		fmt.Printf("%s %s is %s\n\n", ui.Success(ui.IconCheck), ui.Bold(health.AppName), health.Status)

		table := ui.NewTable().
			AddColumn("Field", 18, ui.AlignLeft).
			AddColumn("Value", 30, ui.AlignLeft).
			AddRow("Server", serverURL).
			AddRow("Version", health.Version).
			AddRow("Active sessions", strconv.Itoa(stats.ActiveSessions))

		fmt.Print(table.Render())
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsServerURL, "server", "", "Server URL (default from config)")
}
