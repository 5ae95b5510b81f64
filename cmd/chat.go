package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchapman/convosage/internal/chatapi"
	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/tui/chat"
	"github.com/nchapman/convosage/internal/ui"
	"github.com/spf13/cobra"
)

var chatServerURL string

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the interactive chat client",
	Long: `Open a terminal chat session against a running ConvoSage server.
Slash commands like /calc, /products, and /outlets route straight to the
matching tool; everything else goes to the conversational agent.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("%s Failed to load config: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		serverURL := cfg.Client.BaseURL
		if chatServerURL != "" {
			serverURL = chatServerURL
		}

		api := chatapi.NewClientFromURL(serverURL)

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()
		if _, err := api.Health(ctx); err != nil {
			fmt.Printf("%s Cannot reach server at %s: %v\n", ui.ErrorMsg("Error:"), serverURL, err)
			fmt.Println("Start it with 'convosage serve'")
			os.Exit(1)
		}

		model := chat.New(api, serverURL)
		p := tea.NewProgram(model, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			fmt.Printf("%s Chat client failed: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringVar(&chatServerURL, "server", "", "Server URL (default from config)")
}
