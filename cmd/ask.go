package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/nchapman/convosage/internal/chatapi"
	"github.com/nchapman/convosage/internal/command"
	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/ui"
	"github.com/spf13/cobra"
)

var (
	askServerURL string
	askSessionID string
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Send a single message and print the reply",
	Long: `Send one message to a running ConvoSage server and print the
reply. Slash commands are translated the same way the chat client does,
so 'convosage ask "/calc 5 + 3"' works. Pass --session to continue an
existing conversation.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("%s Failed to load config: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		serverURL := cfg.Client.BaseURL
		if askServerURL != "" {
			serverURL = askServerURL
		}

		message := strings.Join(args, " ")

		// Translate slash commands into backend messages
		if parsed := command.Parse(message); parsed != nil {
			switch command.ActionFor(parsed.Command) {
			case command.ActionLocal:
				fmt.Println(command.HelpText())
				return
			case command.ActionClear:
				fmt.Println(ui.Muted("Nothing to clear in one-shot mode"))
				return
			case command.ActionSend:
				if text, ok := command.Translate(parsed.Command, parsed.Args); ok {
					if text == command.CalcPrompt {
						fmt.Println(text)
						return
					}
					message = text
				}
			default:
				fmt.Printf("%s Unknown command: /%s\n", ui.ErrorMsg("Error:"), parsed.Command)
				os.Exit(1)
			}
		}

		api := chatapi.NewClientFromURL(serverURL)

		resp, err := api.SendMessage(cmd.Context(), message, askSessionID)
		if err != nil {
			fmt.Printf("%s %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		if badge, ok := command.BadgeFor(command.DetectTool(resp.Response)); ok {
			fmt.Println(ui.Keyword(badge.Icon + " " + badge.Label))
		}
		fmt.Println(resp.Response)
		fmt.Println()
		fmt.Println(ui.Muted("Session: " + resp.SessionID))
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().StringVar(&askServerURL, "server", "", "Server URL (default from config)")
	askCmd.Flags().StringVar(&askSessionID, "session", "", "Session ID to continue")
}
