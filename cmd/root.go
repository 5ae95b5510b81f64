package cmd

import (
	"fmt"
	"os"

	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/logs"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "convosage",
	Short: "Retail chatbot with calculator, product search, and outlet lookup tools",
	Long: `ConvoSage is a chat service for a coffee retailer. It answers
questions about drinkware products, finds outlet locations, evaluates
calculations, and remembers details across a conversation.

Run 'convosage serve' to start the API server, then 'convosage chat'
for the terminal client or open the bundled web page.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logs.InitLogger(nil, verbose)
		if err := config.EnsureDirectories(); err != nil {
			fmt.Printf("Error: Failed to create directories: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
