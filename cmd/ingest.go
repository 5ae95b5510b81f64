package cmd

import (
	"fmt"
	"os"

	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/db"
	"github.com/nchapman/convosage/internal/ui"
	"github.com/spf13/cobra"
)

var ingestDB string

var ingestCmd = &cobra.Command{
	Use:   "ingest <outlets.csv>",
	Short: "Load outlet data from a CSV file",
	Long: `Load outlet records into the database from a CSV file. Existing
outlets with the same outlet_id are updated in place, so re-running an
ingest is safe.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("%s Failed to load config: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		path := cfg.Server.DatabasePath
		if ingestDB != "" {
			path = ingestDB
		}

		database, err := db.Open(path)
		if err != nil {
			fmt.Printf("%s Failed to open database: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}
		defer database.Close()

		if err := database.InitSchema(cmd.Context()); err != nil {
			fmt.Printf("%s Failed to initialize schema: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		count, err := database.IngestFile(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("%s Ingest failed: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		total, err := database.CountOutlets(cmd.Context())
		if err != nil {
			fmt.Printf("%s Failed to count outlets: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		fmt.Printf("%s Ingested %d outlets (%d total)\n", ui.Success(ui.IconCheck), count, total)
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	ingestCmd.Flags().StringVar(&ingestDB, "db", "", "Outlet database path")
}
