package cmd

import (
	"fmt"
	"os"

	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/db"
	"github.com/nchapman/convosage/internal/ui"
	"github.com/spf13/cobra"
)

var outletsDB string

var outletsCmd = &cobra.Command{
	Use:   "outlets",
	Short: "List outlets in the local database",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("%s Failed to load config: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		path := cfg.Server.DatabasePath
		if outletsDB != "" {
			path = outletsDB
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

		outlets, err := database.AllOutlets(cmd.Context())
		if err != nil {
			fmt.Printf("%s Failed to list outlets: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		if len(outlets) == 0 {
			fmt.Println(ui.Muted("No outlets found. Run 'convosage ingest' or 'convosage serve' to seed the database."))
			return
		}

		table := ui.NewTable().
			AddColumn("ID", 8, ui.AlignLeft).
			AddColumn("Name", 28, ui.AlignLeft).
			AddColumn("City", 16, ui.AlignLeft).
			AddColumn("State", 16, ui.AlignLeft).
			AddColumn("Drive-thru", 10, ui.AlignLeft)

		for _, o := range outlets {
			driveThru := ""
			if o.HasDriveThru {
				driveThru = ui.IconCheck
			}
			table.AddRow(o.OutletID, o.OutletName, o.City, o.State, driveThru)
		}
		table.Footer(fmt.Sprintf("%d outlets", len(outlets)))

		fmt.Print(table.Render())
	},
}

func init() {
	rootCmd.AddCommand(outletsCmd)

	outletsCmd.Flags().StringVar(&outletsDB, "db", "", "Outlet database path")
}
