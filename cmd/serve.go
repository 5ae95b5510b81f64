package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nchapman/convosage/internal/config"
	"github.com/nchapman/convosage/internal/db"
	"github.com/nchapman/convosage/internal/logs"
	"github.com/nchapman/convosage/internal/rag"
	"github.com/nchapman/convosage/internal/server"
	"github.com/nchapman/convosage/internal/ui"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
	serveDB   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chat API server",
	Run: func(cmd *cobra.Command, args []string) {
		logs.InitServerLogger(nil, verbose)

		cfg, err := config.Load()
		if err != nil {
			fmt.Printf("%s Failed to load config: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		if serveHost != "" {
			cfg.Server.Host = serveHost
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if serveDB != "" {
			cfg.Server.DatabasePath = serveDB
		}

		products, err := loadProducts(cfg)
		if err != nil {
			fmt.Printf("%s Failed to load product catalog: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		database, err := openDatabase(cmd.Context(), cfg)
		if err != nil {
			fmt.Printf("%s Failed to open outlet database: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}
		defer database.Close()

		srv := server.New(cfg, products, database)
		if err := srv.Start(); err != nil {
			fmt.Printf("%s Failed to start server: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		fmt.Printf("%s Server started on http://%s\n", ui.Success(ui.IconCheck), srv.Addr())
		fmt.Println()
		fmt.Println("Endpoints:")
		fmt.Println("    • Chat:     /chat")
		fmt.Println("    • Products: /products/search")
		fmt.Println("    • Outlets:  /outlets/search")
		fmt.Println("    • Web UI:   /")

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		<-sigChan

		if err := srv.Stop(); err != nil {
			fmt.Printf("%s Failed to stop server: %v\n", ui.ErrorMsg("Error:"), err)
			os.Exit(1)
		}

		fmt.Println(ui.Muted("\nServer stopped"))
	},
}

// loadProducts builds the product store from the configured catalog path,
// falling back to the embedded catalog.
func loadProducts(cfg *config.Config) (*rag.Store, error) {
	if cfg.Server.ProductsPath != "" {
		return rag.NewStoreFromFile(cfg.Server.ProductsPath)
	}
	return rag.NewStore()
}

// openDatabase opens the outlet database, creating the schema and seeding
// it on first run.
func openDatabase(ctx context.Context, cfg *config.Config) (*db.DB, error) {
	database, err := db.Open(cfg.Server.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := database.InitSchema(ctx); err != nil {
		database.Close()
		return nil, err
	}

	count, err := database.CountOutlets(ctx)
	if err != nil {
		database.Close()
		return nil, err
	}
	if count == 0 {
		n, err := database.IngestSeed(ctx)
		if err != nil {
			database.Close()
			return nil, err
		}
		logs.Info("Seeded outlet database", "outlets", n)
	}

	return database, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Server host")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Server port")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "Outlet database path")
}
