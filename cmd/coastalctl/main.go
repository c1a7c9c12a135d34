package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/coastalrealty/coastal-api/internal/config"
	"github.com/coastalrealty/coastal-api/internal/database"
	"github.com/coastalrealty/coastal-api/internal/export"
	"github.com/coastalrealty/coastal-api/internal/repository"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "coastalctl",
		Short: "Coastal Realty operations tool",
	}

	rootCmd.AddCommand(
		migrateCmd(),
		seedCmd(),
		exportLeadsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getDB opens a database connection from the environment configuration.
func getDB(ctx context.Context) (*database.Database, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := getDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db.Gorm); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Println("Schema is up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load demo content into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, err := getDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := database.Migrate(db.Gorm); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			if err := database.Seed(db.Gorm); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			fmt.Println("Demo content loaded")
			return nil
		},
	}
}

func exportLeadsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-leads",
		Short: "Export captured leads to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			ctx := cmd.Context()
			db, err := getDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			leads, err := repository.NewLeadRepository(db).All(ctx)
			if err != nil {
				return fmt.Errorf("failed to load leads: %w", err)
			}

			if err := export.WriteLeadsFile(leads, out); err != nil {
				return err
			}

			fmt.Printf("Wrote %d leads to %s\n", len(leads), out)
			return nil
		},
	}

	cmd.Flags().String("out", "leads.xlsx", "Output file path")

	return cmd
}
