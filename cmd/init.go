package cmd

import (
	"fmt"
	"os"

	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize qalam configuration and database",
	Long:  `Creates the ~/.qalam directory with config.yaml and SQLite database.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.Dir()

	// Create directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Create config
	cfg := config.Default()
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("Created config at %s/config.yaml\n", dir)

	// Create database
	db, err := database.New(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	db.Close()
	fmt.Printf("Created database at %s/qalam.db\n", dir)

	fmt.Println("\nQalam initialized! Next steps:")
	fmt.Println("  qalam create <name>       Create a new document")
	fmt.Println("  qalam import <path>       Import a text file")

	return nil
}
