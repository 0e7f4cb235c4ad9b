package cmd

import (
	"fmt"
	"strconv"

	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/editor"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <document-id>",
	Short: "Delete a document",
	Long:  `Removes a document with all its pages, scores, and index entries.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid document ID: %s", args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	ed := editor.New(db, cfg)
	if err := ed.DeleteFile(id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	fmt.Printf("Deleted document %d\n", id)
	return nil
}
