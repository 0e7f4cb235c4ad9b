package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/editor"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new document",
	Long: `Creates a document with the given name. Content comes from the
--content flag, or from stdin when the flag is absent.`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

var createContent string

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "Document content")
}

func runCreate(cmd *cobra.Command, args []string) error {
	content := createContent
	if !cmd.Flags().Changed("content") {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		content = strings.TrimRight(string(data), "\n")
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
	doc, err := ed.CreateFile(args[0], content)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}

	fmt.Printf("Created document %d: %s\n", doc.ID, doc.Name)
	fmt.Printf("  Import hash: %s\n", doc.ImportHash)
	return nil
}
