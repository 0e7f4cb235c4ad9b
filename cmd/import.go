package cmd

import (
	"fmt"

	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/editor"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <path>...",
	Short: "Import files as documents",
	Long: `Reads files from disk and stores them as documents. Supported
extensions are set in config (txt, md, and html by default); HTML
files are reduced to their text content. The import hash records
the content exactly as it came off disk.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
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

	imported := 0
	for _, path := range args {
		doc, err := ed.ImportFile(path)
		if err != nil {
			fmt.Printf("Error importing %s: %v\n", path, err)
			continue
		}
		fmt.Printf("Imported %s as document %d (%s)\n", path, doc.ID, doc.ImportHash)
		imported++
	}

	fmt.Printf("\nImported %d of %d files\n", imported, len(args))
	return nil
}
