package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/editor"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <document-id>",
	Short: "Edit a document page",
	Long: `Replaces the content of one page, or appends a new page with
--append. Content comes from the --content flag or from stdin.
The session hash is recomputed; the import hash never changes.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editPage    int
	editContent string
	editAppend  bool
)

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().IntVarP(&editPage, "page", "p", 1, "Page number to edit")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New page content")
	editCmd.Flags().BoolVarP(&editAppend, "append", "a", false, "Append a new page instead of editing")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid document ID: %s", args[0])
	}

	content := editContent
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

	if editAppend {
		pageNo, err := ed.AppendPage(id, content)
		if err != nil {
			return fmt.Errorf("failed to append page: %w", err)
		}
		fmt.Printf("Appended page %d to document %d\n", pageNo, id)
		return nil
	}

	if err := ed.UpdatePage(id, editPage, content); err != nil {
		return fmt.Errorf("failed to edit page: %w", err)
	}
	fmt.Printf("Updated page %d of document %d\n", editPage, id)
	return nil
}
