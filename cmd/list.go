// cmd/list.go
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/editor"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Long:  `List stored documents, most recently updated first.`,
	RunE:  runList,
}

var listTop int

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listTop, "top", "n", 0, "Number of documents to show (default from config)")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	limit := listTop
	if limit <= 0 {
		limit = cfg.Display.ListLimit
	}

	db, err := database.New(config.DBPath())
	if err != nil {
		return err
	}
	defer db.Close()

	ed := editor.New(db, cfg)
	docs, err := ed.ListFiles(limit)
	if err != nil {
		return err
	}

	if len(docs) == 0 {
		fmt.Println("No documents found. Run 'qalam create' or 'qalam import' to add some.")
		return nil
	}

	// Styles
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	scoreStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dateStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// Header
	fmt.Println(headerStyle.Render(fmt.Sprintf(" %-4s  %-9s  %-5s  %-10s  %s", "#", "RELEVANCE", "PAGES", "UPDATED", "NAME")))
	fmt.Println(strings.Repeat("─", 80))

	for _, d := range docs {
		relevance := "-"
		if d.RelevanceScore != nil {
			relevance = fmt.Sprintf("%.4f", *d.RelevanceScore)
		}

		name := d.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		fmt.Printf(" %s  %s  %5d  %s  %s\n",
			idStyle.Render(fmt.Sprintf("%-4d", d.ID)),
			scoreStyle.Render(fmt.Sprintf("%-9s", relevance)),
			d.PageCount,
			dateStyle.Render(d.UpdatedAt.Format("2006-01-02")),
			name,
		)
	}

	return nil
}
