// cmd/show.go
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/document"
	"github.com/julienpequegnot/qalam/internal/editor"
	"github.com/julienpequegnot/qalam/internal/score"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <document-id|name>",
	Short: "Show a document",
	Long:  `Display a document's metadata, hashes, and content.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	// Numeric arguments are IDs, everything else is a name lookup
	doc, content, err := lookupDocument(ed, args[0])
	if err != nil {
		return fmt.Errorf("document not found: %s", args[0])
	}

	// Styles
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	divider := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(strings.Repeat("━", 70))

	fmt.Println(divider)
	fmt.Println(titleStyle.Render(doc.Name))
	fmt.Println(divider)

	fmt.Printf("%s %d\n", labelStyle.Render("ID:"), doc.ID)
	fmt.Printf("%s %d\n", labelStyle.Render("Pages:"), doc.PageCount)
	fmt.Printf("%s %s\n", labelStyle.Render("Created:"), valueStyle.Render(doc.CreatedAt.Format("2006-01-02 15:04")))
	fmt.Printf("%s %s\n", labelStyle.Render("Updated:"), valueStyle.Render(doc.UpdatedAt.Format("2006-01-02 15:04")))
	fmt.Printf("%s %s\n", labelStyle.Render("Import hash:"), valueStyle.Render(doc.ImportHash))
	fmt.Printf("%s %s\n", labelStyle.Render("Session hash:"), valueStyle.Render(doc.SessionHash))

	scoreRepo := score.NewRepository(db)
	if s, err := scoreRepo.Get(doc.ID); err == nil {
		fmt.Printf("%s %.4f (scored %s)\n", labelStyle.Render("Relevance:"),
			s.RelevanceScore, s.ScoredAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if content != "" {
		fmt.Println(labelStyle.Render("CONTENT:"))
		fmt.Println(valueStyle.Render(content))
	}

	return nil
}

func lookupDocument(ed *editor.Editor, arg string) (*document.Document, string, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return ed.Get(id)
	}
	return ed.GetFile(arg)
}
