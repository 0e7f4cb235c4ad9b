package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/editor"
	"github.com/spf13/cobra"
)

var relatedCmd = &cobra.Command{
	Use:   "related <document-id>",
	Short: "Find similar documents",
	Long:  `Lists stored documents most similar to the given one, by TF-IDF cosine similarity.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRelated,
}

var relatedLimit int

func init() {
	rootCmd.AddCommand(relatedCmd)
	relatedCmd.Flags().IntVarP(&relatedLimit, "limit", "l", 10, "Maximum matches to show")
}

func runRelated(cmd *cobra.Command, args []string) error {
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
	related, err := ed.RelatedDocuments(id, relatedLimit)
	if err != nil {
		return fmt.Errorf("failed to find related documents: %w", err)
	}

	if len(related) == 0 {
		fmt.Println("No other documents to compare against.")
		return nil
	}

	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	simStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	fmt.Printf("Documents related to %d:\n\n", id)
	for _, r := range related {
		fmt.Printf("  %s %s %s\n",
			idStyle.Render(fmt.Sprintf("[%d]", r.DocumentID)),
			simStyle.Render(fmt.Sprintf("%.3f", r.Similarity)),
			r.Name,
		)
	}

	return nil
}
