package cmd

import (
	"fmt"
	"strconv"

	"github.com/julienpequegnot/qalam/internal/config"
	"github.com/julienpequegnot/qalam/internal/database"
	"github.com/julienpequegnot/qalam/internal/editor"
	"github.com/julienpequegnot/qalam/internal/score"
	"github.com/spf13/cobra"
)

var relevanceCmd = &cobra.Command{
	Use:   "relevance [document-id]",
	Short: "Score document relevance",
	Long: `Scores a document's TF-IDF relevance against the rest of the
library and stores the result. Without an argument, scores every
document that has no score yet.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRelevance,
}

var relevanceLimit int

func init() {
	rootCmd.AddCommand(relevanceCmd)
	relevanceCmd.Flags().IntVarP(&relevanceLimit, "limit", "l", 50, "Maximum documents to score")
}

func runRelevance(cmd *cobra.Command, args []string) error {
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

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document ID: %s", args[0])
		}
		result, err := ed.RankRelevance(id)
		if err != nil {
			return fmt.Errorf("failed to score document %d: %w", id, err)
		}
		fmt.Printf("Document %d relevance: %.4f\n", id, result)
		return nil
	}

	scoreRepo := score.NewRepository(db)
	unscoredIDs, err := scoreRepo.GetUnscoredDocumentIDs(relevanceLimit)
	if err != nil {
		return err
	}

	if len(unscoredIDs) == 0 {
		fmt.Println("No unscored documents found.")
		return nil
	}

	fmt.Printf("Scoring %d documents\n\n", len(unscoredIDs))

	for _, id := range unscoredIDs {
		result, err := ed.RankRelevance(id)
		if err != nil {
			fmt.Printf("Error scoring document %d: %v\n", id, err)
			continue
		}
		fmt.Printf("  Document %d -> %.4f\n", id, result)
	}

	fmt.Println("\nScoring complete")
	return nil
}
