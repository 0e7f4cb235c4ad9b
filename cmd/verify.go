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

var verifyCmd = &cobra.Command{
	Use:   "verify [document-id]",
	Short: "Verify document integrity",
	Long: `Recomputes content digests and checks them against the stored
import and session hashes. Without an argument, verifies every
document in the store.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
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

	var ids []int64
	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid document ID: %s", args[0])
		}
		ids = []int64{id}
	} else {
		docs, err := ed.ListFiles(1 << 30)
		if err != nil {
			return err
		}
		for _, d := range docs {
			ids = append(ids, d.ID)
		}
	}

	if len(ids) == 0 {
		fmt.Println("No documents to verify.")
		return nil
	}

	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	failures := 0
	for _, id := range ids {
		report, err := ed.VerifyIntegrity(id)
		if err != nil {
			return fmt.Errorf("failed to verify document %d: %w", id, err)
		}

		status := okStyle.Render("OK")
		if !report.Valid || !report.WellFormed {
			status = badStyle.Render("CORRUPT")
			failures++
		}

		note := ""
		if report.Edited {
			note = noteStyle.Render(" (edited since import)")
		}

		fmt.Printf("  [%d] %s %s%s\n", report.DocumentID, report.Name, status, note)
		if !report.Valid {
			fmt.Printf("      stored:   %s\n", report.SessionHash)
			fmt.Printf("      computed: %s\n", report.Computed)
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d documents failed verification", failures, len(ids))
	}
	fmt.Printf("\nVerified %d documents\n", len(ids))
	return nil
}
