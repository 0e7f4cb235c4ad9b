package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "qalam",
	Short: "A document store with TF-IDF relevance scoring",
	Long: `Qalam stores paged text documents, tracks their integrity with
content hashes, and ranks them by TF-IDF relevance. The tokenizer
folds case and strips diacritics, so Arabic and accented Latin text
score the same with or without vowel marks.

Workflow: init → create/import → edit → relevance/search`,
}

func init() {
	rootCmd.Version = "0.1.0"
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
