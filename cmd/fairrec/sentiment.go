package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rushteam/fairrec/sentiment"
)

func newSentimentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sentiment [review...]",
		Short: "Classify a review as Positive or Negative",
		Long: `Counts distinct positive and negative cue words in the review. Ties resolve to
Positive; a review with no cues is Negative. Prompts for the review when none is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				var err error
				text, err = newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).ask("Type your review and press Enter: ")
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), sentiment.Classify(text).Sentence())
			return nil
		},
	}
}
