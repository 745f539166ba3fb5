package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/prefs"
	"github.com/rushteam/fairrec/report"
)

func newRecommendCmd(a *app) *cobra.Command {
	var (
		interests string
		exclude   string
		count     string
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend products from your interests and exclusions",
		Long: `Prompts for interests, exclusions and the number of results, then prints ranked
recommendations with the reasons behind each one and a category distribution summary.
Any of --interests, --exclude or --count skips the prompts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			p := newPrompter(cmd.InOrStdin(), out)

			if err := report.WriteTransparencyNotice(out); err != nil {
				return err
			}

			flagsGiven := cmd.Flags().Changed("interests") || cmd.Flags().Changed("exclude") || cmd.Flags().Changed("count")
			if !flagsGiven {
				fmt.Fprintln(out, "We only use the inputs you provide here (interests and exclusions). No personal data is stored.")
				if interests, err = p.ask("Enter a few categories you like (comma-separated, e.g., electronics, books), or leave blank: "); err != nil {
					return err
				}
				if exclude, err = p.ask("Optionally enter categories to exclude (comma-separated), or leave blank: "); err != nil {
					return err
				}
				if count, err = p.ask("How many recommendations would you like? (default " + strconv.Itoa(s.DefaultCount) + "): "); err != nil {
					return err
				}
			}

			if !yes {
				answer, err := p.ask("Proceed with these inputs? (y/n): ")
				if err != nil {
					return err
				}
				if !prefs.Confirmed(answer) {
					fmt.Fprintln(out, "No recommendations generated.")
					return nil
				}
			}

			engine, closer, err := buildEngine(s)
			if err != nil {
				return err
			}
			defer closer()

			recs, err := engine.Recommend(cmd.Context(), &core.RecommendContext{
				Preferred: prefs.ParseCSV(interests),
				Excluded:  prefs.ParseCSV(exclude),
				Count:     prefs.ParseCountOr(count, s.DefaultCount),
			})
			if err != nil {
				return err
			}
			if err := report.WriteRecommendations(out, recs); err != nil {
				return err
			}
			fmt.Fprintln(out, "\nNote: You can re-run and adjust interests or exclusions to influence results.")
			return nil
		},
	}

	cmd.Flags().StringVar(&interests, "interests", "", "comma-separated categories you like")
	cmd.Flags().StringVar(&exclude, "exclude", "", "comma-separated categories to exclude")
	cmd.Flags().StringVar(&count, "count", "", "number of recommendations (1-12)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
