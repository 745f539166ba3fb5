package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/prefs"
	"github.com/rushteam/fairrec/recommend"
	"github.com/rushteam/fairrec/report"
)

// batchFile 是批量请求文件。
//
//	requests:
//	  - {interests: "electronics, books", count: 4}
//	  - {exclude: toys}
type batchFile struct {
	Requests []batchRequest `yaml:"requests"`
}

type batchRequest struct {
	Interests string `yaml:"interests"`
	Exclude   string `yaml:"exclude"`
	Count     string `yaml:"count"`
}

func newBatchCmd(a *app) *cobra.Command {
	var concurrency int

	cmd := &cobra.Command{
		Use:   "batch <requests.yaml>",
		Short: "Run many independent recommendation requests concurrently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.settings()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var f batchFile
			if err := yaml.Unmarshal(data, &f); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			reqs := make([]*core.RecommendContext, 0, len(f.Requests))
			for i, r := range f.Requests {
				reqs = append(reqs, &core.RecommendContext{
					RequestID: fmt.Sprintf("batch-%d", i+1),
					Preferred: prefs.ParseCSV(r.Interests),
					Excluded:  prefs.ParseCSV(r.Exclude),
					Count:     prefs.ParseCountOr(r.Count, s.DefaultCount),
				})
			}

			engine, closer, err := buildEngine(s)
			if err != nil {
				return err
			}
			defer closer()

			results, err := recommend.Batch(cmd.Context(), engine, reqs, concurrency)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, recs := range results {
				r := f.Requests[i]
				fmt.Fprintf(out, "\n=== Request %d (interests: %q, exclude: %q) ===\n", i+1, r.Interests, r.Exclude)
				if err := report.WriteRecommendations(out, recs); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "maximum concurrent requests (0 = unlimited)")
	return cmd
}
