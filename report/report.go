// Package report 把推荐结果渲染为控制台文本，并附带类别分布的公平性摘要。
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rushteam/fairrec/core"
)

// CategoryCount 是结果中某个类别的条数。
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts 统计结果的类别分布，按类别名升序。
func CategoryCounts(recs []*core.Candidate) []CategoryCount {
	counts := make(map[string]int)
	for _, it := range recs {
		if it == nil {
			continue
		}
		counts[it.Category()]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// WriteTransparencyNotice 输出推荐策略说明。
func WriteTransparencyNotice(w io.Writer) error {
	_, err := io.WriteString(w, "\nTransparency and fairness policy:\n"+
		"- We recommend based on the categories you provided and product popularity (no personal or sensitive data).\n"+
		"- Scoring: 70% category match + 30% popularity. We cap recommendations to avoid over-concentration in one category.\n"+
		"- We avoid using protected attributes and include variety to reduce filter bubbles. You can exclude categories explicitly.\n")
	return err
}

// WriteRecommendations 输出排名列表与类别分布，例如：
//
//	Recommended products:
//	1. Noise-Canceling Headphones (Category: electronics, Brand: AcoustiCo)
//	   Why: matches your interest in 'electronics'; popular with similar shoppers | Score: 0.98
func WriteRecommendations(w io.Writer, recs []*core.Candidate) error {
	var b strings.Builder
	b.WriteString("\nRecommended products:\n")
	rank := 0
	for _, it := range recs {
		if it == nil {
			continue
		}
		rank++
		fmt.Fprintf(&b, "%d. %s (Category: %s, Brand: %s)\n", rank, it.Product.Name, it.Product.Category, it.Product.Brand)
		fmt.Fprintf(&b, "   Why: %s | Score: %.2f\n", strings.Join(it.Reasons, "; "), it.Score)
	}

	b.WriteString("\nFairness check (category distribution):\n")
	for _, cc := range CategoryCounts(recs) {
		fmt.Fprintf(&b, "- %s: %d\n", cc.Category, cc.Count)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
