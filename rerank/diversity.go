package rerank

import (
	"context"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pipeline"
	"github.com/rushteam/fairrec/pkg/utils"
)

// CategoryCap 是多样性 ReRank：在已排序的候选上限制每个类别的条数，并截断到请求数量。
//
// 两轮选择：
//  1. 主选：按排序顺序贪心接收，类别已满 MaxPerCategory 的跳过，满 N 即停；
//  2. 补齐：主选不足 N 时从头再扫一遍，跳过已选 ID，忽略类别上限追加，
//     补齐条目追加理由 "included for diversity"，直到满 N 或候选耗尽。
//
// N 取 rctx.Count；Count <= 0 时不截断。
type CategoryCap struct {
	MaxPerCategory int // 默认 2
}

func (n *CategoryCap) Name() string {
	return "rerank.category_cap"
}

func (n *CategoryCap) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *CategoryCap) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Candidate,
) ([]*core.Candidate, error) {
	count := 0
	if rctx != nil {
		count = rctx.Count
	}
	return CapByCategory(items, count, n.MaxPerCategory), nil
}

// CapByCategory 对已排序的 ranked 执行多样性上限与补齐，返回长度 min(n, len(ranked)) 的新切片。
// n <= 0 表示不截断；maxPerCategory <= 0 时使用默认值 2。
// 主选条目直接复用并写入 category_cap label；补齐条目是副本，不改动 ranked 中的理由。
func CapByCategory(ranked []*core.Candidate, n, maxPerCategory int) []*core.Candidate {
	if maxPerCategory <= 0 {
		maxPerCategory = core.DefaultMaxPerCategory
	}
	live := make([]*core.Candidate, 0, len(ranked))
	for _, it := range ranked {
		if it != nil {
			live = append(live, it)
		}
	}
	if n <= 0 || n > len(live) {
		n = len(live)
	}

	out := make([]*core.Candidate, 0, n)
	perCategory := make(map[string]int, 8)
	selected := make(map[string]bool, n)

	for _, it := range live {
		if len(out) >= n {
			break
		}
		if perCategory[it.Category()] >= maxPerCategory {
			continue
		}
		perCategory[it.Category()]++
		selected[it.ID()] = true
		it.PutLabel(utils.LabelCategoryCap, utils.Label{Value: "primary", Source: "rerank"})
		out = append(out, it)
	}

	for _, it := range live {
		if len(out) >= n {
			break
		}
		if selected[it.ID()] {
			continue
		}
		filled := it.Clone()
		filled.AddReason(core.ReasonDiversity)
		filled.PutLabel(utils.LabelCategoryCap, utils.Label{Value: "backfill", Source: "rerank"})
		selected[it.ID()] = true
		out = append(out, filled)
	}

	return out
}

// Backfilled 统计放宽类别上限补齐进来的条目数。
func Backfilled(items []*core.Candidate) int {
	n := 0
	for _, it := range items {
		if it == nil {
			continue
		}
		if lbl, ok := it.Labels[utils.LabelCategoryCap]; ok && lbl.Value == "backfill" {
			n++
		}
	}
	return n
}
