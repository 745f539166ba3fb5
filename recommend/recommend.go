// Package recommend 组装完整推荐链路：过滤排除类别、打分写理由、排序、类别多样性重排与截断。
package recommend

import (
	"context"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/filter"
	"github.com/rushteam/fairrec/rank"
	"github.com/rushteam/fairrec/rerank"
)

// Recommend 返回至多 count 个推荐结果，长度为 min(count, 排除后剩余商品数)。
//
//   - 类别在 excluded 中的商品不会出现
//   - score = 0.7 * 类别命中 + 0.3 * 热度，按 (score, id) 降序
//   - 每个类别至多 2 个；不足 count 时从排序结果头部补齐，补齐条目追加 "included for diversity"
//
// count <= 0 时不截断。纯函数，无共享可变状态，可并发调用。
func Recommend(c *core.Catalog, preferred, excluded core.CategorySet, count int) []*core.Candidate {
	survivors := filter.ExcludeCategories(c.Products(), excluded)
	items := make([]*core.Candidate, 0, len(survivors))
	for _, p := range survivors {
		items = append(items, core.NewCandidate(p))
	}

	// 与 Engine 共用同一个排序节点；BlendModel.Predict 不返回错误。
	rctx := &core.RecommendContext{Preferred: preferred, Excluded: excluded}
	ranked, err := rank.NewBlendNode().Process(context.Background(), rctx, items)
	if err != nil {
		return nil
	}
	return rerank.CapByCategory(ranked, count, core.DefaultMaxPerCategory)
}
