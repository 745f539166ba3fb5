package rank

import (
	"context"
	"sort"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/model"
	"github.com/rushteam/fairrec/pipeline"
	"github.com/rushteam/fairrec/pkg/utils"
)

// ModelNode 是使用 RankModel 的排序 Node：
//   - 写入特征 category_match / popularity
//   - 写入推荐理由（只做解释，不影响分数）
//   - 写入 labels：rank_model
//   - 更新 Score 并按 (Score, ID) 降序排序
type ModelNode struct {
	Model model.RankModel

	// PopularThreshold 热度达到该值时追加 "popular with similar shoppers"，默认 0.8
	PopularThreshold float64
}

// NewBlendNode 返回默认权重（0.7 / 0.3）的排序节点。
func NewBlendNode() *ModelNode {
	return &ModelNode{
		Model:            &model.BlendModel{Alpha: core.DefaultAlpha, Beta: core.DefaultBeta},
		PopularThreshold: core.DefaultPopularThreshold,
	}
}

func (n *ModelNode) Name() string        { return "rank.model" }
func (n *ModelNode) Kind() pipeline.Kind { return pipeline.KindRank }

func (n *ModelNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	items []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.Model == nil || len(items) == 0 {
		return items, nil
	}

	var preferred core.CategorySet
	if rctx != nil {
		preferred = rctx.Preferred
	}
	threshold := n.PopularThreshold
	if threshold <= 0 {
		threshold = core.DefaultPopularThreshold
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		match := 0.0
		if preferred.Has(it.Category()) {
			match = 1.0
		}
		if it.Features == nil {
			it.Features = make(map[string]float64)
		}
		it.Features[model.FeatureCategoryMatch] = match
		it.Features[model.FeaturePopularity] = it.Product.Popularity

		score, err := n.Model.Predict(it.Features)
		if err != nil {
			return nil, err
		}
		it.Score = score
		it.Reasons = Explain(it.Product, match == 1.0, threshold)
		it.PutLabel(utils.LabelRankModel, utils.Label{Value: n.Model.Name(), Source: "rank"})
	}

	SortByScore(items)
	return items, nil
}

// Explain 生成推荐理由：类别命中、热门；都不满足时给出兜底理由。
func Explain(p core.Product, categoryMatch bool, popularThreshold float64) []string {
	reasons := make([]string, 0, 2)
	if categoryMatch {
		reasons = append(reasons, core.ReasonInterest(p.Category))
	}
	if p.Popularity >= popularThreshold {
		reasons = append(reasons, core.ReasonPopular)
	}
	if len(reasons) == 0 {
		reasons = append(reasons, core.ReasonBalanced)
	}
	return reasons
}

// SortByScore 按 (Score, ID) 降序排序；分数相同时 ID 字典序大的在前，与输入顺序无关。
// nil 排在最后。
func SortByScore(items []*core.Candidate) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.ID() > b.ID()
	})
}
