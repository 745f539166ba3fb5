package rank

import (
	"context"
	"math"
	"reflect"
	"testing"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/model"
	"github.com/rushteam/fairrec/pkg/utils"
)

func candidates(products ...core.Product) []*core.Candidate {
	out := make([]*core.Candidate, 0, len(products))
	for _, p := range products {
		out = append(out, core.NewCandidate(p))
	}
	return out
}

func ids(items []*core.Candidate) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID())
	}
	return out
}

func TestModelNode_ScoreAndReasons(t *testing.T) {
	items := candidates(
		core.Product{ID: "p2", Category: "electronics", Popularity: 0.78},
		core.Product{ID: "p1", Category: "electronics", Popularity: 0.92},
		core.Product{ID: "p8", Category: "home", Popularity: 0.88},
		core.Product{ID: "p4", Category: "books", Popularity: 0.65},
	)
	rctx := &core.RecommendContext{Preferred: core.NewCategorySet("electronics")}

	out, err := NewBlendNode().Process(context.Background(), rctx, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if got, want := ids(out), []string{"p1", "p2", "p8", "p4"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}

	wantScores := []float64{0.976, 0.934, 0.264, 0.195}
	for i, w := range wantScores {
		if math.Abs(out[i].Score-w) > 1e-9 {
			t.Errorf("%s score = %v, want %v", out[i].ID(), out[i].Score, w)
		}
	}

	wantReasons := [][]string{
		{"matches your interest in 'electronics'", "popular with similar shoppers"},
		{"matches your interest in 'electronics'"},
		{"popular with similar shoppers"},
		{"balanced relevance and popularity"},
	}
	for i, w := range wantReasons {
		if !reflect.DeepEqual(out[i].Reasons, w) {
			t.Errorf("%s reasons = %v, want %v", out[i].ID(), out[i].Reasons, w)
		}
	}

	if out[0].Features[model.FeatureCategoryMatch] != 1 || out[2].Features[model.FeatureCategoryMatch] != 0 {
		t.Errorf("category_match features = %v / %v", out[0].Features, out[2].Features)
	}
	if lbl := out[0].Labels[utils.LabelRankModel]; lbl.Value != "blend" {
		t.Errorf("rank_model label = %+v", lbl)
	}
}

func TestModelNode_PopularThresholdInclusive(t *testing.T) {
	items := candidates(core.Product{ID: "a", Category: "x", Popularity: 0.8})
	out, err := NewBlendNode().Process(context.Background(), &core.RecommendContext{}, items)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(out[0].Reasons, []string{core.ReasonPopular}) {
		t.Errorf("reasons = %v", out[0].Reasons)
	}
}

func TestSortByScore_TieBreak(t *testing.T) {
	items := candidates(
		core.Product{ID: "p10"},
		core.Product{ID: "p9"},
		core.Product{ID: "p2"},
		core.Product{ID: "p11"},
	)
	items[3].Score = 1
	SortByScore(items)
	// p11 分数最高；其余同分按 ID 字典序降序：p9 > p2 > p10
	if got, want := ids(items), []string{"p11", "p9", "p2", "p10"}; !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortByScore_IndependentOfInputOrder(t *testing.T) {
	a := candidates(core.Product{ID: "b"}, core.Product{ID: "a"}, core.Product{ID: "c"})
	b := candidates(core.Product{ID: "c"}, core.Product{ID: "b"}, core.Product{ID: "a"})
	SortByScore(a)
	SortByScore(b)
	if !reflect.DeepEqual(ids(a), ids(b)) {
		t.Errorf("orders differ: %v vs %v", ids(a), ids(b))
	}
}

func TestModelNode_LR(t *testing.T) {
	n := &ModelNode{Model: &model.LRModel{Weights: map[string]float64{model.FeatureCategoryMatch: 3, model.FeaturePopularity: 1}}}
	items := candidates(
		core.Product{ID: "a", Category: "x", Popularity: 0.9},
		core.Product{ID: "b", Category: "y", Popularity: 0.1},
	)
	out, err := n.Process(context.Background(), &core.RecommendContext{Preferred: core.NewCategorySet("y")}, items)
	if err != nil {
		t.Fatal(err)
	}
	if out[0].ID() != "b" {
		t.Errorf("top = %s, want b", out[0].ID())
	}
	if lbl := out[0].Labels[utils.LabelRankModel]; lbl.Value != "lr" {
		t.Errorf("rank_model label = %+v", lbl)
	}
}
