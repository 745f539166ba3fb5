package recommend

import (
	"context"
	"reflect"
	"testing"

	"github.com/rushteam/fairrec/catalog"
	"github.com/rushteam/fairrec/core"
)

func TestBatch(t *testing.T) {
	engine, err := NewEngine(WithCatalog(catalog.Default()))
	if err != nil {
		t.Fatal(err)
	}

	var reqs []*core.RecommendContext
	for count := core.MinCount; count <= core.MaxCount; count++ {
		reqs = append(reqs, &core.RecommendContext{
			Preferred: core.NewCategorySet("electronics"),
			Excluded:  core.NewCategorySet("toys"),
			Count:     count,
		})
	}

	for _, concurrency := range []int{0, 1, 4} {
		results, err := Batch(context.Background(), engine, reqs, concurrency)
		if err != nil {
			t.Fatalf("Batch(concurrency=%d) error = %v", concurrency, err)
		}
		if len(results) != len(reqs) {
			t.Fatalf("len = %d, want %d", len(results), len(reqs))
		}
		for i, req := range reqs {
			want := Recommend(catalog.Default(), req.Preferred, req.Excluded, req.Count)
			if !reflect.DeepEqual(ids(results[i]), ids(want)) {
				t.Errorf("concurrency=%d results[%d] = %v, want %v", concurrency, i, ids(results[i]), ids(want))
			}
		}
	}
}

func TestBatch_Empty(t *testing.T) {
	engine, _ := NewEngine()
	results, err := Batch(context.Background(), engine, nil, 2)
	if err != nil || len(results) != 0 {
		t.Errorf("Batch(nil) = %v, %v", results, err)
	}
}

func TestBatch_Error(t *testing.T) {
	engine, _ := NewEngine(WithCatalog(catalog.Default()))
	reqs := []*core.RecommendContext{{Count: 1}, nil, {Count: 2}}
	if _, err := Batch(context.Background(), engine, reqs, 2); !core.IsInvalidInput(err) {
		t.Errorf("Batch() = %v, want INVALID_INPUT", err)
	}
}
