package model

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLRModel_Predict(t *testing.T) {
	m := &LRModel{Weights: map[string]float64{FeatureCategoryMatch: 2, FeaturePopularity: 1}}

	zero, _ := m.Predict(map[string]float64{})
	if zero != 0.5 {
		t.Errorf("Predict(empty) = %v, want 0.5", zero)
	}

	match, _ := m.Predict(map[string]float64{FeatureCategoryMatch: 1, FeaturePopularity: 0.5})
	noMatch, _ := m.Predict(map[string]float64{FeatureCategoryMatch: 0, FeaturePopularity: 0.9})
	if match <= noMatch {
		t.Errorf("Predict(match) = %v should exceed Predict(no match) = %v", match, noMatch)
	}
	if want := 1 / (1 + math.Exp(-2.5)); math.Abs(match-want) > 1e-12 {
		t.Errorf("Predict(match) = %v, want %v", match, want)
	}
}

func TestLoadLRModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lr.json")
	data := `{"bias": -1, "weights": {"category_match": 3, "popularity": 1}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadLRModel(path)
	if err != nil {
		t.Fatalf("LoadLRModel() error = %v", err)
	}
	if m.Bias != -1 || m.Weights[FeatureCategoryMatch] != 3 {
		t.Errorf("model = %+v", m)
	}
}
