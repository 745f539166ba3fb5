package model

import (
	"math"
	"os"

	"github.com/goccy/go-json"
)

// LRModel 是逻辑回归：P = sigmoid(Bias + sum(Weight_i * Feature_i))。
// 输出范围 (0, 1)，对同一组权重是线性加权的单调变换，可作为 BlendModel 的替换。
type LRModel struct {
	Bias    float64            `json:"bias"`
	Weights map[string]float64 `json:"weights"`
}

// LoadLRModel 从 JSON 文件读取 {"bias": .., "weights": {..}}。
func LoadLRModel(path string) (*LRModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m LRModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *LRModel) Name() string { return "lr" }

func (m *LRModel) Predict(features map[string]float64) (float64, error) {
	score := m.Bias
	for k, v := range features {
		if w, ok := m.Weights[k]; ok {
			score += w * v
		}
	}
	return 1 / (1 + math.Exp(-score)), nil
}
