package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BlendModel 是类别匹配与热度的线性加权：
//
//	score = Alpha * category_match + Beta * popularity
//
// 默认 Alpha=0.7, Beta=0.3。
type BlendModel struct {
	Alpha float64 `yaml:"alpha" json:"alpha"`
	Beta  float64 `yaml:"beta" json:"beta"`
}

// NewBlendModel 创建线性加权模型，权重不能为负。
func NewBlendModel(alpha, beta float64) (*BlendModel, error) {
	if alpha < 0 || beta < 0 {
		return nil, fmt.Errorf("blend weights must be non-negative, got alpha=%v beta=%v", alpha, beta)
	}
	return &BlendModel{Alpha: alpha, Beta: beta}, nil
}

// LoadBlendModel 从 YAML 文件读取权重。
func LoadBlendModel(path string) (*BlendModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw BlendModel
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse blend model: %w", err)
	}
	return NewBlendModel(raw.Alpha, raw.Beta)
}

func (m *BlendModel) Name() string { return "blend" }

func (m *BlendModel) Predict(features map[string]float64) (float64, error) {
	return m.Score(features[FeatureCategoryMatch], features[FeaturePopularity]), nil
}

// Score 是不经过特征 map 的直接计算。
func (m *BlendModel) Score(categoryMatch, popularity float64) float64 {
	return m.Alpha*categoryMatch + m.Beta*popularity
}
