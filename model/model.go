package model

// RankModel 是排序阶段的最小抽象：输入特征，输出一个可比较的分数。
type RankModel interface {
	Name() string
	Predict(features map[string]float64) (float64, error)
}

// 排序特征名。
const (
	FeatureCategoryMatch = "category_match" // 1.0 命中偏好类别，否则 0.0
	FeaturePopularity    = "popularity"
)
