package core

import "github.com/rushteam/fairrec/pkg/utils"

// Candidate 是推荐链路中的统一承载结构：商品、分数、推荐理由、特征、标签。
// Reasons 有序，仅用于解释，不参与排序；Labels 记录节点来源，用于观测与策略驱动。
type Candidate struct {
	Product  Product
	Score    float64
	Reasons  []string
	Features map[string]float64
	Labels   map[string]utils.Label
}

func NewCandidate(p Product) *Candidate {
	return &Candidate{
		Product:  p,
		Features: make(map[string]float64),
		Labels:   make(map[string]utils.Label),
	}
}

// ID 是 Product.ID 的简写。
func (c *Candidate) ID() string { return c.Product.ID }

// Category 是 Product.Category 的简写。
func (c *Candidate) Category() string { return c.Product.Category }

// AddReason 追加一条推荐理由。
func (c *Candidate) AddReason(reason string) {
	c.Reasons = append(c.Reasons, reason)
}

// HasReason 判断是否包含指定理由。
func (c *Candidate) HasReason(reason string) bool {
	for _, r := range c.Reasons {
		if r == reason {
			return true
		}
	}
	return false
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// Clone 深拷贝候选，用于在不共享可变状态的前提下派生新结果。
func (c *Candidate) Clone() *Candidate {
	out := &Candidate{
		Product:  c.Product,
		Score:    c.Score,
		Reasons:  append([]string(nil), c.Reasons...),
		Features: make(map[string]float64, len(c.Features)),
		Labels:   make(map[string]utils.Label, len(c.Labels)),
	}
	for k, v := range c.Features {
		out.Features[k] = v
	}
	for k, v := range c.Labels {
		out.Labels[k] = v
	}
	return out
}
