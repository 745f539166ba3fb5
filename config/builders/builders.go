package builders

import (
	"fmt"

	"github.com/rushteam/fairrec/catalog"
	"github.com/rushteam/fairrec/config"
	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/filter"
	"github.com/rushteam/fairrec/model"
	"github.com/rushteam/fairrec/pipeline"
	"github.com/rushteam/fairrec/pkg/conv"
	"github.com/rushteam/fairrec/rank"
	"github.com/rushteam/fairrec/recall"
	"github.com/rushteam/fairrec/rerank"
)

func init() {
	config.Register("recall.catalog", BuildCatalogNode)
	config.Register("filter", BuildFilterNode)
	config.Register("rank.blend", BuildBlendNode)
	config.Register("rank.lr", BuildLRNode)
	config.Register("rerank.category_cap", BuildCategoryCapNode)
	config.Register("rerank.topn", BuildTopNNode)
}

// BuildCatalogNode 构建目录召回；配置 file 时从文件加载目录，否则使用请求中的目录。
func BuildCatalogNode(cfg map[string]any) (pipeline.Node, error) {
	path := conv.ConfigGet(cfg, "file", "")
	if path == "" {
		return &recall.CatalogSource{}, nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &recall.CatalogSource{Catalog: c}, nil
}

func BuildFilterNode(cfg map[string]any) (pipeline.Node, error) {
	filtersConfig, ok := cfg["filters"].([]any)
	if !ok {
		return nil, invalid("filters not found or invalid")
	}
	filters := make([]filter.Filter, 0, len(filtersConfig))
	for _, fc := range filtersConfig {
		filterMap, ok := fc.(map[string]any)
		if !ok {
			continue
		}
		filterType := conv.ConfigGet(filterMap, "type", "")
		switch filterType {
		case "category_exclude":
			categories := conv.SliceAnyToString(filterMap["categories"])
			filters = append(filters, &filter.CategoryExcludeFilter{
				Categories: core.NewCategorySet(categories...),
			})
		case "blacklist":
			ids := conv.SliceAnyToString(filterMap["item_ids"])
			if ids == nil {
				ids = []string{}
			}
			// 依赖 Store 的黑名单通过 recommend.WithBlacklist 在代码中装配
			filters = append(filters, filter.NewBlacklistFilter(ids, nil, ""))
		case "expr":
			expr := conv.ConfigGet(filterMap, "expr", "")
			if expr == "" {
				return nil, invalid("expr filter requires expr")
			}
			f, err := filter.NewExprFilter(expr)
			if err != nil {
				return nil, fmt.Errorf("expr filter: %w", err)
			}
			filters = append(filters, f)
		default:
			return nil, invalid(fmt.Sprintf("unknown filter type: %s", filterType))
		}
	}
	return &filter.FilterNode{Filters: filters}, nil
}

func BuildBlendNode(cfg map[string]any) (pipeline.Node, error) {
	m, err := model.NewBlendModel(
		conv.ConfigGetFloat64(cfg, "alpha", core.DefaultAlpha),
		conv.ConfigGetFloat64(cfg, "beta", core.DefaultBeta),
	)
	if err != nil {
		return nil, core.WrapDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput, "rank.blend", err)
	}
	return &rank.ModelNode{
		Model:            m,
		PopularThreshold: conv.ConfigGetFloat64(cfg, "popular_threshold", core.DefaultPopularThreshold),
	}, nil
}

func BuildLRNode(cfg map[string]any) (pipeline.Node, error) {
	weightsMap, ok := cfg["weights"].(map[string]any)
	if !ok {
		return nil, invalid("weights not found")
	}
	weights := make(map[string]float64, len(weightsMap))
	for k, v := range weightsMap {
		f, ok := conv.ToFloat64(v)
		if !ok {
			return nil, invalid(fmt.Sprintf("weight %s is not a number", k))
		}
		weights[k] = f
	}
	return &rank.ModelNode{
		Model:            &model.LRModel{Bias: conv.ConfigGetFloat64(cfg, "bias", 0), Weights: weights},
		PopularThreshold: conv.ConfigGetFloat64(cfg, "popular_threshold", core.DefaultPopularThreshold),
	}, nil
}

func BuildCategoryCapNode(cfg map[string]any) (pipeline.Node, error) {
	limit := conv.ConfigGetInt(cfg, "max_per_category", core.DefaultMaxPerCategory)
	if limit < 1 {
		return nil, invalid(fmt.Sprintf("max_per_category must be >= 1, got %d", limit))
	}
	return &rerank.CategoryCap{MaxPerCategory: limit}, nil
}

func BuildTopNNode(cfg map[string]any) (pipeline.Node, error) {
	return &rerank.TopNNode{N: conv.ConfigGetInt(cfg, "n", 0)}, nil
}

func invalid(msg string) error {
	return core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput, msg)
}
