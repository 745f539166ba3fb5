package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rushteam/fairrec/core"
)

var validate = validator.New()

// Normalize 去掉字段首尾空白，类别转小写，与 prefs.ParseCSV 的归一化保持一致。
func Normalize(p core.Product) core.Product {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Category = strings.ToLower(strings.TrimSpace(p.Category))
	return p
}

// Validate 校验单个商品字段以及整体 ID 唯一性。
func Validate(products []core.Product) error {
	seen := make(map[string]int, len(products))
	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return core.WrapDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: product #%d (%q) invalid", i, p.ID), err)
		}
		if j, ok := seen[p.ID]; ok {
			return core.NewDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput,
				fmt.Sprintf("catalog: duplicate product id %q at #%d and #%d", p.ID, j, i))
		}
		seen[p.ID] = i
	}
	return nil
}

// Build 归一化、校验后构建目录。
func Build(products []core.Product) (*core.Catalog, error) {
	normalized := make([]core.Product, len(products))
	for i, p := range products {
		normalized[i] = Normalize(p)
	}
	if err := Validate(normalized); err != nil {
		return nil, err
	}
	return core.NewCatalog(normalized), nil
}
