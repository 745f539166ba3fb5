package core

// Product 是目录中的一条商品记录，构建后只读。
// Popularity 取值 [0, 1]，是评分/销量强度的静态代理。
type Product struct {
	ID         string  `json:"id" yaml:"id" validate:"required"`
	Name       string  `json:"name" yaml:"name" validate:"required"`
	Category   string  `json:"category" yaml:"category" validate:"required"`
	Brand      string  `json:"brand" yaml:"brand"`
	Popularity float64 `json:"popularity" yaml:"popularity" validate:"gte=0,lte=1"`
}

// Catalog 是有序、只读的商品目录。
// 目录在启动时构建一次，之后作为显式参数传给推荐链路，不存在进程级单例。
type Catalog struct {
	products []Product
	index    map[string]int
}

// NewCatalog 按给定顺序构建目录，products 会被复制。
// 校验（ID 唯一、Popularity 范围）由 catalog 包负责。
func NewCatalog(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		index:    make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		if _, ok := c.index[p.ID]; !ok {
			c.index[p.ID] = i
		}
	}
	return c
}

// Len 返回商品数量；nil 目录视为空。
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.products)
}

// Products 返回商品副本，调用方修改不会影响目录。
func (c *Catalog) Products() []Product {
	if c == nil {
		return nil
	}
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get 按 ID 查找商品。
func (c *Catalog) Get(id string) (Product, bool) {
	if c == nil {
		return Product{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Categories 返回目录中出现过的类别，按首次出现顺序。
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	seen := make(map[string]bool, len(c.products))
	out := make([]string, 0, len(c.products))
	for _, p := range c.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, p.Category)
	}
	return out
}
