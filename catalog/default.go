// Package catalog 负责构建、校验、加载只读商品目录。
package catalog

import "github.com/rushteam/fairrec/core"

// defaultProducts 是内置的演示目录。
var defaultProducts = []core.Product{
	{ID: "p1", Name: "Noise-Canceling Headphones", Category: "electronics", Brand: "AcoustiCo", Popularity: 0.92},
	{ID: "p2", Name: "Wireless Mouse", Category: "electronics", Brand: "ClickRight", Popularity: 0.78},
	{ID: "p3", Name: "Python for Everyone", Category: "books", Brand: "Bookify", Popularity: 0.85},
	{ID: "p4", Name: "Mystery Novel", Category: "books", Brand: "PageTurner", Popularity: 0.65},
	{ID: "p5", Name: "Cotton T-Shirt", Category: "clothing", Brand: "ComfyWear", Popularity: 0.74},
	{ID: "p6", Name: "Running Shoes", Category: "clothing", Brand: "FleetFeet", Popularity: 0.81},
	{ID: "p7", Name: "Blender 600W", Category: "home", Brand: "HomeEase", Popularity: 0.68},
	{ID: "p8", Name: "Ceramic Cookware Set", Category: "home", Brand: "KitchenPro", Popularity: 0.88},
	{ID: "p9", Name: "STEM Building Kit", Category: "toys", Brand: "EduPlay", Popularity: 0.79},
	{ID: "p10", Name: "Board Game Classic", Category: "toys", Brand: "FunBox", Popularity: 0.72},
	{ID: "p11", Name: "Hydrating Face Serum", Category: "beauty", Brand: "GlowLab", Popularity: 0.83},
	{ID: "p12", Name: "Sunscreen SPF50", Category: "beauty", Brand: "SunSafe", Popularity: 0.76},
}

// Default 返回内置目录。每次调用构建新的 Catalog，调用方之间不共享状态。
func Default() *core.Catalog {
	return core.NewCatalog(defaultProducts)
}
