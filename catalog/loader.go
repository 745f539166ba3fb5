package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/rushteam/fairrec/core"
)

// File 是目录文件的结构（YAML/JSON）。
//
//	products:
//	  - {id: p1, name: Noise-Canceling Headphones, category: electronics, brand: AcoustiCo, popularity: 0.92}
type File struct {
	Products []core.Product `yaml:"products" json:"products"`
}

// LoadFile 按扩展名（.yaml/.yml/.json）加载目录文件。
func LoadFile(path string) (*core.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, core.NewDomainError(core.ModuleCatalog, core.ErrorCodeNotSupported,
			fmt.Sprintf("catalog: unsupported file extension %q", filepath.Ext(path)))
	}
}

func ParseYAML(data []byte) (*core.Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, core.WrapDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "catalog: parse yaml", err)
	}
	return Build(f.Products)
}

func ParseJSON(data []byte) (*core.Catalog, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, core.WrapDomainError(core.ModuleCatalog, core.ErrorCodeInvalidInput, "catalog: parse json", err)
	}
	return Build(f.Products)
}

// MarshalYAML 导出目录，用于 `fairrec catalog export`。
func MarshalYAML(c *core.Catalog) ([]byte, error) {
	return yaml.Marshal(File{Products: c.Products()})
}

// SaveToStore 以 JSON 快照形式写入 store。
func SaveToStore(ctx context.Context, s core.Store, key string, c *core.Catalog) error {
	data, err := json.Marshal(File{Products: c.Products()})
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	return s.Set(ctx, key, data)
}

// LoadFromStore 读取 SaveToStore 写入的快照并校验。
func LoadFromStore(ctx context.Context, s core.Store, key string) (*core.Catalog, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s from %s: %w", key, s.Name(), err)
	}
	return ParseJSON(data)
}
