// Package config 维护 YAML/JSON 流水线用到的节点类型注册表。
//
// 内置类型由 config/builders 在 init 中注册，入口处需要：
//
//	import _ "github.com/rushteam/fairrec/config/builders"
//
// 注册后可用 DefaultFactory 构建 recall.catalog → filter → rank.blend → rerank.category_cap 这类链路。
package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/pipeline"
)

// NodeBuilder 把一个节点的 config 段转换为 pipeline.Node。
type NodeBuilder = pipeline.NodeBuilder

var registry = struct {
	sync.RWMutex
	builders map[string]NodeBuilder
}{builders: make(map[string]NodeBuilder)}

// Register 登记节点类型。空类型名或 nil builder 会被忽略；同名重复登记以后者为准。
func Register(typeName string, builder NodeBuilder) {
	if typeName == "" || builder == nil {
		return
	}
	registry.Lock()
	registry.builders[typeName] = builder
	registry.Unlock()
}

// SupportedTypes 返回已登记的类型名，按字典序。
func SupportedTypes() []string {
	registry.RLock()
	defer registry.RUnlock()
	return sortedKeys(registry.builders)
}

// DefaultFactory 用当前注册表的快照构建 NodeFactory，之后的 Register 不影响它。
func DefaultFactory() *pipeline.NodeFactory {
	registry.RLock()
	defer registry.RUnlock()
	f := pipeline.NewNodeFactory()
	for typeName, builder := range registry.builders {
		f.Register(typeName, builder)
	}
	return f
}

// ValidatePipelineConfig 在构建前检查节点类型，所有未登记的类型合并到一个 INVALID_INPUT 错误里。
// type 为空的节点留给 NodeFactory 报错。
func ValidatePipelineConfig(cfg *pipeline.Config) error {
	if cfg == nil {
		return nil
	}
	registry.RLock()
	defer registry.RUnlock()

	var unknown []string
	seen := make(map[string]bool)
	for _, nc := range cfg.Pipeline.Nodes {
		if nc.Type == "" || seen[nc.Type] {
			continue
		}
		seen[nc.Type] = true
		if _, ok := registry.builders[nc.Type]; !ok {
			unknown = append(unknown, nc.Type)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	return core.NewDomainError(core.ModulePipeline, core.ErrorCodeInvalidInput,
		fmt.Sprintf("unsupported node types [%s] (supported: %s)",
			strings.Join(unknown, ", "), strings.Join(sortedKeys(registry.builders), ", ")))
}

func sortedKeys(m map[string]NodeBuilder) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
