package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/fairrec/core"
)

type appendNode struct {
	name string
	id   string
}

func (n *appendNode) Name() string { return n.name }
func (n *appendNode) Kind() Kind   { return KindRecall }
func (n *appendNode) Process(_ context.Context, _ *core.RecommendContext, items []*core.Candidate) ([]*core.Candidate, error) {
	return append(items, core.NewCandidate(core.Product{ID: n.id})), nil
}

type failNode struct{}

func (n *failNode) Name() string { return "fail" }
func (n *failNode) Kind() Kind   { return KindFilter }
func (n *failNode) Process(context.Context, *core.RecommendContext, []*core.Candidate) ([]*core.Candidate, error) {
	return nil, errors.New("boom")
}

func TestPipeline_RunOrder(t *testing.T) {
	p := &Pipeline{Name: "test", Nodes: []Node{
		&appendNode{name: "a", id: "p1"},
		&appendNode{name: "b", id: "p2"},
	}}
	out, err := p.Run(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(out) != 2 || out[0].ID() != "p1" || out[1].ID() != "p2" {
		t.Errorf("Run() ids = %v, want [p1 p2]", ids(out))
	}
}

func TestPipeline_RunError(t *testing.T) {
	p := &Pipeline{Nodes: []Node{&appendNode{name: "a", id: "p1"}, &failNode{}}}
	if _, err := p.Run(context.Background(), &core.RecommendContext{}, nil); err == nil {
		t.Fatal("Run() expected error")
	}
}

func TestPipeline_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := &Pipeline{Nodes: []Node{&appendNode{name: "a", id: "p1"}}}
	if _, err := p.Run(ctx, &core.RecommendContext{}, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestConfig_LoadAndBuild(t *testing.T) {
	yamlData := `
pipeline:
  name: demo
  nodes:
    - type: test.append
      config:
        id: p9
    - type: test.append
      config:
        id: p10
`
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromYAML(path)
	if err != nil {
		t.Fatalf("LoadFromYAML() error = %v", err)
	}
	if cfg.Pipeline.Name != "demo" || len(cfg.Pipeline.Nodes) != 2 {
		t.Fatalf("config = %+v", cfg.Pipeline)
	}

	f := NewNodeFactory()
	f.Register("test.append", func(c map[string]any) (Node, error) {
		id, _ := c["id"].(string)
		return &appendNode{name: "append", id: id}, nil
	})
	p, err := cfg.BuildPipeline(f)
	if err != nil {
		t.Fatalf("BuildPipeline() error = %v", err)
	}
	out, err := p.Run(context.Background(), &core.RecommendContext{}, nil)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := ids(out); len(got) != 2 || got[0] != "p9" || got[1] != "p10" {
		t.Errorf("ids = %v, want [p9 p10]", got)
	}
}

func TestConfig_LoadFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.json")
	data := `{"pipeline":{"name":"j","nodes":[{"type":"rank.blend","config":{"alpha":0.5}}]}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromJSON(path)
	if err != nil {
		t.Fatalf("LoadFromJSON() error = %v", err)
	}
	if cfg.Pipeline.Nodes[0].Type != "rank.blend" || cfg.Pipeline.Nodes[0].Config["alpha"] != 0.5 {
		t.Errorf("config = %+v", cfg.Pipeline.Nodes)
	}
}

func TestNodeFactory_Unknown(t *testing.T) {
	_, err := NewNodeFactory().Build("nope", nil)
	if !core.IsInvalidInput(err) {
		t.Errorf("Build(nope) error = %v, want INVALID_INPUT", err)
	}
}

func ids(items []*core.Candidate) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID())
	}
	return out
}
