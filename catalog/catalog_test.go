package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rushteam/fairrec/core"
	"github.com/rushteam/fairrec/store"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", c.Len())
	}
	if err := Validate(c.Products()); err != nil {
		t.Errorf("default catalog invalid: %v", err)
	}
	p, ok := c.Get("p1")
	if !ok || p.Name != "Noise-Canceling Headphones" || p.Popularity != 0.92 {
		t.Errorf("Get(p1) = %+v, %v", p, ok)
	}
	want := []string{"electronics", "books", "clothing", "home", "toys", "beauty"}
	got := c.Categories()
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefault_Independent(t *testing.T) {
	a := Default()
	products := a.Products()
	products[0].Name = "changed"
	if p, _ := a.Get("p1"); p.Name == "changed" {
		t.Error("mutating Products() copy leaked into catalog")
	}
	if p, _ := Default().Get("p1"); p.Name == "changed" {
		t.Error("catalogs share state")
	}
}

func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		products []core.Product
	}{
		{"duplicate id", []core.Product{
			{ID: "a", Name: "A", Category: "x", Popularity: 0.1},
			{ID: "a", Name: "B", Category: "y", Popularity: 0.2},
		}},
		{"popularity above one", []core.Product{{ID: "a", Name: "A", Category: "x", Popularity: 1.5}}},
		{"negative popularity", []core.Product{{ID: "a", Name: "A", Category: "x", Popularity: -0.1}}},
		{"missing category", []core.Product{{ID: "a", Name: "A", Category: "  ", Popularity: 0.5}}},
		{"missing id", []core.Product{{Name: "A", Category: "x", Popularity: 0.5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.products)
			if !core.IsInvalidInput(err) {
				t.Errorf("Build() error = %v, want INVALID_INPUT", err)
			}
		})
	}
}

func TestBuild_Normalizes(t *testing.T) {
	c, err := Build([]core.Product{{ID: " a ", Name: "A", Category: " Home ", Brand: "B", Popularity: 0.5}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	p, ok := c.Get("a")
	if !ok || p.Category != "home" {
		t.Errorf("Get(a) = %+v, %v, want category home", p, ok)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "catalog.yaml")
	yamlData := `
products:
  - {id: x1, name: Lamp, category: Home, brand: Lumo, popularity: 0.5}
  - {id: x2, name: Kettle, category: home, brand: Boil, popularity: 0.9}
`
	if err := os.WriteFile(yamlPath, []byte(yamlData), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile(yaml) error = %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	jsonPath := filepath.Join(dir, "catalog.json")
	jsonData := `{"products":[{"id":"j1","name":"Mug","category":"home","brand":"Cup","popularity":0.3}]}`
	if err := os.WriteFile(jsonPath, []byte(jsonData), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile(json) error = %v", err)
	}
	if p, ok := c.Get("j1"); !ok || p.Brand != "Cup" {
		t.Errorf("Get(j1) = %+v, %v", p, ok)
	}

	if _, err := LoadFile(filepath.Join(dir, "catalog.txt")); err == nil {
		t.Error("LoadFile(txt) expected error")
	}
}

func TestMarshalYAML_RoundTrip(t *testing.T) {
	data, err := MarshalYAML(Default())
	if err != nil {
		t.Fatalf("MarshalYAML() error = %v", err)
	}
	c, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if c.Len() != 12 {
		t.Errorf("Len() = %d, want 12", c.Len())
	}
}

func TestStoreSnapshot(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	defer s.Close()

	if _, err := LoadFromStore(ctx, s, "catalog:default"); !core.IsStoreNotFound(err) {
		t.Errorf("LoadFromStore(missing) error = %v, want not found", err)
	}

	if err := SaveToStore(ctx, s, "catalog:default", Default()); err != nil {
		t.Fatalf("SaveToStore() error = %v", err)
	}
	c, err := LoadFromStore(ctx, s, "catalog:default")
	if err != nil {
		t.Fatalf("LoadFromStore() error = %v", err)
	}
	want := Default().Products()
	got := c.Products()
	if len(got) != len(want) {
		t.Fatalf("Len() = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("product[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
