package conv

import (
	"reflect"
	"testing"
)

func TestConfigGetNumbers(t *testing.T) {
	cfg := map[string]any{
		"alpha":            1,
		"beta":             0.3,
		"max_per_category": float64(3),
		"name":             "x",
	}

	if got := ConfigGetFloat64(cfg, "alpha", 0); got != 1.0 {
		t.Errorf("ConfigGetFloat64(alpha) = %v, want 1", got)
	}
	if got := ConfigGetFloat64(cfg, "beta", 0); got != 0.3 {
		t.Errorf("ConfigGetFloat64(beta) = %v, want 0.3", got)
	}
	if got := ConfigGetFloat64(cfg, "missing", 0.7); got != 0.7 {
		t.Errorf("ConfigGetFloat64(missing) = %v, want 0.7", got)
	}
	if got := ConfigGetInt(cfg, "max_per_category", 2); got != 3 {
		t.Errorf("ConfigGetInt(max_per_category) = %v, want 3", got)
	}
	if got := ConfigGetInt(cfg, "name", 2); got != 2 {
		t.Errorf("ConfigGetInt(name) = %v, want 2", got)
	}
	if got := ConfigGet(cfg, "name", ""); got != "x" {
		t.Errorf("ConfigGet(name) = %q, want %q", got, "x")
	}
}

func TestSliceAnyToString(t *testing.T) {
	got := SliceAnyToString([]any{"p1", 12, 3.0, true})
	want := []string{"p1", "12", "3", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SliceAnyToString() = %v, want %v", got, want)
	}
	if SliceAnyToString("p1") != nil {
		t.Error("SliceAnyToString(non-slice) should be nil")
	}
}
