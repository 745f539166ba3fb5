package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rushteam/fairrec/intake"
)

// run 执行一次命令，使用空配置文件隔离本机的 .fairrec.yaml。
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "fairrec.yaml")
	if err := os.WriteFile(cfg, []byte("log-level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return runWithConfig(t, cfg, stdin, args...)
}

func runWithConfig(t *testing.T, cfg, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", cfg}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRecommend_Flags(t *testing.T) {
	out, err := run(t, "", "recommend", "--interests", "Electronics", "--count", "3", "--yes")
	if err != nil {
		t.Fatalf("recommend error = %v", err)
	}
	for _, want := range []string{
		"Transparency and fairness policy:",
		"1. Noise-Canceling Headphones (Category: electronics, Brand: AcoustiCo)",
		"   Why: matches your interest in 'electronics'; popular with similar shoppers | Score: 0.98",
		"3. Ceramic Cookware Set (Category: home, Brand: KitchenPro)",
		"- electronics: 2",
		"- home: 1",
		"Note: You can re-run",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
	if strings.Contains(out, "4. ") {
		t.Errorf("more than 3 results\n%s", out)
	}
}

func TestRecommend_Interactive(t *testing.T) {
	out, err := run(t, "books, toys\nbeauty\n2\nyes\n", "recommend")
	if err != nil {
		t.Fatalf("recommend error = %v", err)
	}
	for _, want := range []string{
		"No personal data is stored.",
		"Proceed with these inputs? (y/n): ",
		"1. Python for Everyone",
		"2. STEM Building Kit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestRecommend_Declined(t *testing.T) {
	out, err := run(t, "\n\n\nn\n", "recommend")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No recommendations generated.") {
		t.Errorf("output = %s", out)
	}
	if strings.Contains(out, "Recommended products:") {
		t.Errorf("recommendations printed after decline")
	}
}

func TestRecommend_Filter(t *testing.T) {
	out, err := run(t, "", "recommend", "--count", "1", "--yes", "--filter", `item.id == "p1"`)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1. Ceramic Cookware Set") {
		t.Errorf("output = %s", out)
	}
}

func TestSettings_FromConfigFileAndEnv(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "fairrec.yaml")
	if err := os.WriteFile(cfg, []byte("log-level: error\nmax-per-category: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FAIRREC_DEFAULT_COUNT", "2")

	out, err := runWithConfig(t, cfg, "", "recommend", "--interests", "electronics", "--yes")
	if err != nil {
		t.Fatal(err)
	}
	// 每类 1 个、默认 2 条：p1 与 p8
	if !strings.Contains(out, "2. Ceramic Cookware Set") || strings.Contains(out, "3. ") {
		t.Errorf("output = %s", out)
	}
}

func TestSettings_Invalid(t *testing.T) {
	tests := [][]string{
		{"recommend", "--yes", "--max-per-category", "0"},
		{"recommend", "--yes", "--default-count", "13"},
		{"recommend", "--yes", "--log-format", "xml"},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, err := run(t, "", args...); err == nil {
				t.Error("expected settings error")
			}
		})
	}
}

func TestSentiment(t *testing.T) {
	out, err := run(t, "", "sentiment", "I", "loved", "it,", "the", "best!")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "The review is Positive." {
		t.Errorf("output = %q", out)
	}

	out, err = run(t, "nothing to see\n", "sentiment")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "The review is Negative.") {
		t.Errorf("output = %q", out)
	}
}

func TestIntake(t *testing.T) {
	dir := t.TempDir()
	stdin := "\nAda Lovelace\nold\n200\n36\nada\nada@example.com\n\ns3cret\n"
	out, err := run(t, stdin, "intake", "--dir", dir, "--file", "ada.txt")
	if err != nil {
		t.Fatalf("intake error = %v\n%s", err, out)
	}
	for _, want := range []string{
		"Value cannot be empty. Please try again.",
		"Please enter a valid age between 0 and 150.",
		"Please enter a valid email address (e.g., name@example.com).",
		"Saved student details to: " + filepath.Join(dir, "ada.txt"),
		"Saved encrypted student details to: " + filepath.Join(dir, "ada_encrypted.txt"),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	envelope, err := os.ReadFile(filepath.Join(dir, "ada_encrypted.txt"))
	if err != nil {
		t.Fatal(err)
	}
	plaintext, err := intake.Decrypt(string(envelope), "s3cret")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(plaintext), "Age:   36\n") {
		t.Errorf("plaintext = %q", plaintext)
	}

	out, err = run(t, "s3cret\n", "intake", "decrypt", filepath.Join(dir, "ada_encrypted.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "Student Details\n") {
		t.Errorf("decrypt output = %q", out)
	}
}

func TestIntake_EOF(t *testing.T) {
	if _, err := run(t, "Ada\n", "intake", "--dir", t.TempDir()); err == nil {
		t.Error("expected error when input ends early")
	}
}

func TestCatalogExport(t *testing.T) {
	out, err := run(t, "", "catalog", "export")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "id: p12") || !strings.Contains(out, "name: Sunscreen SPF50") {
		t.Errorf("export = %s", out)
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if _, err := run(t, "", "catalog", "export", "-o", path); err != nil {
		t.Fatal(err)
	}
	out, err = run(t, "", "recommend", "--catalog", path, "--count", "1", "--yes")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1. Noise-Canceling Headphones") {
		t.Errorf("output = %s", out)
	}
}

func TestCatalogPush_RequiresStore(t *testing.T) {
	if _, err := run(t, "", "catalog", "push"); err == nil {
		t.Error("expected error without --redis-addr")
	}
}

func TestBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.yaml")
	data := "requests:\n  - {interests: electronics, count: 2}\n  - {exclude: \"electronics, home\", count: 1}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "batch", path, "--concurrency", "2")
	if err != nil {
		t.Fatal(err)
	}
	first := strings.Index(out, "=== Request 1")
	second := strings.Index(out, "=== Request 2")
	if first < 0 || second < first {
		t.Fatalf("output = %s", out)
	}
	if !strings.Contains(out[first:second], "2. Wireless Mouse") {
		t.Errorf("request 1 = %s", out[first:second])
	}
	if !strings.Contains(out[second:], "1. Python for Everyone") {
		t.Errorf("request 2 = %s", out[second:])
	}
}

func TestPipelineFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	data := `
pipeline:
  name: popular-only
  nodes:
    - type: recall.catalog
    - type: filter
      config:
        filters:
          - type: category_exclude
          - type: expr
            expr: item.popularity < 0.85
    - type: rank.blend
    - type: rerank.category_cap
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "", "recommend", "--pipeline", path, "--count", "12", "--yes")
	if err != nil {
		t.Fatal(err)
	}
	// 热度 >= 0.85：p1 0.92、p8 0.88、p3 0.85
	if !strings.Contains(out, "3. Python for Everyone") || strings.Contains(out, "4. ") {
		t.Errorf("output = %s", out)
	}
}
