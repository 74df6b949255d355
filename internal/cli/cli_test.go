package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/javelin-build/javelin/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCommand("test")
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestInitCreatesConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Created "+config.FileName) {
		t.Errorf("output = %q", out)
	}

	cfg := config.Load(".")
	if cfg.OutDir != "./out" || cfg.CacheFile != "./javelin-cache.json" {
		t.Errorf("generated config loads as %+v", cfg)
	}
}

func TestInitRefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := execute(t, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := execute(t, "init"); err == nil {
		t.Fatal("second init succeeded without --force")
	}
	if _, err := execute(t, "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}
}

func TestCleanNothingToDo(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := execute(t, "clean")
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !strings.Contains(out, "Nothing to clean") {
		t.Errorf("output = %q", out)
	}
}

func TestCleanRemovesArtifacts(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll("out", 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("out/Main.class", []byte("bytecode"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("javelin-cache.json", []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "clean")
	if err != nil {
		t.Fatalf("clean: %v", err)
	}
	if !strings.Contains(out, "Cleaned build artifacts") {
		t.Errorf("output = %q", out)
	}
	if _, err := os.Stat("out"); !os.IsNotExist(err) {
		t.Error("output directory survived clean")
	}
	if _, err := os.Stat("javelin-cache.json"); !os.IsNotExist(err) {
		t.Error("cache file survived clean")
	}
}

func TestTreeOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile("Main.java", []byte(`/*
 * using "Helper.java"
 */
public class Main {}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("Helper.java", []byte(`public class Helper {}`), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "tree", "Main.java")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.Contains(out, "Main.java") || !strings.Contains(out, "Helper.java") {
		t.Errorf("tree output = %q", out)
	}
}

func TestTreeSharedDepShownOnce(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile("Main.java", []byte(`/*
 * using "A.java"
 * using "B.java"
 */
public class Main {}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("A.java", []byte(`/*
 * using "B.java"
 */
public class A {}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile("B.java", []byte(`public class B {}`), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "tree", "Main.java")
	if err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.Contains(out, "(already shown)") {
		t.Errorf("shared dependency not collapsed: %q", out)
	}
}

func TestDocsLookup(t *testing.T) {
	out, err := execute(t, "docs", "String")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(out, "java.lang") || !strings.Contains(out, "String") {
		t.Errorf("docs output = %q", out)
	}
	if !strings.Contains(out, "substring") {
		t.Errorf("docs output missing methods: %q", out)
	}
}

func TestDocsMethodFilter(t *testing.T) {
	out, err := execute(t, "docs", "String", "substring")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(out, "substring") {
		t.Errorf("docs output = %q", out)
	}
	if strings.Contains(out, "charAt") {
		t.Errorf("filter leaked unrelated methods: %q", out)
	}
}

func TestDocsSuggestsPartialMatches(t *testing.T) {
	out, err := execute(t, "docs", "Str")
	if err != nil {
		t.Fatalf("docs: %v", err)
	}
	if !strings.Contains(out, "Did you mean") || !strings.Contains(out, "java.lang.String") {
		t.Errorf("docs output = %q", out)
	}
}

func TestDocsUnknownClass(t *testing.T) {
	_, err := execute(t, "docs", "Zxqw")
	if err == nil {
		t.Fatal("unknown class did not error")
	}
}

func TestBuildViaCLI(t *testing.T) {
	t.Chdir(t.TempDir())

	// No javac in the test environment: a missing entry must fail before the
	// compiler is needed.
	_, err := execute(t, "build", "Nope.java")
	if err == nil {
		t.Fatal("build of a missing file succeeded")
	}
	if !strings.Contains(err.Error(), "Nope.java") {
		t.Errorf("err = %v", err)
	}
}

func TestEntryFileFallbacks(t *testing.T) {
	cfg := config.Config{}
	if got := entryFile(cfg, []string{"App.java"}); got != "App.java" {
		t.Errorf("entryFile = %q", got)
	}
	cfg.Entrypoint = "Server.java"
	if got := entryFile(cfg, nil); got != "Server.java" {
		t.Errorf("entryFile = %q", got)
	}
	cfg.Entrypoint = ""
	if got := entryFile(cfg, nil); got != "Main.java" {
		t.Errorf("entryFile = %q", got)
	}
}
