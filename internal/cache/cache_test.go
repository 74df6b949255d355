package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	c := Cache{
		"Main.java": {Hash: "abc123", ClassPath: "./out/Main.class"},
		"A.java":    {Hash: "def456", ClassPath: "./out/A.class"},
	}
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := Load(path)
	if len(loaded) != 2 {
		t.Fatalf("loaded %d entries, want 2", len(loaded))
	}
	if loaded["Main.java"].Hash != "abc123" {
		t.Errorf("Main entry = %+v", loaded["Main.java"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "absent.json"))
	if len(c) != 0 {
		t.Errorf("Load(absent) = %v, want empty", c)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")
	writeFile(t, path, "{not json")

	c := Load(path)
	if len(c) != 0 {
		t.Errorf("Load(corrupt) = %v, want empty", c)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.json")

	c := Cache{"Main.java": {Hash: "abc", ClassPath: "out/Main.class"}}
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "cache.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want only cache.json", names)
	}
}

func TestHashFileStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Main.java")
	writeFile(t, path, "public class Main {}")

	first, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	second, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if first != second {
		t.Errorf("hash not stable: %s vs %s", first, second)
	}
	if len(first) != 64 || strings.ToLower(first) != first {
		t.Errorf("hash %q is not lowercase hex sha-256", first)
	}

	writeFile(t, path, "public class Main { int x; }")
	third, err := HashFile(path)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	if third == first {
		t.Error("hash did not change with content")
	}
}

func TestNeedsRebuild(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		t.Fatal(err)
	}

	src := filepath.Join(dir, "Main.java")
	writeFile(t, src, "public class Main {}")
	hash, err := HashFile(src)
	if err != nil {
		t.Fatalf("HashFile: %v", err)
	}
	writeFile(t, ClassPath(outDir, "Main.java"), "bytecode")

	fresh := Cache{"Main.java": {Hash: hash, ClassPath: ClassPath(outDir, "Main.java")}}

	if fresh.NeedsRebuild("Main.java", src, outDir, false) {
		t.Error("up-to-date file marked stale")
	}
	if !fresh.NeedsRebuild("Main.java", src, outDir, true) {
		t.Error("force did not mark file stale")
	}

	stale := Cache{"Main.java": {Hash: "0000", ClassPath: ClassPath(outDir, "Main.java")}}
	if !stale.NeedsRebuild("Main.java", src, outDir, false) {
		t.Error("hash mismatch not detected")
	}

	empty := Cache{}
	if !empty.NeedsRebuild("Main.java", src, outDir, false) {
		t.Error("missing cache entry not detected")
	}

	if err := os.Remove(ClassPath(outDir, "Main.java")); err != nil {
		t.Fatal(err)
	}
	if !fresh.NeedsRebuild("Main.java", src, outDir, false) {
		t.Error("missing artifact not detected")
	}
}
