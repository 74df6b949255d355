// Package config loads the javelin.yaml configuration file. A missing file
// yields defaults; an unreadable or unparsable file warns and also yields
// defaults so a broken config never blocks a build.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/javelin-build/javelin/internal/ui"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "javelin.yaml"

// Config holds the tool configuration.
type Config struct {
	// SrcDir is the source root declared dependencies are resolved against.
	SrcDir string `yaml:"src_dir"`
	// OutDir receives the compiled .class files.
	OutDir string `yaml:"out_dir"`
	// CacheFile is the path of the fingerprint store.
	CacheFile string `yaml:"cache_file"`
	// JvmOpts are extra arguments passed to java after the classpath flag.
	JvmOpts []string `yaml:"jvm_opts"`
	// Entrypoint is the default entry source file when none is given.
	Entrypoint string `yaml:"entrypoint"`
	// AutoIncludeImplicitDeps folds detected implicit dependencies into the
	// declared dependency list during graph construction.
	AutoIncludeImplicitDeps bool `yaml:"auto_include_implicit_deps"`
}

// Default returns the configuration used when no javelin.yaml is present.
func Default() Config {
	return Config{
		SrcDir:    ".",
		OutDir:    "./out",
		CacheFile: "./javelin-cache.json",
	}
}

// Load reads javelin.yaml from dir. Absent keys keep their defaults.
func Load(dir string) Config {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			warnFallback("read", err)
		}
		return Default()
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		warnFallback("parse", err)
		return Default()
	}
	if cfg.SrcDir == "" {
		cfg.SrcDir = Default().SrcDir
	}
	if cfg.OutDir == "" {
		cfg.OutDir = Default().OutDir
	}
	if cfg.CacheFile == "" {
		cfg.CacheFile = Default().CacheFile
	}
	return cfg
}

func warnFallback(verb string, err error) {
	fmt.Fprintln(os.Stderr, ui.Warn.Render(fmt.Sprintf("Failed to %s %s: %v", verb, FileName, err)))
	fmt.Fprintln(os.Stderr, "   Using default configuration")
}
