package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-project config file looked up in the root.
const FileName = ".devguide.yaml"

// Config is the in-memory representation of <root>/.devguide.yaml.
// Path fields are relative to Root until Resolve is called.
type Config struct {
	Root         string `yaml:"-"`
	Glossary     string `yaml:"glossary" validate:"required"`
	DocsDir      string `yaml:"docs_dir" validate:"required"`
	SrcDir       string `yaml:"src_dir" validate:"required"`
	CodePattern  string `yaml:"code_pattern" validate:"required,glob"`
	RoutePattern string `yaml:"route_pattern" validate:"required,glob"`
	SchemaFile   string `yaml:"schema_file" validate:"required"`
	LogLevel     string `yaml:"log_level" validate:"oneof=debug info warn error"`
	Addr         string `yaml:"addr" validate:"required"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig(root string) *Config {
	return &Config{
		Root:         root,
		Glossary:     filepath.Join("docs", "glossary.json"),
		DocsDir:      "docs",
		SrcDir:       "src",
		CodePattern:  "**/*.{ts,js,tsx,jsx}",
		RoutePattern: "**/*.{ts,js}",
		SchemaFile:   filepath.Join("prisma", "schema.prisma"),
		LogLevel:     "warn",
		Addr:         ":3000",
	}
}

// ConfigPath returns the absolute path to <root>/.devguide.yaml.
func ConfigPath(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("cannot resolve root %s: %w", root, err)
	}
	return filepath.Join(abs, FileName), nil
}

// envOverrides maps environment keys onto the config fields they replace.
var envOverrides = []struct {
	key   string
	field func(*Config) *string
}{
	{"DEVGUIDE_GLOSSARY", func(c *Config) *string { return &c.Glossary }},
	{"DEVGUIDE_DOCS_DIR", func(c *Config) *string { return &c.DocsDir }},
	{"DEVGUIDE_SRC_DIR", func(c *Config) *string { return &c.SrcDir }},
	{"DEVGUIDE_CODE_PATTERN", func(c *Config) *string { return &c.CodePattern }},
	{"DEVGUIDE_ROUTE_PATTERN", func(c *Config) *string { return &c.RoutePattern }},
	{"DEVGUIDE_SCHEMA_FILE", func(c *Config) *string { return &c.SchemaFile }},
	{"DEVGUIDE_LOG_LEVEL", func(c *Config) *string { return &c.LogLevel }},
	{"DEVGUIDE_ADDR", func(c *Config) *string { return &c.Addr }},
}

// Load builds the effective config for root: defaults, then
// <root>/.devguide.yaml when present, then environment overrides
// (process env first, falling back to <root>/.env).
func Load(root string) (*Config, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve root %s: %w", root, err)
	}
	cfg := DefaultConfig(abs)

	path := filepath.Join(abs, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	default:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	lookup, err := EnvLookup(abs)
	if err != nil {
		return nil, err
	}
	for _, o := range envOverrides {
		if v := strings.TrimSpace(lookup(o.key)); v != "" {
			*o.field(cfg) = v
		}
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields, the log level and glob syntax.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	}); err != nil {
		return fmt.Errorf("cannot register glob validation: %w", err)
	}
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q check (value %q)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Resolve returns p as an absolute path, interpreting relative paths
// against the config root.
func (c *Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, p)
}

// GlossaryPath returns the absolute glossary file path.
func (c *Config) GlossaryPath() string { return c.Resolve(c.Glossary) }

// DocsPath returns the absolute documents directory.
func (c *Config) DocsPath() string { return c.Resolve(c.DocsDir) }

// SrcPath returns the absolute source directory.
func (c *Config) SrcPath() string { return c.Resolve(c.SrcDir) }

// SchemaPath returns the absolute schema definition file path.
func (c *Config) SchemaPath() string { return c.Resolve(c.SchemaFile) }

// Save marshals cfg and writes it to <root>/.devguide.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath(cfg.Root)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
