package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jacoelho/jx/internal/exit"
	"github.com/jacoelho/jx/internal/jsonpath"
	"github.com/jacoelho/jx/internal/pathing"
)

const (
	// DefaultConcurrency is the number of input files processed at once.
	DefaultConcurrency = 4

	// Stdin is the file argument that reads the document from standard input.
	Stdin = pathing.Stdin
)

// Format selects how input files are decoded.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrNoArguments        = errors.New("no arguments provided")
	ErrNoFiles            = errors.New("no input files specified")
	ErrNoQueries          = errors.New("at least one query is required")
	ErrEmptyQuery         = errors.New("query cannot be empty")
	ErrInvalidFormat      = errors.New("format must be one of: auto, json, yaml")
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")
	ErrStdinRepeated      = errors.New("standard input can only be read once")
)

// Config represents the complete configuration for the jx tool.
type Config struct {
	Files   []string
	Queries []string

	// Output
	First    bool
	Required bool
	Compact  bool

	// Input
	Format      Format
	Concurrency int

	Debug      bool
	ConfigFile string
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoFiles
	}
	if len(c.Queries) == 0 {
		return ErrNoQueries
	}

	stdin := 0
	for _, f := range c.Files {
		if f == Stdin {
			stdin++
		}
	}
	if stdin > 1 {
		return ErrStdinRepeated
	}

	if _, err := ParseFormat(string(c.Format)); err != nil {
		return err
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("%w, got: %d", ErrInvalidConcurrency, c.Concurrency)
	}

	for _, q := range c.Queries {
		if err := jsonpath.Validate(q); err != nil {
			return err
		}
	}

	return nil
}

// queriesFlag implements flag.Value for repeated -q/-query flags.
type queriesFlag []string

func (q *queriesFlag) String() string {
	return strings.Join(*q, ",")
}

func (q *queriesFlag) Set(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmptyQuery
	}
	*q = append(*q, value)
	return nil
}

// Parse parses command-line arguments and returns a validated Config.
// If parsing fails or help is requested, returns nil config and exit result.
// Flags and file arguments may be interleaved.
func Parse(args []string) (*Config, *exit.Result) {
	if len(args) == 0 {
		return nil, exit.Errorf("Error: %v\n\n%s\n", ErrNoArguments, Usage())
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)

	// Suppress the default usage output since we handle it ourselves
	fs.Usage = func() {}
	// Suppress error output since we handle it ourselves
	fs.SetOutput(io.Discard)

	var (
		queries     queriesFlag
		first       = fs.Bool("first", false, "Return only the first match for each query (or null if none)")
		required    = fs.Bool("required", false, "Fail if any query has no matches")
		compact     = fs.Bool("compact", false, "Print compact JSON instead of indented JSON")
		format      = fs.String("format", string(FormatAuto), "Input format: auto, json or yaml")
		concurrency = fs.Int("concurrency", DefaultConcurrency, "Number of files processed concurrently")
		debug       = fs.Bool("debug", false, "Enable debug logging on stderr")
		configFile  = fs.String("config", "", "Path to YAML file with default settings")
	)

	fs.Var(&queries, "q", "Query path (can be used multiple times)")
	fs.Var(&queries, "query", "Query path (can be used multiple times)")

	var files []string
	rest := args[1:]
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, exit.Success(Usage() + "\n")
			}
			return nil, exit.Errorf("Error: failed to parse arguments: %v\n\n%s\n", err, Usage())
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		files = append(files, rest[0])
		rest = rest[1:]
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	config := &Config{
		Files:       files,
		Queries:     queries,
		First:       *first,
		Required:    *required,
		Compact:     *compact,
		Format:      Format(strings.ToLower(strings.TrimSpace(*format))),
		Concurrency: *concurrency,
		Debug:       *debug,
		ConfigFile:  *configFile,
	}

	// Settings from the file apply only where the flag was not given.
	// File queries come before command-line queries; file inputs are used
	// only when no file argument was given.
	if *configFile != "" {
		defaults, err := loadDefaults(*configFile)
		if err != nil {
			return nil, exit.Errorf("Error: failed to load config file: %v\n", err)
		}
		defaults.apply(config, set)
	}

	if err := config.Validate(); err != nil {
		if errors.Is(err, jsonpath.ErrSyntax) {
			return nil, exit.Errorf("Invalid query path: %v\n", err)
		}
		return nil, exit.Errorf("Error: %v\n\n%s\n", err, Usage())
	}
	config.Format, _ = ParseFormat(string(config.Format))

	return config, nil
}

// ParseFormat normalizes a format name.
func ParseFormat(input string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(input))) {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w, got: %s", ErrInvalidFormat, input)
	}
}

// defaults mirrors the YAML config file. Pointer fields distinguish an
// absent setting from an explicit false or zero.
type defaults struct {
	Files       []string `yaml:"files"`
	Queries     []string `yaml:"queries"`
	First       *bool    `yaml:"first"`
	Required    *bool    `yaml:"required"`
	Compact     *bool    `yaml:"compact"`
	Format      *string  `yaml:"format"`
	Concurrency *int     `yaml:"concurrency"`
}

func loadDefaults(filename string) (*defaults, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var d defaults
	if err := yaml.UnmarshalWithOptions(data, &d, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	baseDir := filepath.Dir(filename)
	for i, f := range d.Files {
		d.Files[i] = pathing.ResolveInputPath(f, baseDir)
	}
	return &d, nil
}

func (d *defaults) apply(c *Config, set map[string]bool) {
	if len(c.Files) == 0 {
		c.Files = d.Files
	}
	if len(d.Queries) > 0 {
		c.Queries = append(append([]string(nil), d.Queries...), c.Queries...)
	}
	if d.First != nil && !set["first"] {
		c.First = *d.First
	}
	if d.Required != nil && !set["required"] {
		c.Required = *d.Required
	}
	if d.Compact != nil && !set["compact"] {
		c.Compact = *d.Compact
	}
	if d.Format != nil && !set["format"] {
		c.Format = Format(strings.ToLower(strings.TrimSpace(*d.Format)))
	}
	if d.Concurrency != nil && !set["concurrency"] {
		c.Concurrency = *d.Concurrency
	}
}

// Usage returns a usage string for the CLI tool.
func Usage() string {
	return `jx - extract values from JSON files using query paths

Usage: jx [options] <file1> [file2] ...

Options:
  -q, --query PATH        Query path (can be used multiple times)
  --first                 Return only the first match for each query (or null if none)
  --required              Exit with code 2 if any query has no matches
  --compact               Print compact JSON instead of indented JSON
  --format FORMAT         Input format: auto, json or yaml (default: auto)
  --concurrency N         Number of files processed concurrently (default: 4)
  --config FILE           Path to YAML file with default settings (files, queries, flags)
  --debug                 Enable debug logging on stderr
  -h, --help              Show this help message

Use - as a file name to read standard input.

Examples:
  jx payload.json -q message.text                  # Single value
  jx payload.json -q 'items[*].id' -q items[-1]    # Several queries
  jx payload.json -q "['meta.data'].owner" --first # Quoted member name
  jx --required -q $.updates[0].id a.json b.yaml   # Fail when nothing matches`
}
