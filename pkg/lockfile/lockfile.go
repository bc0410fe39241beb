package lockfile

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
)

// Options configures parsing.
type Options struct {
	Logger func(string, ...any) // Diagnostics callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// Parser reads dependency information from a local lock or manifest file.
type Parser interface {
	// Parse reads the file at path and returns the bundle it describes.
	Parse(path string, opts Options) (*bundle.Bundle, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the file type identifier (e.g., "poetry.lock").
	Type() string
	// IncludesTransitive reports whether the file contains the full
	// transitive closure (lock files) or only declared dependencies.
	IncludesTransitive() bool
}

// Parsers returns every built-in parser.
func Parsers() []Parser {
	return []Parser{
		&PoetryLock{},
		&PDMLock{},
		&UVLock{},
		&Pyproject{},
		&BundleJSON{},
	}
}

// Detect finds a parser that supports the given file path.
// Returns an UNSUPPORTED error if no parser matches.
func Detect(path string, parsers ...Parser) (Parser, error) {
	if len(parsers) == 0 {
		parsers = Parsers()
	}
	name := filepath.Base(path)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, lgerrors.New(lgerrors.ErrCodeUnsupported, "unsupported input: %s (supported: %s)", name, strings.Join(supportedTypes(parsers), ", "))
}

func supportedTypes(parsers []Parser) []string {
	out := make([]string, len(parsers))
	for i, p := range parsers {
		out[i] = p.Type()
	}
	return out
}

// Load parses path and, when manifestPath is not empty, the manifest next to
// it, and returns the combined bundle.
//
// When path is itself a manifest the result is a manifest-only bundle. A
// missing input is reported as INPUT_NOT_FOUND.
func Load(path, manifestPath string, opts Options) (*bundle.Bundle, error) {
	opts = opts.WithDefaults()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, lgerrors.InputNotFound(path, err)
		}
		return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidInput, err, "stat %s", path)
	}
	p, err := Detect(path)
	if err != nil {
		return nil, err
	}
	b, err := p.Parse(path, opts)
	if err != nil {
		return nil, err
	}
	if manifestPath == "" || sameFile(path, manifestPath) {
		return b, nil
	}

	m, err := (&Pyproject{}).Parse(manifestPath, opts)
	if err != nil {
		return nil, err
	}
	return Merge(b, m), nil
}

// FindManifest returns the pyproject.toml next to path, or "" if there is none.
func FindManifest(path string) string {
	candidate := filepath.Join(filepath.Dir(path), pyprojectFile)
	if sameFile(path, candidate) {
		return ""
	}
	if _, err := os.Stat(candidate); err != nil {
		return ""
	}
	return candidate
}

func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// readFile reads path, mapping a missing file to INPUT_NOT_FOUND.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if os.IsNotExist(err) {
		return nil, lgerrors.InputNotFound(path, err)
	}
	return nil, lgerrors.Wrap(lgerrors.ErrCodeInvalidInput, err, "read %s", path)
}
