package lockfile

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	lgio "github.com/matzehuels/lockgraph/pkg/io"
)

// BundleJSON reads a bundle previously written by lockgraph's JSON export,
// so exported graphs can be inspected again without the source lock file.
type BundleJSON struct{}

func (p *BundleJSON) Type() string             { return "bundle.json" }
func (p *BundleJSON) IncludesTransitive() bool { return true }
func (p *BundleJSON) Supports(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".json")
}

func (p *BundleJSON) Parse(path string, opts Options) (*bundle.Bundle, error) {
	opts = opts.WithDefaults()
	b, err := lgio.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	opts.Logger("bundle.json: %d components", len(b.Components))
	return b, nil
}
