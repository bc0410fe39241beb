package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lockgraph/pkg/bundle"
	"github.com/matzehuels/lockgraph/pkg/depgraph"
	lgerrors "github.com/matzehuels/lockgraph/pkg/errors"
	pkgio "github.com/matzehuels/lockgraph/pkg/io"
	"github.com/matzehuels/lockgraph/pkg/lockfile"
	"github.com/matzehuels/lockgraph/pkg/observability"
	"github.com/matzehuels/lockgraph/pkg/summary"
)

// Output shapes.
const (
	shapeSummary = "summary"
	shapeFull    = "full"
	shapeNode    = "node"
)

// Output formats.
const (
	formatJSON      = "json"
	formatText      = "text"
	formatDOT       = "dot"
	formatSVG       = "svg"
	formatCycloneDX = "cyclonedx"
)

var (
	shapes  = []string{shapeSummary, shapeFull, shapeNode}
	formats = []string{formatJSON, formatText, formatDOT, formatSVG, formatCycloneDX}
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	manifest   string // manifest path (auto-detected if empty)
	noManifest bool   // skip manifest detection
	id         string // query by identifier
	name       string // query by package name
	shape      string // summary, full or node
	format     string // json, text, dot, svg or cyclonedx
	output     string // output file (stdout if empty)
	print      bool   // also dump the full bundle to stdout
}

// query returns the query flag in use, if any.
func (o *inspectOpts) query() (kind, value string) {
	switch {
	case o.id != "":
		return "identifier", o.id
	case o.name != "":
		return "name", o.name
	}
	return "", ""
}

// validate checks flag combinations and fills in the default shape: node
// when a query is given, summary otherwise.
func (o *inspectOpts) validate() error {
	o.shape = strings.ToLower(o.shape)
	o.format = strings.ToLower(o.format)
	if !slices.Contains(formats, o.format) {
		return lgerrors.New(lgerrors.ErrCodeInvalidInput, "unknown format %q (supported: %s)", o.format, strings.Join(formats, ", "))
	}
	if o.shape == "" {
		switch {
		case o.id != "" || o.name != "":
			o.shape = shapeNode
		case o.format == formatCycloneDX:
			o.shape = shapeFull
		default:
			o.shape = shapeSummary
		}
	}
	if !slices.Contains(shapes, o.shape) {
		return lgerrors.New(lgerrors.ErrCodeInvalidInput, "unknown shape %q (supported: %s)", o.shape, strings.Join(shapes, ", "))
	}

	if o.name != "" {
		if err := lgerrors.ValidatePackageName(o.name); err != nil {
			return err
		}
	}
	if o.shape == shapeNode && o.id == "" && o.name == "" {
		return lgerrors.New(lgerrors.ErrCodeInvalidInput, "shape %q needs --id or --name", shapeNode)
	}

	switch o.format {
	case formatDOT, formatSVG:
		if o.shape == shapeSummary {
			return lgerrors.New(lgerrors.ErrCodeInvalidInput, "format %s needs shape full or node", o.format)
		}
	case formatCycloneDX:
		if o.shape != shapeFull {
			return lgerrors.New(lgerrors.ErrCodeInvalidInput, "format %s needs shape full", o.format)
		}
	}
	if o.format == formatSVG && o.output == "" {
		return lgerrors.New(lgerrors.ErrCodeInvalidInput, "format svg needs --output")
	}
	if o.print && o.output == "" {
		return lgerrors.New(lgerrors.ErrCodeInvalidInput, "--print needs --output")
	}
	return nil
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	opts := inspectOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarize, query or export a dependency graph",
		Long: `Inspect a Python lock file, manifest or exported bundle.

Without a query the summary is printed. With --id or --name the matching
package and its direct dependencies are printed. A pyproject.toml next to the
lock file is picked up automatically unless --manifest or --no-manifest is
given; ` + manifestEnv + ` sets a default manifest path.

Examples:
  lockgraph inspect poetry.lock
  lockgraph inspect uv.lock --name requests
  lockgraph inspect pdm.lock --shape full -o bundle.json --print
  lockgraph inspect uv.lock --shape full --format cyclonedx -o sbom.json
  lockgraph inspect poetry.lock --name django --format svg -o django.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), &opts, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.manifest, "manifest", "m", "", "pyproject.toml to combine with the lock (default: auto-detect)")
	cmd.Flags().BoolVar(&opts.noManifest, "no-manifest", false, "do not read a manifest")
	cmd.Flags().StringVar(&opts.id, "id", "", "query a component by identifier")
	cmd.Flags().StringVar(&opts.name, "name", "", "query a component by name (case-insensitive)")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "output shape: summary, full, node")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "after writing --output, print the full bundle as JSON")
	cmd.MarkFlagsMutuallyExclusive("id", "name")
	cmd.MarkFlagsMutuallyExclusive("manifest", "no-manifest")

	return cmd
}

// runInspect loads, indexes and writes one input.
func (c *CLI) runInspect(ctx context.Context, opts *inspectOpts, path string, stdout, stderr io.Writer) error {
	if err := opts.validate(); err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	idx, err := c.load(ctx, opts, path)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Indexed %d components", idx.Len()))
	b := idx.Bundle()

	var sub depgraph.Subgraph
	if opts.shape == shapeNode {
		kind, value := opts.query()
		sub, err = resolveQuery(idx, kind, value)
		observability.Inspect().OnQuery(ctx, kind, value, err)
		if err != nil {
			return err
		}
		if comp, ok := idx.Component(sub.Root); ok {
			logger.Debugf("Resolved %s as %s", describe(comp), sub.Root)
		}
	}

	write := func(w io.Writer) error {
		return writeShape(ctx, idx, sub, opts, w)
	}

	if opts.output == "" {
		err := write(stdout)
		observability.Inspect().OnExport(ctx, opts.shape, opts.format, "stdout", err)
		return err
	}

	// The file is authoritative: a failed write stops before anything is
	// printed to the stream.
	err = pkgio.ExportFile(opts.output, write)
	observability.Inspect().OnExport(ctx, opts.shape, opts.format, opts.output, err)
	if err != nil {
		return err
	}
	printSuccess(stderr, "Wrote %s %s", opts.shape, opts.format)
	printFile(stderr, opts.output)
	printStats(stderr, idx.Len(), b.EdgeCount(), len(idx.Roots()))

	if opts.print {
		err := pkgio.WriteJSON(b, stdout)
		observability.Inspect().OnExport(ctx, shapeFull, formatJSON, "stdout", err)
		return err
	}
	return nil
}

// load parses path together with its manifest and indexes the result.
func (c *CLI) load(ctx context.Context, opts *inspectOpts, path string) (idx *depgraph.Index, err error) {
	hooks := observability.Inspect()
	hooks.OnLoadStart(ctx, path)
	start := time.Now()
	defer func() {
		n := 0
		if idx != nil {
			n = idx.Len()
		}
		hooks.OnLoadComplete(ctx, path, n, time.Since(start), err)
	}()

	manifest := c.resolveManifest(opts, path)
	if manifest != "" {
		loggerFromContext(ctx).Debugf("Using manifest %s", manifest)
	}
	b, err := lockfile.Load(path, manifest, c.lockfileOptions())
	if err != nil {
		return nil, err
	}
	if b.Modes.Any() {
		loggerFromContext(ctx).Debugf("Manifest dialects: poetry=%t uv=%t hatch=%t", b.Modes.Poetry, b.Modes.UV, b.Modes.Hatch)
	}
	return depgraph.New(b)
}

// resolveManifest picks the manifest: the flag, then the environment, then a
// pyproject.toml next to the input.
func (c *CLI) resolveManifest(opts *inspectOpts, path string) string {
	switch {
	case opts.noManifest:
		return ""
	case opts.manifest != "":
		return opts.manifest
	case defaultManifest() != "":
		return defaultManifest()
	}
	return lockfile.FindManifest(path)
}

func resolveQuery(idx *depgraph.Index, kind, value string) (depgraph.Subgraph, error) {
	id := value
	if kind == "name" {
		var err error
		if id, err = idx.ResolveByName(value); err != nil {
			return depgraph.Subgraph{}, err
		}
	}
	return idx.ExtractSubgraph(id)
}

// writeShape serializes the selected shape in the selected format.
func writeShape(ctx context.Context, idx *depgraph.Index, sub depgraph.Subgraph, opts *inspectOpts, w io.Writer) error {
	b := idx.Bundle()
	root := ""
	if opts.shape == shapeNode {
		root = sub.Root
	}

	switch opts.format {
	case formatText:
		switch opts.shape {
		case shapeSummary:
			return pkgio.WriteSummaryText(summary.Build(b), w)
		case shapeNode:
			return pkgio.WriteNodeText(idx, sub, w)
		}
		return pkgio.WriteBundleText(idx, w)
	case formatDOT:
		return pkgio.WriteDOT(idx, root, w)
	case formatSVG:
		return pkgio.WriteSVG(ctx, idx, root, w)
	case formatCycloneDX:
		return pkgio.WriteCycloneDX(idx, w)
	}

	var v any
	switch opts.shape {
	case shapeSummary:
		v = summary.Build(b)
	case shapeNode:
		v = sub
	default:
		v = b
	}
	return pkgio.WriteJSON(v, w)
}

// describe renders a component for status lines.
func describe(c bundle.Component) string {
	if c.Version == "" {
		return c.Name
	}
	return c.Name + " " + c.Version
}
