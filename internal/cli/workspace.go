package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/lockgraph/pkg/lockfile"
)

// workspaceCommand creates the workspace command, which expands the uv
// workspace member globs of a manifest.
func (c *CLI) workspaceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "workspace <pyproject.toml|dir>",
		Short: "List workspace members declared by a manifest",
		Long: `List the [tool.uv.workspace] member patterns of a manifest and the member
manifests they match on disk. Excluded directories are left out.

Examples:
  lockgraph workspace pyproject.toml
  lockgraph workspace .`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkspace(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

func runWorkspace(ctx context.Context, path string, w io.Writer) error {
	logger := loggerFromContext(ctx)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "pyproject.toml")
	}

	ws, err := lockfile.ReadWorkspace(path)
	if err != nil {
		return err
	}
	if len(ws.Members) == 0 {
		printWarning(w, "%s declares no workspace members", path)
		return nil
	}

	printKeyValue(w, "members", strings.Join(ws.Members, ", "))
	if len(ws.Exclude) > 0 {
		printKeyValue(w, "exclude", strings.Join(ws.Exclude, ", "))
	}

	prog := newProgress(logger)
	found, err := lockfile.ExpandWorkspace(ws)
	if err != nil {
		return err
	}
	prog.done("Expanded workspace")

	if len(found) == 0 {
		printWarning(w, "no member manifests found under %s", ws.Dir)
		return nil
	}
	printInfo(w, "%d member manifests", len(found))
	for _, m := range found {
		if rel, err := filepath.Rel(ws.Dir, m); err == nil {
			m = rel
		}
		printFile(w, m)
	}
	return nil
}
