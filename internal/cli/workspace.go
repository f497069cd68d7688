package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/infra/config"
	"github.com/aalvaropc/orchard/internal/infra/workspacefinder"
	"github.com/aalvaropc/orchard/internal/infra/yamlinventory"
	"github.com/aalvaropc/orchard/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config

	inventories ports.InventoryLoader
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(filepath.Join(root, domain.ConfigFileName))
	if err != nil {
		return nil, err
	}

	loader := yamlinventory.NewLoader(
		yamlinventory.WithInventoriesDir(cfg.Paths.InventoriesDir),
	)

	return &workspaceCtx{
		root:        root,
		cfg:         cfg,
		inventories: loader,
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `orchard init`): %w", wd, err)
	}
	return root, nil
}

// resolveInventoryPath accepts an inventory name, a file name under the
// inventories dir, or a path. An empty arg selects the configured default.
func resolveInventoryPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.cfg.Defaults.Inventory
	}
	if in == "" {
		return "", fmt.Errorf("inventory is required (use --inventory or -i)")
	}

	// If arg looks like a path (contains separators), resolve relative to workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	inventoriesDir := filepath.Join(ws.root, ws.cfg.Paths.InventoriesDir)

	if hasYAMLExt(in) {
		p := filepath.Join(inventoriesDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	p1 := filepath.Join(inventoriesDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(inventoriesDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// As a last resort: match by inventory "name" field.
	refs, err := ws.inventories.ListInventories(ws.root)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", &domain.OpError{
		Op:   "cli.resolve_inventory",
		Kind: domain.KindNotFound,
		Path: inventoriesDir,
		Err:  fmt.Errorf("inventory %q: %w", in, domain.ErrNotFound),
	}
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
