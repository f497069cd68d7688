package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/ports"
)

const gitignoreHeader = "# orchard"

// Initializer lays out a workspace following a domain.Config: the inventories
// directory, the log directory and the embedded sample files.
type Initializer struct {
	cfg domain.Config
}

func NewInitializer() *Initializer {
	return &Initializer{cfg: domain.DefaultConfig()}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	for _, rel := range []string{i.cfg.Paths.InventoriesDir, i.cfg.Paths.LogsDir} {
		dir := filepath.Join(root, rel)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{Op: "fsworkspace.init", Kind: domain.KindExecution, Path: dir, Err: err}
		}
	}

	if err := ensureGitignore(root); err != nil {
		return &domain.OpError{Op: "fsworkspace.gitignore", Kind: domain.KindExecution, Path: root, Err: err}
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		dst := filepath.Join(root, i.destination(p))
		if err := writeTemplate(p, dst, force); err != nil {
			return &domain.OpError{Op: "fsworkspace.template", Kind: domain.KindExecution, Path: dst, Err: err}
		}
		return nil
	})
}

// destination maps an embedded template path to its place in the workspace.
// Sample inventories follow the configured inventories directory.
func (i *Initializer) destination(p string) string {
	rel := strings.TrimPrefix(p, "templates/")
	if dir, file := path.Split(rel); dir == "inventories/" {
		return filepath.Join(i.cfg.Paths.InventoriesDir, file)
	}
	return filepath.FromSlash(rel)
}

func writeTemplate(src, dst string, force bool) error {
	if !force {
		if _, err := os.Stat(dst); err == nil {
			return nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	b, err := fs.ReadFile(templatesFS, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, b, 0o644)
}

// ensureGitignore makes sure the orchard state directory is ignored. Existing
// content is kept and the block is appended at most once.
func ensureGitignore(root string) error {
	entry := domain.StateDir + "/"
	p := filepath.Join(root, ".gitignore")

	b, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return os.WriteFile(p, []byte(gitignoreHeader+"\n"+entry+"\n"), 0o644)
	}
	if err != nil {
		return err
	}

	existing := string(b)
	lines := map[string]bool{}
	for _, l := range strings.Split(existing, "\n") {
		lines[strings.TrimSpace(l)] = true
	}
	if lines[entry] {
		return nil
	}

	if existing != "" && !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	block := "\n" + entry + "\n"
	if !lines[gitignoreHeader] {
		block = "\n" + gitignoreHeader + "\n" + entry + "\n"
	}
	return os.WriteFile(p, []byte(existing+block), 0o644)
}
