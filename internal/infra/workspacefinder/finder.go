package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/ports"
)

// Finder locates the orchard workspace that contains a directory by walking
// up until a config file is found.
type Finder struct {
	configFile string
}

type Option func(*Finder)

// WithConfigFile changes the marker file. Blank keeps domain.ConfigFileName.
func WithConfigFile(name string) Option {
	return func(f *Finder) {
		if strings.TrimSpace(name) != "" {
			f.configFile = name
		}
	}
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{configFile: domain.ConfigFileName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot returns the nearest ancestor of startDir (inclusive) holding the
// config file. A file path starts the search at its directory.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", domain.InvalidArgument("workspacefinder.findroot", "start directory is empty")
	}

	start, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, err := os.Stat(start); err == nil && !info.IsDir() {
		start = filepath.Dir(start)
	}

	for dir := filepath.Clean(start); ; {
		if f.isRoot(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", &domain.OpError{
		Op:   "workspacefinder.findroot",
		Kind: domain.KindNotFound,
		Path: start,
		Err:  fmt.Errorf("no %s here or in any parent: %w", f.configFile, domain.ErrNotFound),
	}
}

// isRoot ignores a directory that happens to carry the config file's name.
func (f *Finder) isRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, f.configFile))
	return err == nil && info.Mode().IsRegular()
}
