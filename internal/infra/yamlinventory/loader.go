package yamlinventory

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/infra/config"
	"github.com/aalvaropc/orchard/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	inventoriesDir string
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{inventoriesDir: "inventories"}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

func WithInventoriesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.inventoriesDir = dir
		}
	}
}

var _ ports.InventoryLoader = (*Loader)(nil)

func (l *Loader) LoadInventory(path string) (domain.Inventory, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Inventory{}, &domain.OpError{
			Op:   "yamlinventory.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var yi config.YAMLInventory
	if err := yaml.Unmarshal(b, &yi); err != nil {
		return domain.Inventory{}, &domain.OpError{
			Op:   "yamlinventory.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return config.MapInventory(path, yi)
}

func (l *Loader) ListInventories(root string) ([]domain.InventoryRef, error) {
	dir := filepath.Join(root, l.inventoriesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlinventory.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.InventoryRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}

		p := filepath.Join(dir, name)
		n, _ := readInventoryName(p)
		if strings.TrimSpace(n) == "" {
			n = strings.TrimSuffix(name, filepath.Ext(name))
		}

		refs = append(refs, domain.InventoryRef{Name: n, Path: p})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func readInventoryName(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var v struct {
		Name string `yaml:"name"`
	}
	if err := yaml.Unmarshal(b, &v); err != nil {
		return "", err
	}
	return v.Name, nil
}
