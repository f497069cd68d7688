package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/orchard/internal/domain"
)

type appleView struct {
	Color string `json:"color" yaml:"color"`
	Size  int    `json:"size" yaml:"size"`
}

type selectionView struct {
	Inventory string      `json:"inventory" yaml:"inventory"`
	Path      string      `json:"path,omitempty" yaml:"path,omitempty"`
	Criteria  string      `json:"criteria" yaml:"criteria"`
	Total     int         `json:"total" yaml:"total"`
	Kept      int         `json:"kept" yaml:"kept"`
	Apples    []appleView `json:"apples" yaml:"apples"`
}

func toView(sel domain.Selection) selectionView {
	v := selectionView{
		Inventory: sel.Inventory,
		Path:      sel.Path,
		Criteria:  describeCriteria(sel.Criteria),
		Total:     sel.Total,
		Kept:      len(sel.Apples),
		Apples:    make([]appleView, 0, len(sel.Apples)),
	}
	for _, a := range sel.Apples {
		v.Apples = append(v.Apples, appleView{Color: string(a.Color), Size: a.Size})
	}
	return v
}

func printSelection(w io.Writer, sel domain.Selection, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toView(sel))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toView(sel)); err != nil {
			return err
		}
		return enc.Close()
	case "pretty", "":
		printPrettySelection(w, sel)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

func printPrettySelection(w io.Writer, sel domain.Selection) {
	fmt.Fprintf(w, "Inventory: %s\n", sel.Inventory)
	fmt.Fprintf(w, "Criteria:  %s\n", describeCriteria(sel.Criteria))
	fmt.Fprintf(w, "Kept:      %d of %d\n", len(sel.Apples), sel.Total)
	fmt.Fprintln(w)

	if len(sel.Apples) == 0 {
		fmt.Fprintln(w, "(no apples matched)")
		return
	}
	for _, a := range sel.Apples {
		fmt.Fprintf(w, "- %-5s %4dg\n", a.Color, a.Size)
	}
}
