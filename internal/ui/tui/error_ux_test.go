package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/filter"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&domain.OpError{Op: "yamlinventory.load", Kind: domain.KindNotFound}, "Inventory not found"},
		{&domain.OpError{Op: "workspacefinder.findroot", Kind: domain.KindNotFound}, "Workspace not found"},
		{&domain.OpError{Op: "x", Kind: domain.KindNotFound}, "Not found"},
		{
			&domain.OpError{Op: "yamlinventory.load", Kind: domain.KindInvalidConfig, Path: "/ws/inventories/basket.yaml", Err: errors.New("yaml: line 4: did not find expected key")},
			"Invalid YAML at basket.yaml line 4",
		},
		{
			&domain.OpError{Op: "config.map", Kind: domain.KindInvalidConfig, Path: "/ws/basket.yaml", Err: fmt.Errorf("field apples[2].color: unknown color")},
			"Invalid apples[2].color in basket.yaml",
		},
		{domain.InvalidArgument("criteria.where", "empty expression"), "Invalid filter"},
		{&domain.OpError{Op: "x", Kind: domain.KindExecution}, "Unexpected error (see logs)"},
		{errors.New("yaml: line 7: oops"), "Invalid YAML line 7"},
		{errors.New("boom"), "Unexpected error (see logs)"},
		{filter.ErrNilPredicate, "Invalid filter"},
		{fmt.Errorf("refresh: %w", filter.ErrNilSequence), "Invalid filter"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("userMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}
