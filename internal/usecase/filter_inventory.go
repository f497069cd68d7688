package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/orchard/internal/domain"
	"github.com/aalvaropc/orchard/internal/filter"
	"github.com/aalvaropc/orchard/internal/ports"
	"github.com/aalvaropc/orchard/internal/usecase/criteria"
)

type FilterInventory struct {
	inventories ports.InventoryLoader
	log         *slog.Logger
}

type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger sets the logger used for run summaries. Nil keeps the default discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{log: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func NewFilterInventory(il ports.InventoryLoader, opts ...Option) *FilterInventory {
	o := buildOptions(opts)
	return &FilterInventory{
		inventories: il,
		log:         o.log,
	}
}

// Execute loads the inventory at inventoryPath and keeps the apples matching c
// (or, with c.Invert, the apples that do not match).
func (uc *FilterInventory) Execute(ctx context.Context, inventoryPath string, c domain.Criteria) (domain.Selection, error) {
	if err := ctx.Err(); err != nil {
		return domain.Selection{}, err
	}

	inv, err := uc.inventories.LoadInventory(inventoryPath)
	if err != nil {
		return domain.Selection{}, err
	}

	pred, err := criteria.Build(c)
	if err != nil {
		return domain.Selection{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.Selection{}, err
	}

	apples := inv.Apples
	if apples == nil {
		apples = []domain.Apple{}
	}

	var kept []domain.Apple
	if c.Invert {
		kept, err = filter.DiscardE(apples, pred)
	} else {
		kept, err = filter.FilterE(apples, pred)
	}
	if err != nil {
		uc.log.Error("filter.failed", "inventory", inv.Name, "path", inventoryPath, "err", err)
		return domain.Selection{}, filterError(inventoryPath, err)
	}

	uc.log.Info("filter.done",
		"inventory", inv.Name,
		"path", inventoryPath,
		"total", len(apples),
		"kept", len(kept),
		"invert", c.Invert,
	)

	return domain.Selection{
		Inventory: inv.Name,
		Path:      inventoryPath,
		Criteria:  c,
		Total:     len(apples),
		Apples:    kept,
	}, nil
}

// filterError classifies a failed pass: precondition failures from the filter
// package become invalid_argument, predicate failures become execution errors.
func filterError(path string, err error) error {
	if errors.Is(err, filter.ErrInvalidArgument) {
		return &domain.OpError{
			Op:   "usecase.filter_inventory",
			Kind: domain.KindInvalidArgument,
			Path: path,
			Err:  fmt.Errorf("%w: %w", err, domain.ErrInvalidArgument),
		}
	}
	return &domain.OpError{
		Op:   "usecase.filter_inventory",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}
