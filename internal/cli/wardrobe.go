package cli

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/wardrobe/internal/inventory"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
	"github.com/mesh-intelligence/wardrobe/pkg/wardrobe"
)

// loadItems returns the configured inventory, or the built-in items when
// no inventory file is set.
func (a *app) loadItems() ([]*types.Item, error) {
	if a.settings.itemsFile == "" {
		items := inventory.Demo()
		a.logger.Debug("using built-in items", "count", len(items))
		return items, nil
	}

	items, err := inventory.Load(a.settings.itemsFile)
	if err != nil {
		return nil, userError(fmt.Errorf("load items: %w", err))
	}
	a.logger.Debug("items loaded", "file", a.settings.itemsFile, "count", len(items))
	return items, nil
}

// openWardrobe attaches the configured backend. The caller must Detach.
func (a *app) openWardrobe() (types.Wardrobe, error) {
	w, err := wardrobe.Open(types.Config{Backend: a.settings.backend}, a.logger)
	if err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
			return nil, userError(err)
		}
		return nil, sysError(fmt.Errorf("open wardrobe: %w", err))
	}
	return w, nil
}

// withWardrobe opens a wardrobe filled with the configured items, runs fn,
// and detaches.
func (a *app) withWardrobe(fn func(types.Wardrobe) error) (err error) {
	items, err := a.loadItems()
	if err != nil {
		return err
	}

	w, err := a.openWardrobe()
	if err != nil {
		return err
	}
	defer func() {
		if derr := w.Detach(); derr != nil && err == nil {
			err = sysError(fmt.Errorf("detach wardrobe: %w", derr))
		}
	}()

	if err := w.Add(items...); err != nil {
		return sysError(fmt.Errorf("add clothing: %w", err))
	}
	return fn(w)
}
