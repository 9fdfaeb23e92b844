// Package wardrobetest provides a conformance suite that every Wardrobe
// backend runs from its own tests, so all backends agree on ordering,
// sorting and readiness.
package wardrobetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/wardrobe/internal/inventory"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Factory returns a fresh, detached backend.
type Factory func() types.Wardrobe

// Run executes the conformance suite against backends produced by newBackend,
// attaching each with config.
func Run(t *testing.T, config types.Config, newBackend Factory) {
	t.Helper()

	attach := func(t *testing.T) types.Wardrobe {
		t.Helper()
		w := newBackend()
		require.NoError(t, w.Attach(config))
		t.Cleanup(func() { w.Detach() })
		return w
	}

	t.Run("empty wardrobe", func(t *testing.T) {
		w := attach(t)
		items, err := w.Items()
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)

		r, err := w.CheckReadiness()
		require.NoError(t, err)
		assert.Equal(t, types.Readiness{TypeCount: 0, Ready: false}, r)
	})

	t.Run("add preserves insertion order and count", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(DemoItems()...))
		require.NoError(t, w.Add())
		require.NoError(t, w.Add(types.MustItem("Belt", "Leather")))

		items, err := w.Items()
		require.NoError(t, err)
		assert.Equal(t, []string{"T-Shirt", "Jeans", "Jacket", "Running Shoes", "Ankle Socks", "Belt"}, Names(items))
	})

	t.Run("add assigns ids and keeps caller items untouched", func(t *testing.T) {
		w := attach(t)
		in := types.MustItem("T-Shirt", "Casual wear", types.WithSize("M"), types.WithType(types.Shirt))
		require.NoError(t, w.Add(in, in))
		assert.Empty(t, in.ItemID)

		items, err := w.Items()
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.NotEmpty(t, items[0].ItemID)
		assert.NotEmpty(t, items[1].ItemID)
		assert.NotEqual(t, items[0].ItemID, items[1].ItemID)
		assert.False(t, items[0].AddedAt.IsZero())
		require.NotNil(t, items[0].Type)
		assert.Equal(t, types.Shirt, *items[0].Type)
	})

	t.Run("add keeps existing ids and allows duplicates", func(t *testing.T) {
		w := attach(t)
		it := types.MustItem("Scarf", "Wool")
		it.ItemID = "fixed-id"
		require.NoError(t, w.Add(it, it))

		items, err := w.Items()
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "fixed-id", items[0].ItemID)
		assert.Equal(t, "fixed-id", items[1].ItemID)
	})

	t.Run("add rejects nil item atomically", func(t *testing.T) {
		w := attach(t)
		err := w.Add(types.MustItem("Belt", "Leather"), nil)
		assert.ErrorIs(t, err, types.ErrInvalidItem)

		items, err := w.Items()
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("add rejects invalid clothing type", func(t *testing.T) {
		w := attach(t)
		bad := &types.Item{Name: "Hat", Description: "Felt", Type: types.ClothingType("hat").Ptr()}
		err := w.Add(types.MustItem("Belt", "Leather"), bad)
		assert.ErrorIs(t, err, types.ErrInvalidClothingType)

		items, err := w.Items()
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("items returns copies", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(DemoItems()...))

		items, err := w.Items()
		require.NoError(t, err)
		items[0].Size = "XXL"
		*items[0].Type = types.Socks

		again, err := w.Items()
		require.NoError(t, err)
		assert.Equal(t, "M", again[0].Size)
		assert.Equal(t, types.Shirt, *again[0].Type)
	})

	t.Run("sort by size is lexicographic", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(DemoItems()...))
		require.NoError(t, w.SortBySize())

		items, err := w.Items()
		require.NoError(t, err)
		assert.Equal(t, []string{"1 Size", "32", "9", "L", "M"}, Sizes(items))
	})

	t.Run("sort by size is stable", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(
			types.MustItem("b", "", types.WithSize("M")),
			types.MustItem("a", "", types.WithSize("L")),
			types.MustItem("c", "", types.WithSize("M")),
			types.MustItem("d", "", types.WithSize("")),
			types.MustItem("e", "", types.WithSize("L")),
		))
		require.NoError(t, w.SortBySize())

		items, err := w.Items()
		require.NoError(t, err)
		assert.Equal(t, []string{"d", "a", "e", "b", "c"}, Names(items))
	})

	t.Run("sort by size is idempotent", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(DemoItems()...))
		require.NoError(t, w.SortBySize())
		once, err := w.Items()
		require.NoError(t, err)

		require.NoError(t, w.SortBySize())
		twice, err := w.Items()
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("add after sort appends", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(DemoItems()...))
		require.NoError(t, w.SortBySize())
		require.NoError(t, w.Add(types.MustItem("Belt", "Leather", types.WithSize("0"))))

		items, err := w.Items()
		require.NoError(t, err)
		assert.Equal(t, []string{"1 Size", "32", "9", "L", "M", "0"}, Sizes(items))
	})

	t.Run("readiness with five types", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(DemoItems()...))

		r, err := w.CheckReadiness()
		require.NoError(t, err)
		assert.Equal(t, types.Readiness{TypeCount: 5, Ready: true}, r)
	})

	t.Run("readiness with repeated types", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(
			types.MustItem("T-Shirt", "", types.WithType(types.Shirt)),
			types.MustItem("Jeans", "", types.WithType(types.Jeans)),
			types.MustItem("Polo", "", types.WithType(types.Shirt)),
		))

		r, err := w.CheckReadiness()
		require.NoError(t, err)
		assert.Equal(t, types.Readiness{TypeCount: 2, Ready: false}, r)
	})

	t.Run("readiness counts unset type once", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(
			types.MustItem("Shirt", "", types.WithType(types.Shirt)),
			types.MustItem("Jeans", "", types.WithType(types.Jeans)),
			types.MustItem("Jacket", "", types.WithType(types.Jacket)),
			types.MustItem("Belt", ""),
			types.MustItem("Scarf", ""),
		))

		r, err := w.CheckReadiness()
		require.NoError(t, err)
		assert.Equal(t, types.Readiness{TypeCount: 4, Ready: true}, r)
	})

	t.Run("readiness is invariant under sorting", func(t *testing.T) {
		w := attach(t)
		require.NoError(t, w.Add(DemoItems()...))
		before, err := w.CheckReadiness()
		require.NoError(t, err)

		require.NoError(t, w.SortBySize())
		after, err := w.CheckReadiness()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("lifecycle", func(t *testing.T) {
		w := newBackend()

		_, err := w.Items()
		assert.ErrorIs(t, err, types.ErrWardrobeDetached)

		require.NoError(t, w.Attach(config))
		assert.ErrorIs(t, w.Attach(config), types.ErrAlreadyAttached)
		require.NoError(t, w.Add(DemoItems()...))

		require.NoError(t, w.Detach())
		require.NoError(t, w.Detach())

		assert.ErrorIs(t, w.Add(DemoItems()...), types.ErrWardrobeDetached)
		assert.ErrorIs(t, w.SortBySize(), types.ErrWardrobeDetached)
		_, err = w.CheckReadiness()
		assert.ErrorIs(t, err, types.ErrWardrobeDetached)

		require.NoError(t, w.Attach(config))
		defer w.Detach()
		items, err := w.Items()
		require.NoError(t, err)
		assert.Empty(t, items, "re-attach starts empty")
	})

	t.Run("attach validates config", func(t *testing.T) {
		w := newBackend()
		assert.ErrorIs(t, w.Attach(types.Config{}), types.ErrBackendEmpty)
		assert.ErrorIs(t, w.Attach(types.Config{Backend: "nosuch"}), types.ErrBackendUnknown)
	})
}

// DemoItems returns fresh copies of the demonstration items.
func DemoItems() []*types.Item {
	return inventory.Demo()
}

// Names returns the item names in order.
func Names(items []*types.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

// Sizes returns the item sizes in order.
func Sizes(items []*types.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Size
	}
	return out
}
