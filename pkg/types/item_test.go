package types

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemDefaults(t *testing.T) {
	it, err := NewItem("Scarf", "Wool")
	require.NoError(t, err)

	assert.Equal(t, "Scarf", it.Name)
	assert.Equal(t, "Wool", it.Description)
	assert.Equal(t, "", it.Size)
	assert.Nil(t, it.Type)
	assert.Empty(t, it.ItemID)
}

func TestNewItemRejectsInvalidType(t *testing.T) {
	_, err := NewItem("Hat", "Felt", WithType(ClothingType("hat")))
	assert.ErrorIs(t, err, ErrInvalidClothingType)
}

func TestMustItemPanicsOnInvalidType(t *testing.T) {
	assert.Panics(t, func() {
		MustItem("Hat", "Felt", WithType(ClothingType("hat")))
	})
}

func TestItemIsFormal(t *testing.T) {
	tests := []struct {
		name string
		opts []ItemOption
		want bool
	}{
		{name: "shirt is formal", opts: []ItemOption{WithType(Shirt)}, want: true},
		{name: "jacket is formal", opts: []ItemOption{WithType(Jacket)}, want: true},
		{name: "jeans are not formal", opts: []ItemOption{WithType(Jeans)}, want: false},
		{name: "shoes are not formal", opts: []ItemOption{WithType(Shoes)}, want: false},
		{name: "socks are not formal", opts: []ItemOption{WithType(Socks)}, want: false},
		{name: "unset type is not formal", opts: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := NewItem("x", "y", tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, it.IsFormal())
		})
	}
}

func TestItemDisplay(t *testing.T) {
	it := MustItem("Ankle Socks", "Comfortable", WithSize("1 Size"), WithType(Socks))
	assert.Equal(t, "Ankle Socks (1 Size) - Comfortable", it.DisplayLine())

	var buf bytes.Buffer
	require.NoError(t, it.Display(&buf))
	assert.Equal(t, "Ankle Socks (1 Size) - Comfortable\n", buf.String())
}

func TestItemDisplayEmptySize(t *testing.T) {
	it := MustItem("Belt", "Leather")
	assert.Equal(t, "Belt () - Leather", it.DisplayLine())
}

func TestItemTypeKey(t *testing.T) {
	assert.Equal(t, "", MustItem("a", "b").TypeKey())
	assert.Equal(t, "jeans", MustItem("a", "b", WithType(Jeans)).TypeKey())
	assert.True(t, MustItem("a", "b", WithType(Jeans)).HasType(Jeans))
	assert.False(t, MustItem("a", "b").HasType(Jeans))
}

func TestItemCloneIsDeep(t *testing.T) {
	orig := MustItem("T-Shirt", "Casual wear", WithSize("M"), WithType(Shirt))
	cp := orig.Clone()

	*cp.Type = Socks
	cp.Size = "XL"

	assert.Equal(t, Shirt, *orig.Type)
	assert.Equal(t, "M", orig.Size)
}

func TestNewReadiness(t *testing.T) {
	tests := []struct {
		count int
		want  bool
	}{
		{count: 0, want: false},
		{count: 3, want: false},
		{count: 4, want: true},
		{count: 6, want: true},
	}
	for _, tt := range tests {
		r := NewReadiness(tt.count)
		assert.Equal(t, tt.count, r.TypeCount)
		assert.Equal(t, tt.want, r.Ready, "count %d", tt.count)
	}
}
