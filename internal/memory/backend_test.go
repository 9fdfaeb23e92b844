package memory

import (
	"testing"

	"github.com/mesh-intelligence/wardrobe/internal/wardrobetest"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

func TestConformance(t *testing.T) {
	wardrobetest.Run(t, types.Config{Backend: types.BackendMemory}, func() types.Wardrobe {
		return NewBackend()
	})
}
