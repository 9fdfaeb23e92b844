package wardrobe

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Section headers written by the demonstration report.
const (
	HeaderContents  = "Wardrobe contents:"
	HeaderReadiness = "Check if ready to go out:"
	HeaderSorted    = "Sorted wardrobe by size:"
)

// DisplayAll writes one display line per item in the wardrobe's current
// order.
func DisplayAll(w io.Writer, wd types.Wardrobe) error {
	items, err := wd.Items()
	if err != nil {
		return err
	}
	return DisplayItems(w, items)
}

// DisplayItems writes one display line per item.
func DisplayItems(w io.Writer, items []*types.Item) error {
	for _, it := range items {
		if err := it.Display(w); err != nil {
			return err
		}
	}
	return nil
}

// WriteReadiness writes the type count and the Yes/No verdict.
func WriteReadiness(w io.Writer, r types.Readiness) error {
	verdict := "No"
	if r.Ready {
		verdict = "Yes"
	}
	_, err := fmt.Fprintf(w, "Number of clothing types: %d\nReady to go out: %s\n", r.TypeCount, verdict)
	return err
}
