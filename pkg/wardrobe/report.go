package wardrobe

import (
	"fmt"
	"io"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Report captures one run of the demonstration sequence.
type Report struct {
	Contents  []*types.Item   `json:"contents"`
	Readiness types.Readiness `json:"readiness"`
	Sorted    []*types.Item   `json:"sorted"`
}

// Run adds items to wd, then records its contents, the readiness verdict,
// and the contents after sorting by size. The sort is left in place.
func Run(wd types.Wardrobe, items []*types.Item) (*Report, error) {
	if err := wd.Add(items...); err != nil {
		return nil, fmt.Errorf("add clothing: %w", err)
	}

	contents, err := wd.Items()
	if err != nil {
		return nil, fmt.Errorf("list clothing: %w", err)
	}
	readiness, err := wd.CheckReadiness()
	if err != nil {
		return nil, fmt.Errorf("check readiness: %w", err)
	}
	if err := wd.SortBySize(); err != nil {
		return nil, fmt.Errorf("sort by size: %w", err)
	}
	sorted, err := wd.Items()
	if err != nil {
		return nil, fmt.Errorf("list sorted clothing: %w", err)
	}

	return &Report{Contents: contents, Readiness: readiness, Sorted: sorted}, nil
}

// HeaderFunc decorates a section header before it is written.
type HeaderFunc func(string) string

// PlainHeader writes headers unchanged.
func PlainHeader(s string) string { return s }

// WriteText renders the report in the console format: contents, a blank
// line, the readiness check, a blank line, then the sorted contents.
func (r *Report) WriteText(w io.Writer, header HeaderFunc) error {
	if header == nil {
		header = PlainHeader
	}

	if _, err := fmt.Fprintln(w, header(HeaderContents)); err != nil {
		return err
	}
	if err := DisplayItems(w, r.Contents); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", header(HeaderReadiness)); err != nil {
		return err
	}
	if err := WriteReadiness(w, r.Readiness); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", header(HeaderSorted)); err != nil {
		return err
	}
	return DisplayItems(w, r.Sorted)
}
