package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
	"github.com/mesh-intelligence/wardrobe/pkg/wardrobe"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	sorted   bool
	formal   bool
	typeName string
}

func (a *app) newListCmd() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the wardrobe contents",
		Long: `List prints one line per item as "name (size) - description", in
insertion order, or in size order with --sorted. Sizes sort as plain text,
so "32" comes before "9".

Example:
  wardrobe list
  wardrobe list --sorted
  wardrobe list --formal
  wardrobe list --type socks --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.sorted, "sorted", false, "sort by size before listing")
	cmd.Flags().BoolVar(&flags.formal, "formal", false, "only list formal items (shirts and jackets)")
	cmd.Flags().StringVar(&flags.typeName, "type", "", "only list items of this clothing type")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, flags *listFlags) error {
	var only *types.ClothingType
	if flags.typeName != "" {
		c, err := types.ParseClothingType(flags.typeName)
		if err != nil {
			return userError(fmt.Errorf("--type %q: %w", flags.typeName, err))
		}
		only = &c
	}

	return a.withWardrobe(func(w types.Wardrobe) error {
		if flags.sorted {
			if err := w.SortBySize(); err != nil {
				return sysError(fmt.Errorf("sort by size: %w", err))
			}
		}

		items, err := w.Items()
		if err != nil {
			return sysError(fmt.Errorf("list clothing: %w", err))
		}
		items = filterItems(items, flags.formal, only)

		out := cmd.OutOrStdout()
		if a.flags.jsonMode {
			return writeJSON(out, items)
		}
		return wardrobe.DisplayItems(out, items)
	})
}

// filterItems keeps order and drops items that fail the formal or type
// filters.
func filterItems(items []*types.Item, formal bool, only *types.ClothingType) []*types.Item {
	out := make([]*types.Item, 0, len(items))
	for _, it := range items {
		if formal && !it.IsFormal() {
			continue
		}
		if only != nil && !it.HasType(*only) {
			continue
		}
		out = append(out, it)
	}
	return out
}
