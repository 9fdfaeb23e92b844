package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// typeInfo is the JSON form of one clothing type.
type typeInfo struct {
	Type   types.ClothingType `json:"type"`
	Formal bool               `json:"formal"`
}

func (a *app) newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the clothing types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if a.flags.jsonMode {
				infos := make([]typeInfo, 0, len(types.ClothingTypes))
				for _, c := range types.ClothingTypes {
					infos = append(infos, typeInfo{Type: c, Formal: c.IsFormal()})
				}
				return writeJSON(out, infos)
			}
			for _, c := range types.ClothingTypes {
				line := c.String()
				if c.IsFormal() {
					line += " (formal)"
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
