package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
	"github.com/mesh-intelligence/wardrobe/pkg/wardrobe"
)

func (a *app) newReadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Check if the wardrobe is ready to go out",
		Long: `Ready counts the distinct clothing types in the wardrobe. Items without
a type count together as one more type. The wardrobe is ready to go out when
there are more than 3.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withWardrobe(func(w types.Wardrobe) error {
				r, err := w.CheckReadiness()
				if err != nil {
					return sysError(fmt.Errorf("check readiness: %w", err))
				}
				out := cmd.OutOrStdout()
				if a.flags.jsonMode {
					return writeJSON(out, r)
				}
				return wardrobe.WriteReadiness(out, r)
			})
		},
	}
}
