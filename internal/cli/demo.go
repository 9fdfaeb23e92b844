package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/pkg/wardrobe"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the wardrobe demonstration",
		Long: `Demo adds the items to a new wardrobe, lists the contents, checks
whether the wardrobe is ready to go out, sorts it by size and lists it again.

Example:
  wardrobe demo
  wardrobe demo --items closet.yaml --backend sqlite
  wardrobe demo --json`,
		Args: cobra.NoArgs,
		RunE: a.runDemo,
	}
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	items, err := a.loadItems()
	if err != nil {
		return err
	}

	w, err := a.openWardrobe()
	if err != nil {
		return err
	}
	defer w.Detach()

	report, err := wardrobe.Run(w, items)
	if err != nil {
		return sysError(err)
	}

	out := cmd.OutOrStdout()
	if a.flags.jsonMode {
		return writeJSON(out, report)
	}
	if err := report.WriteText(out, headerFunc(out, a.settings.color)); err != nil {
		return sysError(fmt.Errorf("write report: %w", err))
	}
	return nil
}
