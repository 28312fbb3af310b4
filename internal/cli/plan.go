package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/phasemap/phasemap/pkg/roadmap"
)

// newPlanCmd creates the plan command for inspecting roadmap plans.
// With no argument it inspects the builtin roadmap.
func newPlanCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "plan [plan.toml]",
		Short: "Inspect a roadmap plan",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			p, err := loadPlan(input)
			if err != nil {
				return err
			}

			if interactive {
				return browsePlan(p)
			}

			printKeyValue("Title", p.Title)
			if p.Subtitle != "" {
				printKeyValue("Subtitle", p.Subtitle)
			}
			printStats(p.Stats())
			for ri, row := range p.Rows {
				printInfo("Row %d", ri+1)
				for _, ph := range row.Phases {
					printDetail("%s [%s] (%d items)", ph.Title, ph.Color, len(ph.Items))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse phases interactively")
	cmd.AddCommand(newPlanExportCmd())

	return cmd
}

// newPlanExportCmd creates the plan export subcommand, which writes the
// builtin roadmap as an editable TOML template.
func newPlanExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the builtin plan as a TOML template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := roadmap.Save(output, roadmap.Builtin()); err != nil {
				return err
			}
			printSuccess("Plan exported")
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "plan.toml", "output file")

	return cmd
}

// browsePlan opens the interactive phase browser.
func browsePlan(p roadmap.Plan) error {
	model := NewPhaseListModel(p)
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("interactive browser: %w", err)
	}
	return nil
}
