package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ornatree/pkg/placement"
)

// viewCommand opens the interactive terminal tree.
func (c *CLI) viewCommand() *cobra.Command {
	var selected string

	cmd := &cobra.Command{
		Use:   "view [catalog.toml]",
		Short: "Explore the tree in the terminal",
		Long: `Explore the tree in the terminal.

Arrow keys (or h/j/k/l) move between ornaments, enter opens or closes the
detail panel, esc closes it, o shows the project link and q quits. Clicking
an ornament toggles it too.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), args, selected)
		},
	}
	cmd.Flags().StringVarP(&selected, "selected", "s", "", "open this project's panel on start")
	return cmd
}

func (c *CLI) runView(ctx context.Context, args []string, selected string) error {
	cat, _, err := c.loadCatalog(args)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	m := NewTreeModel(cat, placement.NewGenerator(placement.Default()), c.config().Palette)
	if selected != "" {
		i, ok := cat.IndexOf(selected)
		if !ok {
			_, err := cat.Find(selected)
			return err
		}
		m.Cursor = i
		m.Selection.Select(selected)
		m.recompose()
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run terminal view: %w", err)
	}

	if fm, ok := final.(TreeModel); ok {
		if id, ok := fm.Selection.ID(); ok {
			printInfo("Last selected: %s", id)
		}
	}
	return nil
}
