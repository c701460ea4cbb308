package commands

import (
	"github.com/anas-shakeel/bmpview/internal/menu"
	"github.com/spf13/cobra"
)

// newPrompter is replaced in tests.
var newPrompter = func() menu.Prompter { return menu.TerminalPrompter{} }

var menuCmd = &cobra.Command{
	Use:   "menu <file>",
	Short: "Explore a bitmap interactively",
	Long: `Open a menu to explore a bitmap: show its headers, look up the
color of a pixel, or draw it. The render flags of the render command
(--filter, --crop, --brightness, --contrast) are not available here; the
color filter comes from render.filter.

Press Ctrl+C at any prompt to leave.`,
	Args: cobra.ExactArgs(1),
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	img, err := loadImage(args[0])
	if err != nil {
		return err
	}

	view, err := buildView(img, viewOptions{brightness: 1, contrast: 1})
	if err != nil {
		return err
	}

	m := menu.New(img, newPrompter(), cmd.OutOrStdout(), menu.Options{
		View:      view,
		Block:     cfg.Render.Block,
		Format:    reportFormat(),
		IndexBase: cfg.Render.IndexBase,
	})
	return m.Run()
}
