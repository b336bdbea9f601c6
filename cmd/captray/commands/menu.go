package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/ytget/captray/internal/localization"
	"github.com/ytget/captray/internal/menu"
	"github.com/ytget/captray/internal/model"
	"github.com/ytget/captray/internal/recents"
)

func (c *CLI) newMenuCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the tray menu for the current recent items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			locale, _ := cmd.Flags().GetString("locale")
			modeFlag, _ := cmd.Flags().GetString("mode")
			setup, _ := cmd.Flags().GetBool("setup")
			showIDs, _ := cmd.Flags().GetBool("ids")

			mode, err := model.ParseMode(modeFlag)
			if err != nil {
				return zerr.With(err, "mode", modeFlag)
			}

			loc, err := localization.NewLocalization()
			if err != nil {
				return err
			}

			recordings, screenshots := roots(cmd)
			loader := recents.NewLoader()
			loader.SetLogger(c.logger)
			items := loader.Scan(cmd.Context(), recordings, screenshots, false)

			projector := menu.Projector{Translator: loc, AppName: "Cap", Version: c.version}
			p := newMenuPrinter(c.out, showIDs)
			p.print(projector.Project(locale, mode, setup, items).Entries, 0)
			return nil
		},
	}
	cmd.Flags().StringP("locale", "l", localization.DefaultLanguage, "Locale used for labels")
	cmd.Flags().StringP("mode", "m", string(model.DefaultMode), "Recording mode: studio, instant or screenshot")
	cmd.Flags().Bool("setup", false, "Project the menu shown while the setup window is open")
	cmd.Flags().Bool("ids", false, "Print entry ids next to labels")
	return cmd
}

// menuPrinter renders a tree as indented lines. Styling only applies when
// the output is a terminal.
type menuPrinter struct {
	w       io.Writer
	showIDs bool

	submenuStyle  lipgloss.Style
	disabledStyle lipgloss.Style
	idStyle       lipgloss.Style
}

func newMenuPrinter(w io.Writer, showIDs bool) *menuPrinter {
	r := lipgloss.NewRenderer(w)
	return &menuPrinter{
		w:             w,
		showIDs:       showIDs,
		submenuStyle:  r.NewStyle().Bold(true),
		disabledStyle: r.NewStyle().Faint(true),
		idStyle:       r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (p *menuPrinter) print(entries []menu.Entry, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		if e.Separator {
			_, _ = fmt.Fprintf(p.w, "%s%s\n", indent, p.disabledStyle.Render("----"))
			continue
		}

		var label string
		switch {
		case !e.Enabled:
			label = p.disabledStyle.Render(e.Label + " (disabled)")
		case e.IsSubmenu():
			label = p.submenuStyle.Render(e.Label)
		default:
			label = e.Label
		}
		if p.showIDs {
			label += "  " + p.idStyle.Render("["+string(e.ID)+"]")
		}
		_, _ = fmt.Fprintln(p.w, indent+label)

		if e.IsSubmenu() {
			p.print(e.Children, depth+1)
		}
	}
}
