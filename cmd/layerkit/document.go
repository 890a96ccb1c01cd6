package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grindlemire/layerkit"
	"github.com/grindlemire/layerkit/control"
	"github.com/grindlemire/layerkit/internal/config"
	"github.com/grindlemire/layerkit/internal/layout"
	"github.com/grindlemire/layerkit/internal/preview"
	"github.com/spf13/cobra"
)

var (
	migrateOut     string
	arrangeWidth   int
	arrangeHeight  int
	arrangeGrab    bool
	arrangeDens    float64
	arrangePreview bool
	arrangeCols    int
	arrangeRows    int
	newName        string
	newForce       bool
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a layout loads and its info fits the length limits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := control.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		if err := l.Info.Validate(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %d layers, %d widgets, %d styles\n",
			okStyle.Render("ok"), args[0], len(l.Layers), l.WidgetCount(), len(l.Styles))
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate <file>",
	Short: "Upgrade a layout to the current editor version",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := control.LoadFromFileUnchecked(args[0])
		if err != nil {
			return err
		}
		l, err := control.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		out := migrateOut
		if out == "" {
			out = args[0]
		}
		if err := control.SaveToFile(l, out); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: version %d -> %d\n", out, raw.EditorVersion, l.EditorVersion)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Print the info, layers, widgets and styles of a layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadAny(args[0])
		if err != nil {
			return err
		}
		ol := layerkit.Wrap(doc)
		w := cmd.OutOrStdout()
		info := ol.Info

		fmt.Fprintln(w, titleStyle.Render(info.Name.Translate(cfg.Locale)))
		fmt.Fprintln(w, field("author", info.Author.Translate(cfg.Locale)))
		fmt.Fprintln(w, field("description", info.Description.Translate(cfg.Locale)))
		fmt.Fprintln(w, field("version", fmt.Sprintf("%s (%d)", info.VersionName.Get(), info.VersionCode.Get())))
		fmt.Fprintln(w, field("editor version", strconv.Itoa(doc.EditorVersion)))
		if doc.EditorVersion > control.EditorVersion {
			fmt.Fprintln(w, warnStyle.Render("saved by a newer editor; shown without migration"))
		}

		t := newTable("layer", "widget", "kind", "text", "style", "events")
		for _, layer := range ol.Layers.Items() {
			name := layer.Name.Get()
			if layer.Hide.Get() {
				name += " (hidden)"
			}
			for _, wd := range layer.Widgets() {
				d := wd.Common()
				kind, events := "text", ""
				if b, ok := wd.(*layerkit.ObservableNormalData); ok {
					kind = "button"
					events = formatEvents(b.ClickEvents.Items())
				}
				t.Row(name, wd.ID(), kind, d.Text.Translate(cfg.Locale), ol.ResolveStyle(wd).Name.Get(), events)
			}
		}
		fmt.Fprintln(w, t.Render())

		st := newTable("style", "name", "light bg", "dark bg")
		for _, s := range ol.Styles.Items() {
			st.Row(s.ID(), s.Name.Get(),
				s.LightStyle.BackgroundColor.Get().Hex(), s.DarkStyle.BackgroundColor.Get().Hex())
		}
		fmt.Fprintln(w, st.Render())
		return nil
	},
}

var arrangeCmd = &cobra.Command{
	Use:   "arrange <file>",
	Short: "Print the pixel rect of every shown widget in a container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := control.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		if arrangeWidth <= 0 || arrangeHeight <= 0 {
			return errors.New("--width and --height must be positive")
		}
		density := arrangeDens
		if density <= 0 {
			density = cfg.Density
		}

		ol := layerkit.Wrap(doc)
		container := layout.Size{Width: arrangeWidth, Height: arrangeHeight}
		e := layerkit.NewEngine(layerkit.Options{Density: density, Locale: cfg.Locale})

		t := newTable("layer", "widget", "x", "y", "width", "height")
		var items []preview.Item
		for _, p := range e.Arrange(ol, container) {
			if !p.Layer.Shown(arrangeGrab) || !p.Widget.Common().Visible(arrangeGrab) {
				continue
			}
			r := p.Rect
			t.Row(p.Layer.Name.Get(), p.Widget.ID(),
				strconv.Itoa(r.X), strconv.Itoa(r.Y), strconv.Itoa(r.Width), strconv.Itoa(r.Height))
			_, button := p.Widget.(*layerkit.ObservableNormalData)
			items = append(items, preview.Item{
				Rect:   r,
				Label:  p.Widget.Common().Text.Translate(cfg.Locale),
				Button: button,
			})
		}
		if arrangePreview {
			g := preview.Render(items, container, arrangeCols, arrangeRows)
			fmt.Fprintln(cmd.OutOrStdout(), frameStyle.Render(g.String()))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		return nil
	},
}

var newCmd = &cobra.Command{
	Use:   "new <file>",
	Short: "Create an empty layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(args[0]); err == nil && !newForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", args[0])
		}
		l := control.EmptyLayout()
		l.Info.Name = control.NewTranslatable(newName)
		if err := l.Info.Validate(); err != nil {
			return err
		}
		l.Layers = append(l.Layers, control.NewLayer("default"))
		if err := control.SaveToFile(l, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", args[0])
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateOut, "output", "o", "", "write to this file instead of in place")

	arrangeCmd.Flags().IntVarP(&arrangeWidth, "width", "W", 1920, "container width in pixels")
	arrangeCmd.Flags().IntVarP(&arrangeHeight, "height", "H", 1080, "container height in pixels")
	arrangeCmd.Flags().BoolVar(&arrangeGrab, "grabbing", false, "pointer is captured by the game")
	arrangeCmd.Flags().Float64Var(&arrangeDens, "density", 0, "dp to pixel factor (default from "+config.EnvDensity+")")

	arrangeCmd.Flags().BoolVar(&arrangePreview, "preview", false, "draw the widgets instead of listing them")
	arrangeCmd.Flags().IntVar(&arrangeCols, "cols", 80, "preview width in cells")
	arrangeCmd.Flags().IntVar(&arrangeRows, "rows", 24, "preview height in cells")

	newCmd.Flags().StringVar(&newName, "name", "New layout", "layout name")
	newCmd.Flags().BoolVar(&newForce, "force", false, "overwrite an existing file")

	rootCmd.AddCommand(validateCmd, migrateCmd, inspectCmd, arrangeCmd, newCmd)
}

// loadAny loads a layout, falling back to the unchecked loader for files
// from a newer editor.
func loadAny(path string) (control.Layout, error) {
	l, err := control.LoadFromFile(path)
	if errors.Is(err, control.ErrUnsupportedVersion) {
		return control.LoadFromFileUnchecked(path)
	}
	return l, err
}

func formatEvents(evs []control.ClickEvent) string {
	parts := make([]string, len(evs))
	for i, ev := range evs {
		parts[i] = ev.Type.String() + ":" + ev.Key
	}
	return strings.Join(parts, ", ")
}
