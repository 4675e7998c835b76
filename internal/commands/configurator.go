package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"kicks-lab/internal/colorhex"
	"kicks-lab/internal/store"
)

// Actions are the app operations the console can trigger besides store edits.
type Actions interface {
	Export()
	ResetCamera()
	SetShowFPS(show bool)
	SetGridVisible(visible bool)
}

// ErrNotHex is returned when a color argument is not a hex color.
var ErrNotHex = errors.New("not a hex color")

// RegisterConfigurator adds the shoe configurator commands to r and makes bare hex lines
// recolor the selected region.
func RegisterConfigurator(r *Registry, s *store.Store, a Actions) {
	r.Register("color", "--region R --hex #rrggbb: set a region's color", func(fs *pflag.FlagSet) func([]string) error {
		region := fs.String("region", "", "region name")
		hex := fs.String("hex", "", "hex color")
		return func([]string) error {
			reg, ok := store.ParseRegion(*region)
			if !ok {
				return fmt.Errorf("color: %w: %q", store.ErrUnknownRegion, *region)
			}
			v, ok := colorhex.Normalize(*hex)
			if !ok {
				return fmt.Errorf("color: %w: %q", ErrNotHex, *hex)
			}
			return s.SetColor(reg, v)
		}
	})

	r.Register("select", "R | --none: select a region or clear the selection", func(fs *pflag.FlagSet) func([]string) error {
		none := fs.Bool("none", false, "clear the selection")
		return func(args []string) error {
			if *none {
				s.ClearSelection()
				return nil
			}
			if len(args) != 1 {
				return fmt.Errorf("select: want one region, one of %s", regionList())
			}
			return s.Select(store.Region(args[0]))
		}
	})

	r.Register("colors", "print every region's color", func(*pflag.FlagSet) func([]string) error {
		return func([]string) error {
			colors := s.Colors()
			sel, hasSel := s.Selection()
			for _, reg := range store.Regions {
				mark := ""
				if hasSel && reg == sel {
					mark = " *"
				}
				fmt.Fprintf(r.Out(), "%-8s %s%s\n", reg, colors[reg], mark)
			}
			return nil
		}
	})

	r.Register("export", "save screenshot.png after the camera reset", func(*pflag.FlagSet) func([]string) error {
		return func([]string) error {
			a.Export()
			return nil
		}
	})

	r.Register("reset", "reset the camera", func(*pflag.FlagSet) func([]string) error {
		return func([]string) error {
			a.ResetCamera()
			return nil
		}
	})

	r.Register("fps", "--show | --hide: toggle the FPS overlay", toggle("fps", a.SetShowFPS))
	r.Register("grid", "--show | --hide: toggle the editor grid", toggle("grid", a.SetGridVisible))

	r.Fallback = func(line string) (bool, error) {
		v, ok := colorhex.Normalize(line)
		if !ok {
			return false, nil
		}
		if !s.SetSelectedColor(v) {
			fmt.Fprintln(r.Out(), "no region selected")
		}
		return true, nil
	}
}

func toggle(name string, set func(bool)) Build {
	return func(fs *pflag.FlagSet) func([]string) error {
		show := fs.Bool("show", false, "show")
		hide := fs.Bool("hide", false, "hide")
		return func([]string) error {
			if *show == *hide {
				return fmt.Errorf("%s: pass exactly one of --show or --hide", name)
			}
			set(*show)
			return nil
		}
	}
}

func regionList() string {
	names := make([]string, len(store.Regions))
	for i, r := range store.Regions {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
