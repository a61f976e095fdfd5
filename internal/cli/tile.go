package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/gmaps-business-provider/internal/app"
	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/pkg/tilemath"
	"github.com/spf13/cobra"
)

// ErrTileNotAvailable - изображение не удалось получить
var ErrTileNotAvailable = errors.New("tile not available")

type tileOptions struct {
	mapType string
	zoom    int
	x       int
	y       int
	at      string
	out     string
	refresh bool
}

func newTileCmd(env *environment) *cobra.Command {
	var opts tileOptions

	cmd := &cobra.Command{
		Use:   "tile",
		Short: "Download one 256x256 PNG tile",
		Example: `  gmapsctl tile --type satellite --z 12 --x 2200 --y 1343
  gmapsctl tile --type hybrid --z 15 --at 52.52,13.405 --out berlin.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapType, err := domain.ParseMapType(opts.mapType)
			if err != nil {
				return err
			}

			x, y := opts.x, opts.y
			if opts.at != "" {
				point, err := parseLatLng(opts.at)
				if err != nil {
					return err
				}
				x, y = tilemath.LatLngToTile(point, opts.zoom)
			}
			if !tilemath.ValidTile(x, y, opts.zoom) {
				return fmt.Errorf("invalid tile %d/%d/%d", opts.zoom, x, y)
			}

			out := opts.out
			if out == "" {
				out = fmt.Sprintf("%s_%d_%d_%d.png", mapType, opts.zoom, x, y)
			}

			return withApp(cmd, env, func(a *app.App) error {
				p, err := a.Registry.Get(mapType)
				if err != nil {
					return err
				}

				tile, err := p.GetTile(cmd.Context(), x, y, opts.zoom, opts.refresh)
				if err != nil {
					return err
				}
				if tile == nil {
					return ErrTileNotAvailable
				}

				if err := os.WriteFile(out, tile.Data, 0o644); err != nil {
					return fmt.Errorf("failed to write tile: %w", err)
				}

				source := "network"
				if tile.FromCache {
					source = "cache"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d/%d/%d -> %s (%d bytes, %s)\n",
					mapType, opts.zoom, x, y, out, len(tile.Data), source)
				return nil
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.mapType, "type", string(domain.MapTypeRoadmap), "map type: roadmap, satellite, hybrid, terrain")
	f.IntVar(&opts.zoom, "z", 0, "zoom level (0-22)")
	f.IntVar(&opts.x, "x", 0, "tile x")
	f.IntVar(&opts.y, "y", 0, "tile y")
	f.StringVar(&opts.at, "at", "", "lat,lon of a point inside the tile (replaces --x/--y)")
	f.StringVar(&opts.out, "out", "", "output file (default <type>_<z>_<x>_<y>.png)")
	f.BoolVar(&opts.refresh, "refresh", false, "skip the URL cache lookup")
	cmd.MarkFlagsMutuallyExclusive("at", "x")
	cmd.MarkFlagsMutuallyExclusive("at", "y")

	return cmd
}
