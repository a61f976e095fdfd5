package cli

import (
	"fmt"

	"github.com/gmaps-business-provider/internal/app"
	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/worker/prefetch"
	"github.com/spf13/cobra"
)

type prefetchOptions struct {
	mapType     string
	sw          string
	ne          string
	minZoom     int
	maxZoom     int
	concurrency int
	refresh     bool
}

func newPrefetchCmd(env *environment) *cobra.Command {
	var opts prefetchOptions

	cmd := &cobra.Command{
		Use:   "prefetch",
		Short: "Warm the URL cache with all tiles of an area",
		Example: `  gmapsctl prefetch --type roadmap --sw 52.33,13.08 --ne 52.68,13.76 --min-zoom 8 --max-zoom 12
  gmapsctl prefetch --type satellite --sw -90,-180 --ne 90,180 --max-zoom 3 --cache-backend redis`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapType, err := domain.ParseMapType(opts.mapType)
			if err != nil {
				return err
			}
			sw, err := parseLatLng(opts.sw)
			if err != nil {
				return fmt.Errorf("--sw: %w", err)
			}
			ne, err := parseLatLng(opts.ne)
			if err != nil {
				return fmt.Errorf("--ne: %w", err)
			}

			area := prefetch.Area{
				MapType:   mapType,
				SouthWest: sw,
				NorthEast: ne,
				MinZoom:   opts.minZoom,
				MaxZoom:   opts.maxZoom,
			}
			// проверяем область до подключения к кешу
			if _, err := prefetch.Plan(area); err != nil {
				return err
			}

			return withApp(cmd, env, func(a *app.App) error {
				prefetcher := prefetch.NewPrefetcher(a.TileUC, opts.concurrency, a.Logger.Named("prefetch"))

				stats, err := prefetcher.Run(cmd.Context(), area, opts.refresh)
				if stats != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s z%d-%d: %d tiles (fetched %d, cached %d, missing %d, failed %d)\n",
						mapType, opts.minZoom, opts.maxZoom, stats.Total(),
						stats.Fetched.Load(), stats.FromCache.Load(), stats.Missing.Load(), stats.Failed.Load())
				}
				return err
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.mapType, "type", string(domain.MapTypeRoadmap), "map type: roadmap, satellite, hybrid, terrain")
	f.StringVar(&opts.sw, "sw", "", "lat,lon of the south-west corner")
	f.StringVar(&opts.ne, "ne", "", "lat,lon of the north-east corner")
	f.IntVar(&opts.minZoom, "min-zoom", 0, "first zoom level")
	f.IntVar(&opts.maxZoom, "max-zoom", 0, "last zoom level")
	f.IntVar(&opts.concurrency, "concurrency", 4, "parallel tile downloads")
	f.BoolVar(&opts.refresh, "refresh", false, "refetch tiles that are already cached")
	_ = cmd.MarkFlagRequired("sw")
	_ = cmd.MarkFlagRequired("ne")

	return cmd
}
