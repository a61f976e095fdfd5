package cli

import (
	"github.com/gmaps-business-provider/internal/app"
	"github.com/gmaps-business-provider/internal/domain"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"github.com/spf13/cobra"
)

type routeOptions struct {
	from          string
	to            string
	byAddress     bool
	walking       bool
	avoidHighways bool
	overview      bool
}

func newRouteCmd(env *environment) *cobra.Command {
	var opts routeOptions

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Build a route between two points or addresses",
		Example: `  gmapsctl route --from 52.52,13.405 --to 52.39,13.06
  gmapsctl route --address --from "Berlin" --to "Potsdam" --walking`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.byAddress {
				return withApp(cmd, env, func(a *app.App) error {
					route, status, err := a.RoutingUC.GetRouteByAddress(cmd.Context(), dto.AddressRouteRequest{
						Start:         opts.from,
						End:           opts.to,
						Walking:       opts.walking,
						AvoidHighways: opts.avoidHighways,
						Overview:      opts.overview,
					})
					return printRoute(cmd, route, status, err)
				})
			}

			start, err := parseLatLng(opts.from)
			if err != nil {
				return err
			}
			end, err := parseLatLng(opts.to)
			if err != nil {
				return err
			}

			return withApp(cmd, env, func(a *app.App) error {
				route, status, err := a.RoutingUC.GetRoute(cmd.Context(), dto.RouteRequest{
					Start:         dto.Point{Lat: start.Lat, Lon: start.Lon},
					End:           dto.Point{Lat: end.Lat, Lon: end.Lon},
					Walking:       opts.walking,
					AvoidHighways: opts.avoidHighways,
					Overview:      opts.overview,
				})
				return printRoute(cmd, route, status, err)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "start: lat,lon or address with --address")
	f.StringVar(&opts.to, "to", "", "destination: lat,lon or address with --address")
	f.BoolVar(&opts.byAddress, "address", false, "treat --from/--to as addresses")
	f.BoolVar(&opts.walking, "walking", false, "walking instead of driving")
	f.BoolVar(&opts.avoidHighways, "avoid-highways", false, "avoid highways")
	f.BoolVar(&opts.overview, "overview", false, "return the smoothed overview polyline")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func printRoute(cmd *cobra.Command, route *domain.MapRoute, status domain.GeoCoderStatusCode, err error) error {
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), dto.RouteResponse{Status: status, Route: route})
}
