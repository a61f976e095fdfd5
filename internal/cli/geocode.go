package cli

import (
	"strings"

	"github.com/gmaps-business-provider/internal/app"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"github.com/spf13/cobra"
)

func newGeocodeCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "geocode <address>",
		Short: "Find coordinates of an address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, env, func(a *app.App) error {
				points, status, err := a.GeocodingUC.GetPoints(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.GeocodeResponse{Status: status, Points: points})
			})
		},
	}
}

func newReverseCmd(env *environment) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:     "reverse",
		Short:   "Find addresses at a coordinate",
		Example: `  gmapsctl reverse --at 40.714224,-73.961452`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			point, err := parseLatLng(at)
			if err != nil {
				return err
			}

			return withApp(cmd, env, func(a *app.App) error {
				placemarks, status, err := a.GeocodingUC.GetPlacemarks(cmd.Context(), point)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), dto.PlacemarksResponse{Status: status, Placemarks: placemarks})
			})
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "lat,lon")
	_ = cmd.MarkFlagRequired("at")

	return cmd
}
