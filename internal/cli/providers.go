package cli

import (
	"github.com/gmaps-business-provider/internal/app"
	"github.com/gmaps-business-provider/internal/usecase/dto"
	"github.com/spf13/cobra"
)

func newProvidersCmd(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the Google Maps for Business map providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, env, func(a *app.App) error {
				var out []dto.ProviderResponse
				for _, p := range a.Registry.All() {
					out = append(out, p.Describe())
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}
}
