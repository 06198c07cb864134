package cli

import (
	"github.com/spf13/cobra"

	"hoopstats/internal/stats"
)

func newPlayersCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List the players in the stat table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := o.service(cmd.Context())
			if err != nil {
				return err
			}
			return renderPlayers(cmd.OutOrStdout(), svc.Players(), o.output)
		},
	}
}

func newPlayerCommand(o *rootOptions) *cobra.Command {
	var seasonType string
	cmd := &cobra.Command{
		Use:   "player <name>",
		Short: "Show one player's per-season averages",
		Long: `Show every row of one player (exact, case-sensitive name match).
With --season-type only rows of that season type are shown, in table order.
An unknown player or season type prints no rows.`,
		Example: `  hoopstats player "Kobe Bryant"
  hoopstats player "Lebron James" --season-type Playoffs -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := o.service(cmd.Context())
			if err != nil {
				return err
			}
			var rows []stats.StatRow
			if cmd.Flags().Changed("season-type") {
				rows = svc.PlayerSeasonStats(args[0], stats.SeasonType(seasonType))
			} else {
				rows = svc.PlayerStats(args[0])
			}
			return renderRows(cmd.OutOrStdout(), rows, o.output)
		},
	}
	cmd.Flags().StringVar(&seasonType, "season-type", "", `"Regular Season" or "Playoffs"`)
	_ = cmd.RegisterFlagCompletionFunc("season-type", completeSeasonTypes)
	return cmd
}

func newSeasonCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "season <season type>",
		Short:   "Show every player's rows for a season type, sorted by season",
		Example: `  hoopstats season "Regular Season" -o csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := o.service(cmd.Context())
			if err != nil {
				return err
			}
			return renderRows(cmd.OutOrStdout(), svc.SeasonStats(stats.SeasonType(args[0])), o.output)
		},
		ValidArgsFunction: completeSeasonTypes,
	}
}

func completeSeasonTypes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, 0, 2)
	for _, st := range stats.SeasonTypes() {
		out = append(out, string(st))
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
