package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hoopstats/internal/chart"
	"hoopstats/internal/stats"
)

type chartFlags struct {
	stat       string
	seasonType string
	outDir     string
}

func newChartCommand(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Plot a stat across seasons",
	}
	cmd.AddCommand(newChartPlayerCommand(o))
	cmd.AddCommand(newChartSeasonCommand(o))
	return cmd
}

func newChartPlayerCommand(o *rootOptions) *cobra.Command {
	f := &chartFlags{}
	cmd := &cobra.Command{
		Use:     "player <name>",
		Short:   "Plot one player's average stat per season",
		Example: `  hoopstats chart player "Lebron James" --stat PTS --season-type "Regular Season"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stat, err := stats.ParseStat(f.stat)
			if err != nil {
				return err
			}
			svc, err := o.service(cmd.Context())
			if err != nil {
				return err
			}
			art, err := svc.PlotPlayerStat(cmd.Context(), args[0], stat, stats.SeasonType(f.seasonType))
			if err != nil {
				return err
			}
			return o.writeArtifact(cmd, art, f.outDir)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.seasonType, "season-type", string(stats.RegularSeason), `"Regular Season" or "Playoffs"`)
	_ = cmd.RegisterFlagCompletionFunc("season-type", completeSeasonTypes)
	return cmd
}

func newChartSeasonCommand(o *rootOptions) *cobra.Command {
	f := &chartFlags{}
	cmd := &cobra.Command{
		Use:     "season <season type>",
		Short:   "Plot every player's average stat for a season type",
		Example: `  hoopstats chart season Playoffs --stat AST`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stat, err := stats.ParseStat(f.stat)
			if err != nil {
				return err
			}
			svc, err := o.service(cmd.Context())
			if err != nil {
				return err
			}
			art, err := svc.CompareAllPlayers(cmd.Context(), stat, stats.SeasonType(args[0]))
			if err != nil {
				return err
			}
			return o.writeArtifact(cmd, art, f.outDir)
		},
		ValidArgsFunction: completeSeasonTypes,
	}
	f.register(cmd)
	return cmd
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.stat, "stat", string(stats.StatPoints), "Stat to plot (PTS|RB|AST)")
	cmd.Flags().StringVar(&f.outDir, "out-dir", "", "Override chart.output_dir")
	_ = cmd.RegisterFlagCompletionFunc("stat", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, 3)
		for _, s := range stats.Stats() {
			out = append(out, string(s))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *rootOptions) writeArtifact(cmd *cobra.Command, art chart.Artifact, outDir string) error {
	if outDir == "" {
		outDir = o.cfg.Chart.OutputDir
	}
	path, err := art.WriteFile(outDir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", path)
	return nil
}
