package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/nextup/pkg/sonarr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "list the series sonarr knows about",
	Long:  `list the series sonarr knows about`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, ctx := setup()

		series, err := newSonarrClient(cfg, log).ListSeries(ctx)
		if err != nil {
			log.Fatalw("failed to list series", zap.Error(err))
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"ID", "Title", "Year", "Monitored", "Episodes", "Size"},
			seriesRows(series),
			[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight, alignRight},
		))
	},
}

func seriesRows(series []sonarr.Series) [][]string {
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		episodes, size := "-", "-"
		if s.Statistics != nil {
			episodes = fmt.Sprintf("%d/%d", s.Statistics.EpisodeFileCount, s.Statistics.EpisodeCount)
			size = humanize.Bytes(uint64(max(s.Statistics.SizeOnDisk, 0)))
		}

		rows = append(rows, []string{
			fmt.Sprint(s.ID),
			s.Title,
			fmt.Sprint(s.Year),
			fmt.Sprint(s.Monitored),
			episodes,
			size,
		})
	}
	return rows
}

func init() {
	rootCmd.AddCommand(seriesCmd)
}
