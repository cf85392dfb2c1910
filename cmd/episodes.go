package cmd

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/kasuboski/nextup/pkg/manager"
	"github.com/kasuboski/nextup/pkg/sonarr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var currentEpisode int

var episodesCmd = &cobra.Command{
	Use:   "episodes <series> <season>",
	Short: "list a season's episodes and what sync would do with them",
	Long:  `List the episodes of a season in sonarr. With --current, mark the next episode and the files sync would delete.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, ctx := setup()

		season, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatalw("season must be a number", zap.String("season", args[1]))
		}

		m := manager.New(nil, newSonarrClient(cfg, log), cfg.Sync)

		seriesID, err := m.ResolveSeries(ctx, args[0])
		if err != nil {
			log.Fatalw("failed to resolve series", zap.Error(err))
		}

		episodes, err := m.FetchEpisodes(ctx, seriesID, season)
		if err != nil {
			log.Fatalw("failed to list episodes", zap.Error(err))
		}

		slices.SortFunc(episodes, func(a, b sonarr.Episode) int {
			return a.EpisodeNumber - b.EpisodeNumber
		})

		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"Episode", "ID", "Title", "Monitored", "File", "Sync"},
			episodeRows(episodes, currentEpisode),
			[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignRight, alignLeft},
		))
	},
}

// episodeRows marks the next episode and the files cleanup would remove when current is set
func episodeRows(episodes []sonarr.Episode, current int) [][]string {
	next, hasNext := 0, false
	var cleanup []int
	if current > 0 {
		var ep sonarr.Episode
		ep, hasNext = manager.NextEpisode(episodes, current)
		next = ep.ID
		cleanup = manager.EpisodeFilesToDelete(episodes, current)
	}

	rows := make([][]string, 0, len(episodes))
	for _, ep := range episodes {
		action := ""
		switch {
		case current > 0 && ep.EpisodeNumber == current:
			action = "playing"
		case hasNext && ep.ID == next:
			action = "next"
		case ep.FileID() > 0 && slices.Contains(cleanup, ep.FileID()):
			action = "delete"
		}

		file := "-"
		if id := ep.FileID(); id > 0 {
			file = fmt.Sprint(id)
		}

		rows = append(rows, []string{
			fmt.Sprint(ep.EpisodeNumber),
			fmt.Sprint(ep.ID),
			ep.Title,
			fmt.Sprint(ep.Monitored),
			file,
			action,
		})
	}
	return rows
}

func init() {
	episodesCmd.Flags().IntVar(&currentEpisode, "current", 0, "episode number treated as currently playing")
	rootCmd.AddCommand(episodesCmd)
}
