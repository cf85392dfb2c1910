package cmd

import (
	"errors"
	"fmt"

	"github.com/kasuboski/nextup/pkg/plex"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "show the episode currently playing in plex",
	Long:  `show the episode currently playing in plex`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, ctx := setup()

		session, err := newPlexClient(cfg, log).CurrentEpisode(ctx)
		if errors.Is(err, plex.ErrNoActiveSession) {
			fmt.Fprintln(cmd.OutOrStdout(), "nothing playing")
			return
		}
		if err != nil {
			log.Fatalw("failed to read plex sessions", zap.Error(err))
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"Series", "Season", "Episode", "Title", "User", "Watched"},
			[][]string{{
				session.Series,
				fmt.Sprint(session.Season),
				fmt.Sprint(session.Episode),
				session.Title,
				session.User,
				fmt.Sprintf("%.1f%%", session.Progress()),
			}},
			[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignRight},
		))
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
