package cmd

import (
	"errors"

	"github.com/google/uuid"
	"github.com/kasuboski/nextup/pkg/lock"
	"github.com/kasuboski/nextup/pkg/logger"
	"github.com/kasuboski/nextup/pkg/manager"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRun bool

// syncCmd runs the pipeline once
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "act on the episode currently playing in plex",
	Long:  `Find the episode currently playing in plex and search, monitor or clean up its season in sonarr`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, ctx := setup()

		log = log.With("run_id", uuid.NewString())
		ctx = logger.WithCtx(ctx, log)

		l := lock.New(cfg.Lock.Path)
		release, err := l.Acquire()
		if errors.Is(err, lock.ErrLocked) {
			log.Warnw("skipping sync", zap.Error(err))
			return
		}
		if err != nil {
			log.Fatalw("failed to acquire lock", zap.String("path", l.Path()), zap.Error(err))
		}
		defer func() {
			if err := release(); err != nil {
				log.Warnw("failed to release lock", zap.Error(err))
			}
		}()

		m := manager.New(newPlexClient(cfg, log), newSonarrClient(cfg, log), cfg.Sync, manager.WithDryRun(dryRun))

		state, err := m.Sync(ctx)
		if err != nil {
			log.Errorw("sync failed", zap.String("state", string(state)), zap.Error(err))
			_ = release()
			log.Fatal("unrecoverable upstream response")
		}

		log.Infow("sync finished", "state", state, "dry_run", dryRun)
	},
}

func init() {
	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "log the actions sync would take without changing sonarr")
	rootCmd.AddCommand(syncCmd)
}
