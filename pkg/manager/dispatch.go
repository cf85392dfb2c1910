package manager

import (
	"context"

	"github.com/kasuboski/nextup/pkg/logger"
	"go.uber.org/zap"
)

// TriggerSearch asks sonarr to search for an episode. Failures are logged and not retried.
func (m *Manager) TriggerSearch(ctx context.Context, episodeID int) bool {
	log := logger.FromCtx(ctx).With("episode_id", episodeID)

	if m.dryRun {
		log.Info("dry run: would send episode search command to sonarr")
		return true
	}

	if err := m.pvr.SearchEpisodes(ctx, []int{episodeID}); err != nil {
		log.Errorw("failed to send episode search command to sonarr", zap.Error(err))
		return false
	}

	log.Info("episode search command sent to sonarr")
	return true
}

// SetMonitored marks episodes as monitored. Failures are logged and not retried.
func (m *Manager) SetMonitored(ctx context.Context, episodeIDs []int) bool {
	log := logger.FromCtx(ctx).With("episode_ids", episodeIDs)

	if m.dryRun {
		log.Info("dry run: would set episodes to monitored")
		return true
	}

	if err := m.pvr.MonitorEpisodes(ctx, episodeIDs); err != nil {
		log.Errorw("failed to set episodes to monitored", zap.Error(err))
		return false
	}

	log.Info("episodes set to monitored")
	return true
}

// DeleteEpisodeFiles deletes each file independently and returns how many were deleted.
// Zero ids are skipped without a request.
func (m *Manager) DeleteEpisodeFiles(ctx context.Context, episodeFileIDs []int) int {
	deleted := 0

	for _, id := range episodeFileIDs {
		if id <= 0 {
			continue
		}

		log := logger.FromCtx(ctx).With("episode_file_id", id)
		if m.dryRun {
			log.Info("dry run: would delete episode file")
			deleted++
			continue
		}

		if err := m.pvr.DeleteEpisodeFile(ctx, id); err != nil {
			log.Errorw("failed to delete episode file", zap.Error(err))
			continue
		}

		log.Info("deleted episode file")
		deleted++
	}

	return deleted
}
