package manager

import (
	"context"
	"errors"
	"fmt"

	"github.com/kasuboski/nextup/config"
	mhttp "github.com/kasuboski/nextup/pkg/http"
	"github.com/kasuboski/nextup/pkg/logger"
	"github.com/kasuboski/nextup/pkg/machine"
	"github.com/kasuboski/nextup/pkg/sonarr"
	"go.uber.org/zap"
)

type Manager struct {
	sessions SessionReader
	pvr      PVR
	config   config.Sync
	dryRun   bool
}

type Option func(*Manager)

// WithDryRun logs the actions that would be dispatched instead of sending them
func WithDryRun(dryRun bool) Option {
	return func(m *Manager) {
		m.dryRun = dryRun
	}
}

func New(sessions SessionReader, pvr PVR, cfg config.Sync, opts ...Option) *Manager {
	m := &Manager{
		sessions: sessions,
		pvr:      pvr,
		config:   cfg,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Sync runs one pass: read the playing episode, find it in sonarr and act on the rest of its season.
// Upstream failures and lookup misses end the pass in a terminal state without an error.
// Only a malformed upstream response is returned as an error.
func (m *Manager) Sync(ctx context.Context) (State, error) {
	log := logger.FromCtx(ctx)
	pipeline := newPipeline()

	session, err := m.sessions.CurrentEpisode(ctx)
	if err != nil {
		if errors.Is(err, mhttp.ErrMalformedResponse) {
			return pipeline.State(), fmt.Errorf("failed to read plex sessions: %w", err)
		}
		log.Infow("no active sessions found in plex or unable to retrieve current activity", "reason", err.Error())
		return advance(pipeline, StateNoSession)
	}
	if _, err := advance(pipeline, StateSessionFound); err != nil {
		return pipeline.State(), err
	}

	log = log.With("series", session.Series, "season", session.Season, "episode", session.Episode)
	ctx = logger.WithCtx(ctx, log)
	log.Infow("found episode playing in plex",
		"title", session.Title,
		"user", session.User,
		"progress", fmt.Sprintf("%.1f%%", session.Progress()),
		"watched_percent", m.config.WatchedPercent,
	)

	seriesID, err := m.ResolveSeries(ctx, session.Series)
	if err != nil {
		if errors.Is(err, mhttp.ErrMalformedResponse) {
			return pipeline.State(), fmt.Errorf("failed to list sonarr series: %w", err)
		}
		log.Infow("could not resolve series in sonarr", "reason", err.Error())
		return advance(pipeline, StateSeriesUnresolved)
	}
	if _, err := advance(pipeline, StateSeriesResolved); err != nil {
		return pipeline.State(), err
	}

	episodes, err := m.FetchEpisodes(ctx, seriesID, session.Season)
	if err != nil {
		return pipeline.State(), fmt.Errorf("failed to list sonarr episodes: %w", err)
	}
	if len(episodes) == 0 {
		log.Infow("no episodes found in sonarr", "series_id", seriesID)
		return advance(pipeline, StateNoEpisodes)
	}
	if _, err := advance(pipeline, StateCatalogFetched); err != nil {
		return pipeline.State(), err
	}

	switch m.config.GetOption {
	case config.GetEpisode:
		m.handleEpisode(ctx, episodes, session.Episode)
		return advance(pipeline, StateEpisodeHandled)
	case config.GetSeason:
		m.handleSeason(ctx, episodes, session.Episode)
		return advance(pipeline, StateSeasonHandled)
	default:
		log.Warnw("no valid get option configured", "get_option", m.config.GetOption)
		return advance(pipeline, StateMisconfigured)
	}
}

func advance(pipeline *machine.StateMachine[State], s State) (State, error) {
	err := pipeline.ToState(s)
	return pipeline.State(), err
}

// ResolveSeries returns the sonarr id of the first series whose title matches ignoring case
func (m *Manager) ResolveSeries(ctx context.Context, title string) (int, error) {
	series, err := m.pvr.ListSeries(ctx)
	if err != nil {
		return 0, err
	}

	s, ok := sonarr.FindSeriesByTitle(series, title)
	if !ok {
		return 0, fmt.Errorf("%w: %q", sonarr.ErrSeriesNotFound, title)
	}

	return s.ID, nil
}

// FetchEpisodes returns the episodes of a season. A failed request yields an empty list;
// only a malformed response is reported as an error.
func (m *Manager) FetchEpisodes(ctx context.Context, seriesID, season int) ([]sonarr.Episode, error) {
	log := logger.FromCtx(ctx)

	episodes, err := m.pvr.ListEpisodes(ctx, seriesID, season)
	if err != nil {
		if errors.Is(err, mhttp.ErrMalformedResponse) {
			return nil, err
		}
		log.Warnw("failed to list episodes", zap.Int("series_id", seriesID), zap.Error(err))
		return []sonarr.Episode{}, nil
	}

	return episodes, nil
}

func (m *Manager) handleEpisode(ctx context.Context, episodes []sonarr.Episode, current int) {
	log := logger.FromCtx(ctx)

	next, ok := NextEpisode(episodes, current)
	if !ok {
		log.Info("no next episode in season")
	} else {
		switch m.config.ActionOption {
		case config.ActionSearch:
			m.TriggerSearch(ctx, next.ID)
		case config.ActionMonitor:
			m.SetMonitored(ctx, []int{next.ID})
		default:
			log.Warnw("no valid action option configured", "action_option", m.config.ActionOption)
		}
	}

	if m.config.AlreadyWatched != config.WatchedDelete {
		return
	}

	fileIDs := EpisodeFilesToDelete(episodes, current)
	if len(fileIDs) == 0 {
		log.Debug("no watched episode files to delete")
		return
	}
	m.DeleteEpisodeFiles(ctx, fileIDs)
}

func (m *Manager) handleSeason(ctx context.Context, episodes []sonarr.Episode, current int) {
	remaining := RemainingEpisodes(episodes, current)
	if len(remaining) == 0 {
		logger.FromCtx(ctx).Info("no remaining episodes in season")
		return
	}

	m.SetMonitored(ctx, episodeIDs(remaining))
}
