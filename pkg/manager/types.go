package manager

import (
	"context"

	"github.com/kasuboski/nextup/pkg/machine"
	"github.com/kasuboski/nextup/pkg/plex"
	"github.com/kasuboski/nextup/pkg/sonarr"
)

//go:generate mockgen -package mocks -destination mocks/mock_clients.go github.com/kasuboski/nextup/pkg/manager SessionReader,PVR

// SessionReader reports the episode currently playing on the media server
type SessionReader interface {
	CurrentEpisode(ctx context.Context) (plex.Session, error)
}

// PVR is the subset of the sonarr api the manager reads and mutates
type PVR interface {
	ListSeries(ctx context.Context) ([]sonarr.Series, error)
	ListEpisodes(ctx context.Context, seriesID, seasonNumber int) ([]sonarr.Episode, error)
	SearchEpisodes(ctx context.Context, episodeIDs []int) error
	MonitorEpisodes(ctx context.Context, episodeIDs []int) error
	DeleteEpisodeFile(ctx context.Context, episodeFileID int) error
}

type State string

const (
	StateStarted          State = "started"
	StateNoSession        State = "no-session"
	StateSessionFound     State = "session-found"
	StateSeriesUnresolved State = "series-unresolved"
	StateSeriesResolved   State = "series-resolved"
	StateNoEpisodes       State = "no-episodes"
	StateCatalogFetched   State = "catalog-fetched"
	StateEpisodeHandled   State = "episode-handled"
	StateSeasonHandled    State = "season-handled"
	StateMisconfigured    State = "misconfigured"
)

func newPipeline() *machine.StateMachine[State] {
	return machine.New(StateStarted,
		machine.From(StateStarted).To(StateNoSession, StateSessionFound),
		machine.From(StateSessionFound).To(StateSeriesUnresolved, StateSeriesResolved),
		machine.From(StateSeriesResolved).To(StateNoEpisodes, StateCatalogFetched),
		machine.From(StateCatalogFetched).To(StateEpisodeHandled, StateSeasonHandled, StateMisconfigured),
	)
}
