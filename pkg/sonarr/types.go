package sonarr

import (
	"github.com/oapi-codegen/nullable"
)

type Series struct {
	ID         int               `json:"id"`
	Title      string            `json:"title"`
	Year       int               `json:"year,omitempty"`
	Monitored  bool              `json:"monitored"`
	Statistics *SeriesStatistics `json:"statistics,omitempty"`
}

type SeriesStatistics struct {
	SeasonCount       int   `json:"seasonCount"`
	EpisodeFileCount  int   `json:"episodeFileCount"`
	EpisodeCount      int   `json:"episodeCount"`
	TotalEpisodeCount int   `json:"totalEpisodeCount"`
	SizeOnDisk        int64 `json:"sizeOnDisk"`
}

// Episode is a sonarr episode record. EpisodeFileID is absent or zero when nothing is on disk.
type Episode struct {
	ID            int                    `json:"id"`
	SeriesID      int                    `json:"seriesId"`
	SeasonNumber  int                    `json:"seasonNumber"`
	EpisodeNumber int                    `json:"episodeNumber"`
	Title         string                 `json:"title,omitempty"`
	Monitored     bool                   `json:"monitored"`
	HasFile       bool                   `json:"hasFile"`
	EpisodeFileID nullable.Nullable[int] `json:"episodeFileId,omitempty"`
}

// FileID returns the episode file id or zero when there is no file
func (e Episode) FileID() int {
	id, err := e.EpisodeFileID.Get()
	if err != nil {
		return 0
	}
	return id
}

type CommandRequest struct {
	Name       string `json:"name"`
	EpisodeIDs []int  `json:"episodeIds"`
}

type MonitorRequest struct {
	EpisodeIDs []int `json:"episodeIds"`
	Monitored  bool  `json:"monitored"`
}
