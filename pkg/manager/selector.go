package manager

import (
	"github.com/kasuboski/nextup/pkg/sonarr"
)

// NextEpisode returns the episode with the smallest episode number greater than current
func NextEpisode(episodes []sonarr.Episode, current int) (sonarr.Episode, bool) {
	var next sonarr.Episode
	found := false

	for _, ep := range episodes {
		if ep.EpisodeNumber <= current {
			continue
		}
		if !found || ep.EpisodeNumber < next.EpisodeNumber {
			next = ep
			found = true
		}
	}

	return next, found
}

// RemainingEpisodes returns every episode after current, in catalog order
func RemainingEpisodes(episodes []sonarr.Episode, current int) []sonarr.Episode {
	var remaining []sonarr.Episode
	for _, ep := range episodes {
		if ep.EpisodeNumber > current {
			remaining = append(remaining, ep)
		}
	}
	return remaining
}

// EpisodeFilesToDelete returns the file ids of episodes numbered below current-1.
// The current episode and the one right before it are kept.
func EpisodeFilesToDelete(episodes []sonarr.Episode, current int) []int {
	var ids []int
	for _, ep := range episodes {
		if ep.EpisodeNumber >= current-1 {
			continue
		}
		if id := ep.FileID(); id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func episodeIDs(episodes []sonarr.Episode) []int {
	ids := make([]int, len(episodes))
	for i, ep := range episodes {
		ids[i] = ep.ID
	}
	return ids
}
