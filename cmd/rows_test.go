package cmd

import (
	"strings"
	"testing"

	"github.com/kasuboski/nextup/pkg/sonarr"
	"github.com/oapi-codegen/nullable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpisodeRows(t *testing.T) {
	episodes := []sonarr.Episode{
		{ID: 101, EpisodeNumber: 1, Title: "Pilot", EpisodeFileID: nullable.NewNullableWithValue(501)},
		{ID: 102, EpisodeNumber: 2, Title: "Second", EpisodeFileID: nullable.NewNullableWithValue(502)},
		{ID: 103, EpisodeNumber: 3, Title: "Third", Monitored: true, EpisodeFileID: nullable.NewNullableWithValue(503)},
		{ID: 104, EpisodeNumber: 4, Title: "Fourth"},
	}

	t.Run("with current episode", func(t *testing.T) {
		rows := episodeRows(episodes, 3)
		require.Len(t, rows, 4)

		assert.Equal(t, []string{"1", "101", "Pilot", "false", "501", "delete"}, rows[0])
		assert.Equal(t, "", rows[1][5])
		assert.Equal(t, "playing", rows[2][5])
		assert.Equal(t, []string{"4", "104", "Fourth", "false", "-", "next"}, rows[3])
	})

	t.Run("without current episode", func(t *testing.T) {
		for _, row := range episodeRows(episodes, 0) {
			assert.Equal(t, "", row[5])
		}
	})
}

func TestSeriesRows(t *testing.T) {
	rows := seriesRows([]sonarr.Series{
		{ID: 7, Title: "The Office", Year: 2001, Monitored: true, Statistics: &sonarr.SeriesStatistics{EpisodeFileCount: 12, EpisodeCount: 14, SizeOnDisk: 5_000_000_000}},
		{ID: 9, Title: "Lost", Year: 2004},
	})

	assert.Equal(t, []string{"7", "The Office", "2001", "true", "12/14", "5.0 GB"}, rows[0])
	assert.Equal(t, []string{"9", "Lost", "2004", "false", "-", "-"}, rows[1])
}

func TestRenderTable(t *testing.T) {
	assert.Equal(t, "", renderTable(nil, nil, nil))

	out := renderTable([]string{"ID", "Title"}, [][]string{{"7"}}, []columnAlignment{alignRight})
	assert.Contains(t, out, "ID")
	assert.Contains(t, strings.ToUpper(out), "TITLE")
	assert.Contains(t, out, "7")
}
