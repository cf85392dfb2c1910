package sonarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	mhttp "github.com/kasuboski/nextup/pkg/http"
	"github.com/kasuboski/nextup/pkg/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	apiKeyHeader = "X-Api-Key"

	// EpisodeSearchCommand asks sonarr to search indexers for the given episodes
	EpisodeSearchCommand = "EpisodeSearch"
)

var ErrSeriesNotFound = errors.New("series not found")

type Client struct {
	http    mhttp.HTTPClient
	baseURL *url.URL
}

// New returns a sonarr v3 api client. uri is the sonarr base url without the /api/v3 suffix.
func New(client mhttp.HTTPClient, uri, apiKey string) (*Client, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid sonarr uri: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid sonarr uri %q: scheme and host are required", uri)
	}

	return &Client{
		http:    mhttp.NewHeaderClient(mhttp.WithHTTPClient(client), mhttp.WithHeader(apiKeyHeader, apiKey)),
		baseURL: u.JoinPath("api", "v3"),
	}, nil
}

// ListSeries returns every series sonarr knows about
func (c *Client) ListSeries(ctx context.Context) ([]Series, error) {
	b, err := c.do(ctx, http.MethodGet, nil, nil, isOK, "series")
	if err != nil {
		return nil, err
	}

	var series []Series
	err = mhttp.DecodeJSON(b, &series)
	return series, err
}

// ListEpisodes returns the episodes of one season of a series
func (c *Client) ListEpisodes(ctx context.Context, seriesID, seasonNumber int) ([]Episode, error) {
	q := url.Values{}
	q.Set("seriesId", strconv.Itoa(seriesID))
	q.Set("seasonNumber", strconv.Itoa(seasonNumber))

	b, err := c.do(ctx, http.MethodGet, q, nil, isOK, "episode")
	if err != nil {
		return nil, err
	}

	var episodes []Episode
	err = mhttp.DecodeJSON(b, &episodes)
	return episodes, err
}

// SearchEpisodes queues an EpisodeSearch command. Sonarr answers 201 when the command was created.
func (c *Client) SearchEpisodes(ctx context.Context, episodeIDs []int) error {
	body := CommandRequest{
		Name:       EpisodeSearchCommand,
		EpisodeIDs: episodeIDs,
	}

	_, err := c.do(ctx, http.MethodPost, nil, body, isCreated, "command")
	return err
}

// MonitorEpisodes marks episodes as monitored
func (c *Client) MonitorEpisodes(ctx context.Context, episodeIDs []int) error {
	body := MonitorRequest{
		EpisodeIDs: episodeIDs,
		Monitored:  true,
	}

	_, err := c.do(ctx, http.MethodPut, nil, body, mhttp.IsSuccess, "episode", "monitor")
	return err
}

// DeleteEpisodeFile removes an episode file from disk and from sonarr
func (c *Client) DeleteEpisodeFile(ctx context.Context, episodeFileID int) error {
	_, err := c.do(ctx, http.MethodDelete, nil, nil, mhttp.IsSuccess, "episodeFile", strconv.Itoa(episodeFileID))
	return err
}

// FindSeriesByTitle returns the first series whose title equals title ignoring case.
// It is an exact match: "The Office" does not match "The Office (US)".
func FindSeriesByTitle(series []Series, title string) (Series, bool) {
	caser := cases.Lower(language.Und)
	want := caser.String(title)

	for _, s := range series {
		if caser.String(s.Title) == want {
			return s, true
		}
	}

	return Series{}, false
}

func isOK(code int) bool {
	return code == http.StatusOK
}

func isCreated(code int) bool {
	return code == http.StatusCreated
}

func (c *Client) do(ctx context.Context, method string, query url.Values, body any, accept func(int) bool, path ...string) ([]byte, error) {
	log := logger.FromCtx(ctx)
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	u := c.baseURL.JoinPath(path...)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	log.Debugw("sonarr do", "method", method, "url", u.String())

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "*/*")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	return mhttp.ReadResponse(resp, accept)
}
