package plex

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	mhttp "github.com/kasuboski/nextup/pkg/http"
	"github.com/kasuboski/nextup/pkg/logger"
)

const (
	tokenHeader = "X-Plex-Token"
	typeEpisode = "episode"
)

// ErrNoActiveSession means plex reported nothing usable as the episode currently playing
var ErrNoActiveSession = errors.New("no active episode session")

type Client struct {
	http    mhttp.HTTPClient
	baseURL *url.URL
}

// New returns a plex client that authenticates every request with token
func New(client mhttp.HTTPClient, uri, token string) (*Client, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid plex uri: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid plex uri %q: scheme and host are required", uri)
	}

	return &Client{
		http:    mhttp.NewHeaderClient(mhttp.WithHTTPClient(client), mhttp.WithHeader(tokenHeader, token)),
		baseURL: u,
	}, nil
}

// MediaContainer is the root element of the /status/sessions document
type MediaContainer struct {
	Size   int     `xml:"size,attr"`
	Videos []Video `xml:"Video"`
}

// Video is one playback entry. Index fields are kept as text so a missing attribute can be told apart from zero.
type Video struct {
	Type             string `xml:"type,attr"`
	Title            string `xml:"title,attr"`
	GrandparentTitle string `xml:"grandparentTitle,attr"`
	ParentIndex      string `xml:"parentIndex,attr"`
	Index            string `xml:"index,attr"`
	ViewOffset       int64  `xml:"viewOffset,attr"`
	Duration         int64  `xml:"duration,attr"`
	User             *User  `xml:"User"`
}

type User struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
}

// Session is the episode currently being played
type Session struct {
	Series     string
	Season     int
	Episode    int
	Title      string
	User       string
	ViewOffset time.Duration
	Duration   time.Duration
}

// Progress returns how much of the episode has been watched as a percentage
func (s Session) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.ViewOffset) / float64(s.Duration) * 100
}

func (s Session) String() string {
	return fmt.Sprintf("%s S%02dE%02d", s.Series, s.Season, s.Episode)
}

// CurrentEpisode returns the first episode found in the active sessions.
// Concurrent sessions are not distinguished, only the first episode entry is considered.
func (c *Client) CurrentEpisode(ctx context.Context) (Session, error) {
	log := logger.FromCtx(ctx)

	u := c.baseURL.JoinPath("status", "sessions")
	log.Debugw("plex sessions", "url", u.Redacted())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Session{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, err
	}

	b, err := mhttp.ReadResponse(resp, func(code int) bool { return code == http.StatusOK })
	if err != nil {
		return Session{}, err
	}

	var container MediaContainer
	if err := mhttp.DecodeXML(b, &container); err != nil {
		return Session{}, err
	}

	return FirstEpisode(container)
}

// FirstEpisode picks the first entry of type episode. Entries of other types are skipped.
// If that entry lacks a series title, season or episode index there is no session, later entries are not consulted.
func FirstEpisode(container MediaContainer) (Session, error) {
	for _, v := range container.Videos {
		if v.Type != typeEpisode {
			continue
		}

		if v.GrandparentTitle == "" || v.ParentIndex == "" || v.Index == "" {
			return Session{}, ErrNoActiveSession
		}

		season, err := strconv.Atoi(v.ParentIndex)
		if err != nil {
			return Session{}, fmt.Errorf("%w: season index %q: %w", mhttp.ErrMalformedResponse, v.ParentIndex, err)
		}

		episode, err := strconv.Atoi(v.Index)
		if err != nil {
			return Session{}, fmt.Errorf("%w: episode index %q: %w", mhttp.ErrMalformedResponse, v.Index, err)
		}

		s := Session{
			Series:     v.GrandparentTitle,
			Season:     season,
			Episode:    episode,
			Title:      v.Title,
			ViewOffset: time.Duration(v.ViewOffset) * time.Millisecond,
			Duration:   time.Duration(v.Duration) * time.Millisecond,
		}
		if v.User != nil {
			s.User = v.User.Title
		}

		return s, nil
	}

	return Session{}, ErrNoActiveSession
}
