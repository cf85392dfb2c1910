package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"reflect"
	"testing"
	"time"

	"github.com/kasuboski/nextup/pkg/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewHeaderClient(t *testing.T) {
	type args struct {
		opts []ClientOption
	}
	tests := []struct {
		name string
		args args
		want *HeaderClient
	}{
		{
			name: "default",
			args: args{
				opts: []ClientOption{},
			},
			want: &HeaderClient{
				client:  http.DefaultClient,
				headers: http.Header{},
			},
		},
		{
			name: "zero timeout keeps default client",
			args: args{
				opts: []ClientOption{WithTimeout(0)},
			},
			want: &HeaderClient{
				client:  http.DefaultClient,
				headers: http.Header{},
			},
		},
		{
			name: "custom",
			args: args{
				opts: []ClientOption{
					WithTimeout(time.Second * 5),
					WithHeader("X-Api-Key", "secret"),
				},
			},
			want: &HeaderClient{
				client: &http.Client{
					Timeout: time.Second * 5,
				},
				headers: http.Header{
					"X-Api-Key": []string{"secret"},
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewHeaderClient(tt.args.opts...); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewHeaderClient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHeaderClient_Do(t *testing.T) {
	t.Run("sets headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).DoAndReturn(func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "my-token", r.Header.Get("X-Plex-Token"))
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("ok")),
			}, nil
		})

		client := NewHeaderClient(WithHTTPClient(mhttp), WithHeader("X-Plex-Token", "my-token"))
		resp, err := client.Do(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("request header wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodPut, "https://example.com", nil)
		require.NoError(t, err)
		req.Header.Set("Accept", "*/*")

		mhttp.EXPECT().Do(req).DoAndReturn(func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, []string{"*/*"}, r.Header.Values("Accept"))
			return &http.Response{StatusCode: http.StatusAccepted, Body: http.NoBody}, nil
		})

		client := NewHeaderClient(WithHTTPClient(mhttp), WithHeader("Accept", "application/json"))
		_, err = client.Do(req)
		require.NoError(t, err)
	})

	t.Run("error during request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		req, err := http.NewRequest(http.MethodGet, "https://example.com", nil)
		require.NoError(t, err)

		mhttp.EXPECT().Do(req).Return(nil, errors.New("http error")).Times(1)
		client := NewHeaderClient(WithHTTPClient(mhttp))
		resp, err := client.Do(req)
		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(http.StatusOK))
	assert.True(t, IsSuccess(http.StatusNoContent))
	assert.False(t, IsSuccess(http.StatusMultipleChoices))
	assert.False(t, IsSuccess(http.StatusNotFound))
	assert.False(t, IsSuccess(199))
}

func TestReadResponse(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		resp := &http.Response{
			StatusCode: http.StatusCreated,
			Body:       io.NopCloser(bytes.NewBufferString(`{"id":1}`)),
		}
		b, err := ReadResponse(resp, IsSuccess)
		require.NoError(t, err)
		assert.Equal(t, `{"id":1}`, string(b))
	})

	t.Run("rejected", func(t *testing.T) {
		resp := &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(bytes.NewBufferString("bad key")),
		}
		_, err := ReadResponse(resp, IsSuccess)

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
		assert.Equal(t, "status code not ok: 401 Unauthorized: bad key", statusErr.Error())
	})
}

func TestDecode(t *testing.T) {
	var v struct {
		ID int `json:"id"`
	}
	assert.NoError(t, DecodeJSON([]byte(`{"id":3}`), &v))
	assert.Equal(t, 3, v.ID)

	err := DecodeJSON([]byte(`{"id":`), &v)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	var x struct {
		Size int `xml:"size,attr"`
	}
	assert.NoError(t, DecodeXML([]byte(`<MediaContainer size="2"></MediaContainer>`), &x))
	assert.Equal(t, 2, x.Size)
	assert.ErrorIs(t, DecodeXML([]byte(`<MediaContainer`), &x), ErrMalformedResponse)
}
