// Package fetch downloads raw lyric text from HTTP sources so it can be
// fed through the same import pipeline as local files.
package fetch

import (
	"context"
	"io"
	"net/http"
	neturl "net/url"
	"path"
	"time"

	"github.com/samber/oops"
	"resty.dev/v3"

	"github.com/openworship/songsheet/internal/content"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	rest *resty.Client
}

func NewClient() *Client {
	rest := resty.New().SetTimeout(defaultTimeout)

	return &Client{rest: rest}
}

func (c *Client) Close() error {
	return c.rest.Close()
}

// Text fetches the URL and returns its body as UTF-8 lyric text, with
// any byte order mark removed. Binary and non-UTF-8 payloads are
// rejected.
func (c *Client) Text(ctx context.Context, rawURL string) (string, error) {
	response, err := c.rest.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return "", oops.
			Code("FETCH_FAILED").
			With("url", rawURL).
			Wrapf(err, "fetching lyric source")
	}
	if response.StatusCode() < http.StatusOK || response.StatusCode() >= http.StatusMultipleChoices {
		return "", oops.
			Code("FETCH_FAILED").
			With("url", rawURL).
			With("status", response.StatusCode()).
			Errorf("lyric source returned non-success status %d", response.StatusCode())
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return "", oops.
			Code("FETCH_FAILED").
			With("url", rawURL).
			Wrapf(err, "reading response body")
	}

	if content.IsBinary(data) {
		return "", oops.
			Code("FETCH_INVALID_CONTENT").
			With("url", rawURL).
			Hint("Only plain-text lyric sources are supported").
			Errorf("lyric source returned binary content")
	}

	data = content.StripBOM(data)
	if !content.IsValidUTF8(data) {
		return "", oops.
			Code("FETCH_INVALID_CONTENT").
			With("url", rawURL).
			Errorf("lyric source returned non-UTF-8 content")
	}

	return string(data), nil
}

// FilenameFromURL derives a lyric filename from the URL path, falling
// back to fallbackName when the path carries no usable base name.
func FilenameFromURL(rawURL string, fallbackName string) string {
	parsed, err := neturl.Parse(rawURL)
	if err == nil {
		baseName := path.Base(parsed.Path)
		if baseName != "" && baseName != "." && baseName != "/" {
			return baseName
		}
	}

	return fallbackName + ".txt"
}
