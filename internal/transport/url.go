package transport

import (
	"net/url"
	"regexp"
	"strings"

	apierrors "github.com/openrobot/openrobot-go/internal/errors"
)

const (
	// DefaultBaseURL is the canonical prefix every relative target is joined to.
	DefaultBaseURL = "https://api.openrobot.xyz/api"

	// LyricsHost serves lyric lookups outside the main API host.
	LyricsHost = "lyrics.ayomerdeka.com"

	// legacyPathPrefix is stripped from relative targets; the base URL already ends in it.
	legacyPathPrefix = "api/"
)

var absoluteURL = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// resolveTarget turns target into the absolute URL that goes on the wire.
// Absolute targets must point at an allowed host unless skipValidation is set.
func (c *Client) resolveTarget(target string, skipValidation bool) (string, error) {
	if absoluteURL.MatchString(target) {
		if skipValidation || c.isAllowed(target) {
			return target, nil
		}
		return "", &apierrors.URLError{URL: target}
	}

	path := strings.TrimPrefix(target, "/")
	path = strings.TrimPrefix(path, legacyPathPrefix)

	return c.baseURL + "/" + path, nil
}

func (c *Client) isAllowed(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if !strings.HasPrefix(u.Path, "/") {
		return false
	}
	_, ok := c.allowedHosts[strings.ToLower(u.Host)]
	return ok
}

// withQuery merges query into the query string already present on rawURL.
func withQuery(rawURL string, query url.Values) (string, error) {
	if len(query) == 0 {
		return rawURL, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	q := u.Query()
	for k, vals := range query {
		for _, v := range vals {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
