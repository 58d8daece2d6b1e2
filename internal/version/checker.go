// Package version reports whether a newer folio release is published.
package version

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

const (
	releasesURL  = "https://api.github.com/repos/studiowebux/folio/releases/latest"
	checkTimeout = 5 * time.Second
)

// Release is the subset of the GitHub release payload we read
type Release struct {
	TagName string `json:"tag_name"`
	Name    string `json:"name"`
	HTMLURL string `json:"html_url"`
}

// Update is the outcome of a release check
type Update struct {
	Available bool
	Latest    string
	URL       string
}

// Checker queries a releases endpoint
type Checker struct {
	URL    string
	Client *http.Client
}

// NewChecker returns a Checker for the published folio releases
func NewChecker() *Checker {
	return &Checker{
		URL:    releasesURL,
		Client: &http.Client{Timeout: checkTimeout},
	}
}

// Latest fetches the latest published release
func (c *Checker) Latest(ctx context.Context, userAgent string) (Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Release{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return Release{}, fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Release{}, fmt.Errorf("failed to decode response: %w", err)
	}
	return release, nil
}

// Check compares the latest release against current
func (c *Checker) Check(ctx context.Context, current string) (Update, error) {
	release, err := c.Latest(ctx, "folio/"+current)
	if err != nil {
		return Update{}, err
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	newer, err := IsNewer(latest, current)
	if err != nil {
		return Update{}, err
	}
	return Update{Available: newer, Latest: latest, URL: release.HTMLURL}, nil
}

// IsNewer reports whether latest is a higher semantic version than current.
// Pre-releases sort below their release; build metadata is ignored.
func IsNewer(latest, current string) (bool, error) {
	l, err := semver.NewVersion(latest)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", latest, err)
	}
	c, err := semver.NewVersion(current)
	if err != nil {
		return false, fmt.Errorf("invalid current version %q: %w", current, err)
	}
	return l.GreaterThan(c), nil
}
