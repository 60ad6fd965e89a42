// File: internal/tfversion/source.go
// Brief: Candidate Terraform versions from the release feed and a local list.

package tfversion

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	goversion "github.com/hashicorp/go-version"
)

// DefaultFeedURL is the Terraform release listing.
const DefaultFeedURL = "https://api.github.com/repos/hashicorp/terraform/releases"

var releasePattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// Source aggregates candidate versions from the release feed and an
// optional local versions file. Either side may be unavailable; the
// other still contributes.
type Source struct {
	Client       *http.Client
	FeedURL      string
	Token        string
	VersionsFile string
	Log          logr.Logger
}

// Versions returns the deduplicated candidate set in ascending order.
func (s *Source) Versions(ctx context.Context) ([]*goversion.Version, error) {
	seen := map[string]struct{}{}
	var out []*goversion.Version
	add := func(raw string) {
		if !releasePattern.MatchString(raw) {
			return
		}
		if _, dup := seen[raw]; dup {
			return
		}
		v, err := goversion.NewVersion(raw)
		if err != nil {
			return
		}
		seen[raw] = struct{}{}
		out = append(out, v)
	}

	feed, err := s.fetchReleases(ctx)
	if err != nil {
		s.Log.Info("failed to fetch releases from feed", "error", err.Error())
	}
	for _, tag := range feed {
		add(tag)
	}

	if s.VersionsFile != "" {
		file, err := s.readVersionsFile()
		if err != nil {
			s.Log.Info("failed to read versions file", "path", s.VersionsFile, "error", err.Error())
		}
		for _, raw := range file {
			add(raw)
		}
	}

	sort.Sort(goversion.Collection(out))
	return out, nil
}

func (s *Source) fetchReleases(ctx context.Context) ([]string, error) {
	url := s.FeedURL
	if url == "" {
		url = DefaultFeedURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "tfstack-version-fetcher")
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
		req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release feed returned %s", resp.Status)
	}
	var releases []struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&releases); err != nil {
		return nil, fmt.Errorf("decode release feed: %w", err)
	}
	tags := make([]string, 0, len(releases))
	for _, r := range releases {
		tags = append(tags, strings.TrimPrefix(r.TagName, "v"))
	}
	return tags, nil
}

func (s *Source) readVersionsFile() ([]string, error) {
	f, err := os.Open(s.VersionsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines, scanner.Err()
}
