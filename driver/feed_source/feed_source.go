// Package feed_source loads the configured RSS feed list. Feed URLs come
// from the environment when set, otherwise from a plain-text file with one
// URL per line. The loaded list is the only set of feeds the service will
// poll when file-only mode is on.
package feed_source

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"news-fetcher/config"
	"news-fetcher/utils/logger"
)

type FeedSource struct {
	urls []string
	set  map[string]bool
}

// NewFeedSource resolves the feed list from configuration. An empty list is
// not an error here; callers decide whether an empty list is acceptable.
func NewFeedSource(cfg *config.RSSConfig) (*FeedSource, error) {
	urls := cfg.FeedURLs
	if len(urls) == 0 && cfg.FeedsFile != "" {
		fileURLs, err := readFeedsFile(cfg.FeedsFile)
		if err != nil {
			return nil, err
		}
		urls = fileURLs
	}

	source := newFromURLs(urls)
	logger.SafeInfo("feed source loaded", "feeds", len(source.urls))
	return source, nil
}

func newFromURLs(urls []string) *FeedSource {
	source := &FeedSource{set: make(map[string]bool)}
	for _, raw := range urls {
		u := strings.TrimSpace(raw)
		if u == "" || source.set[u] {
			continue
		}
		source.set[u] = true
		source.urls = append(source.urls, u)
	}
	return source
}

// URLs returns the configured feed URLs in load order.
func (s *FeedSource) URLs() []string {
	out := make([]string, len(s.urls))
	copy(out, s.urls)
	return out
}

// Contains reports whether feedURL is one of the configured feeds.
func (s *FeedSource) Contains(feedURL string) bool {
	return s.set[strings.TrimSpace(feedURL)]
}

// Len returns the number of configured feeds.
func (s *FeedSource) Len() int {
	return len(s.urls)
}

func readFeedsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening feeds file %s: %w", path, err)
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading feeds file %s: %w", path, err)
	}
	return urls, nil
}
