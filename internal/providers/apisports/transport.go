package apisports

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLeagueID(id int) int {
	if id <= 0 {
		return defaultLeagueID
	}
	return id
}

func resolveSeason(season string) string {
	if season == "" {
		return defaultSeason
	}
	return season
}

// pacedDoer enforces a minimum interval between upstream requests so a full
// ingestion run stays under the API quota. Each call reserves the next slot
// before waiting, which keeps the spacing correct under concurrent use.
type pacedDoer struct {
	next     httpDoer
	interval time.Duration

	mu   sync.Mutex
	last time.Time
}

func newPacedDoer(next httpDoer, interval time.Duration) httpDoer {
	if interval <= 0 {
		return next
	}
	return &pacedDoer{next: next, interval: interval}
}

func (p *pacedDoer) Do(req *http.Request) (*http.Response, error) {
	now := time.Now()

	p.mu.Lock()
	slot := p.last.Add(p.interval)
	if slot.Before(now) {
		slot = now
	}
	p.last = slot
	p.mu.Unlock()

	if wait := slot.Sub(now); wait > 0 {
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}
	}

	return p.next.Do(req)
}
