/*
Copyright © 2026 the glidercheck authors.
This file is part of glidercheck.

glidercheck is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

glidercheck is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with glidercheck.  If not, see <http://www.gnu.org/licenses/>.
*/

package glidercheck

import (
	"context"
	_ "embed" // for the built-in sea names table
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ctessum/requestcache"
	"github.com/golang/groupcache/singleflight"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/glidercheck/cloud"
	"golang.org/x/net/context/ctxhttp"
)

// BuiltinSeaNames is the location of the NODC sea names list that is
// compiled into the program.
const BuiltinSeaNames = "builtin:seanames"

//go:embed data/seanames.txt
var seaNames string

var builtinTables = map[string]string{
	BuiltinSeaNames: seaNames,
}

// Table is a controlled vocabulary: the set of accepted values.
type Table map[string]struct{}

// ParseTable creates a table from line-delimited text. Lines are trimmed
// and blank lines are ignored.
func ParseTable(text string) Table {
	t := make(Table)
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			t[line] = struct{}{}
		}
	}
	return t
}

// Contains returns whether v is in the table.
func (t Table) Contains(v string) bool {
	_, ok := t[v]
	return ok
}

// ContainsFold is like Contains but compares without regard to case.
func (t Table) ContainsFold(v string) bool {
	if t.Contains(v) {
		return true
	}
	for k := range t {
		if strings.EqualFold(k, v) {
			return true
		}
	}
	return false
}

// FetchError is returned when a table cannot be retrieved.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("glidercheck: fetching %s: %v", e.URL, e.Err)
}

// A Fetcher retrieves the text content at a location.
type Fetcher interface {
	Fetch(ctx context.Context, loc string) (string, error)
}

// FetchFunc adapts a function to the Fetcher interface.
type FetchFunc func(ctx context.Context, loc string) (string, error)

// Fetch implements Fetcher.
func (f FetchFunc) Fetch(ctx context.Context, loc string) (string, error) { return f(ctx, loc) }

// HTTPFetcher fetches http and https URLs, blob storage locations
// (file://, gs://, s3://) and local file paths.
type HTTPFetcher struct {
	// Client is the HTTP client to use. If nil, http.DefaultClient is used.
	Client *http.Client

	// Retries is the number of times a failed HTTP request is retried.
	Retries uint64

	Log logrus.FieldLogger
}

// Fetch implements Fetcher.
func (h *HTTPFetcher) Fetch(ctx context.Context, loc string) (string, error) {
	switch {
	case strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://"):
		return h.fetchHTTP(ctx, loc)
	case cloud.IsBlob(loc):
		b, err := cloud.ReadBlob(ctx, loc)
		return string(b), err
	default:
		b, err := ioutil.ReadFile(os.ExpandEnv(loc))
		return string(b), err
	}
}

func (h *HTTPFetcher) fetchHTTP(ctx context.Context, loc string) (string, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	var text string
	// A response with a client error status is final and is not retried.
	var final error
	op := func() error {
		resp, err := ctxhttp.Get(ctx, client, loc)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			final = fmt.Errorf("%s", resp.Status)
			return nil
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s", resp.Status)
		}
		b, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		text = string(b)
		return nil
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), h.Retries), ctx)
	err := backoff.RetryNotify(op, b, func(err error, d time.Duration) {
		if h.Log != nil {
			h.Log.WithFields(logrus.Fields{"url": loc, "retry_in": d}).WithError(err).Warn("glidercheck table fetch failed")
		}
	})
	if err != nil {
		return "", err
	}
	if final != nil {
		return "", final
	}
	return text, nil
}

// maxTables bounds the table cache. Only a handful of tables are in use
// at any time so in practice nothing is evicted.
const maxTables = 256

// TableProvider retrieves controlled vocabularies and keeps them for its
// lifetime, so each location is fetched at most once per successful
// retrieval. It is safe for concurrent use.
type TableProvider struct {
	fetcher Fetcher
	cache   *requestcache.Cache
	flight  singleflight.Group

	Log logrus.FieldLogger
}

// NewTableProvider returns a provider that uses f to retrieve tables.
// Locations starting with "builtin:" are served from tables compiled
// into the program and never reach f.
func NewTableProvider(f Fetcher) *TableProvider {
	p := &TableProvider{fetcher: f, Log: logrus.StandardLogger()}
	p.cache = requestcache.NewCache(p.process, runtime.GOMAXPROCS(-1), requestcache.Memory(maxTables))
	return p
}

// Table returns the table at loc.
func (p *TableProvider) Table(ctx context.Context, loc string) (Table, error) {
	if text, ok := builtinTables[loc]; ok {
		return ParseTable(text), nil
	}
	if strings.HasPrefix(loc, "builtin:") {
		return nil, &FetchError{URL: loc, Err: fmt.Errorf("no built-in table")}
	}
	r, err := p.cache.NewRequest(ctx, loc, loc).Result()
	if err != nil {
		return nil, err
	}
	return r.(Table), nil
}

func (p *TableProvider) process(ctx context.Context, payload interface{}) (interface{}, error) {
	loc := payload.(string)
	return p.flight.Do(loc, func() (interface{}, error) {
		p.Log.WithField("url", loc).Debug("glidercheck fetching table")
		text, err := p.fetcher.Fetch(ctx, loc)
		if err != nil {
			return nil, &FetchError{URL: loc, Err: err}
		}
		return ParseTable(text), nil
	})
}

// JoinURL resolves name against base, e.g. a table file name against
// the directory holding a set of tables.
func JoinURL(base, name string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("glidercheck: invalid base URL %q: %v", base, err)
	}
	n, err := url.Parse(name)
	if err != nil {
		return "", fmt.Errorf("glidercheck: invalid table name %q: %v", name, err)
	}
	return b.ResolveReference(n).String(), nil
}
