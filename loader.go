package electionmaps

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/ctessum/requestcache"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Loader fetches GeoJSON datasets over HTTP. Every attempt is bounded by
// Timeout, failed attempts are retried up to Retries times, and concurrent
// requests for the same URL share one fetch.
type Loader struct {
	Client        *http.Client
	Timeout       time.Duration
	Retries       uint64
	RetryInterval time.Duration
	Log           logrus.FieldLogger

	once  sync.Once
	cache *requestcache.Cache
}

// NewLoader returns a loader with default limits.
func NewLoader() *Loader {
	return &Loader{
		Client:        http.DefaultClient,
		Timeout:       30 * time.Second,
		Retries:       3,
		RetryInterval: 500 * time.Millisecond,
	}
}

func (l *Loader) log() logrus.FieldLogger {
	if l.Log == nil {
		return logrus.StandardLogger()
	}
	return l.Log
}

func (l *Loader) client() *http.Client {
	if l.Client == nil {
		return http.DefaultClient
	}
	return l.Client
}

// Load returns the feature collection at url.
func (l *Loader) Load(ctx context.Context, url string) (*geojson.FeatureCollection, error) {
	l.once.Do(func() {
		l.cache = requestcache.NewCache(l.fetch, 4, requestcache.Deduplicate(), requestcache.Memory(32))
	})
	r, err := l.cache.NewRequest(ctx, url, url).Result()
	if err != nil {
		return nil, err
	}
	return r.(*geojson.FeatureCollection), nil
}

// LoadAll fetches all urls concurrently. It succeeds only if every fetch
// does; the first failure cancels the rest.
func (l *Loader) LoadAll(ctx context.Context, urls []string) ([]*geojson.FeatureCollection, error) {
	g, gctx := errgroup.WithContext(ctx)
	out := make([]*geojson.FeatureCollection, len(urls))
	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			fc, err := l.Load(gctx, u)
			if err != nil {
				return err
			}
			out[i] = fc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (l *Loader) fetch(ctx context.Context, req interface{}) (interface{}, error) {
	url := req.(string)
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	var fc *geojson.FeatureCollection
	// permanent holds a client error or undecodable body; it is not retried.
	var permanent error
	op := func() error {
		actx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		r, err := http.NewRequestWithContext(actx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := l.client().Do(r)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			permanent = fmt.Errorf("%s: %s", url, resp.Status)
			return nil
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%s: %s", url, resp.Status)
		}
		if fc, err = DecodeCollection(resp.Body); err != nil {
			permanent = err
		}
		return nil
	}
	interval := l.RetryInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), l.Retries), ctx)
	err := backoff.RetryNotify(op, b, func(err error, d time.Duration) {
		l.log().WithError(err).WithField("url", url).Warnf("fetch failed; retrying in %v", d)
	})
	if err == nil {
		err = permanent
	}
	if err != nil {
		return nil, fmt.Errorf("electionmaps: loading %s: %w", url, err)
	}
	l.log().WithFields(logrus.Fields{"url": url, "features": len(fc.Features)}).Debug("loaded dataset")
	return fc, nil
}
