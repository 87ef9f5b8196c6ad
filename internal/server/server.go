package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/analog-clock/internal/config"
	"github.com/tartampluch/analog-clock/internal/engine"
	"github.com/tartampluch/analog-clock/internal/export"
)

// cacheItem stores one rendered representation and its HTTP caching metadata.
type cacheItem struct {
	data         []byte
	contentType  string
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// feed is the pair of documents rendered from one snapshot.
type feed struct {
	state *cacheItem
	ical  *cacheItem
}

// SnapshotServer serves the latest clock snapshot on localhost.
// It is read-only: requests never reach the controller.
type SnapshotServer struct {
	// cache uses atomic.Pointer for lock-free reads. Clients poll often and
	// the live clock updates once per second, so readers never contend with
	// the writer.
	cache atomic.Pointer[feed]
	clock engine.Clock
	Port  string
}

// NewSnapshotServer creates a new instance of the server.
func NewSnapshotServer(port string, clock engine.Clock) *SnapshotServer {
	return &SnapshotServer{
		Port:  port,
		clock: clock,
	}
}

// Handler returns the HTTP routes of the feed.
func (s *SnapshotServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteState, s.handle(func(f *feed) *cacheItem { return f.state }))
	mux.HandleFunc(config.RouteICal, s.handle(func(f *feed) *cacheItem { return f.ical }))
	return mux
}

// Start runs the HTTP server and blocks until the context is cancelled.
// Port is read once; change it only while the server is stopped.
func (s *SnapshotServer) Start(ctx context.Context) error {
	port := s.Port
	if port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update renders the snapshot and atomically replaces the served content.
func (s *SnapshotServer) Update(snap engine.Snapshot) error {
	now := s.clock.Now()

	stateData, err := export.JSON(snap, now)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrExport, err)
	}
	icalData, err := export.ICal(snap, now)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrExport, err)
	}

	lastMod := now.UTC().Format(http.TimeFormat)
	f := &feed{
		state: newCacheItem(stateData, config.MimeJSON, lastMod),
		ical:  newCacheItem(icalData, config.MimeTextCalendar, lastMod),
	}

	// Readers see either the old or the new pair, never a mix.
	s.cache.Store(f)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(stateData)+len(icalData),
		config.LogKeyETag, f.state.etag,
	)
	return nil
}

func newCacheItem(data []byte, contentType, lastModified string) *cacheItem {
	hash := sha256.Sum256(data)
	return &cacheItem{
		data:         data,
		contentType:  contentType,
		etag:         fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:])),
		lastModified: lastModified,
	}
}

// handle serves one representation with HTTP caching support.
func (s *SnapshotServer) handle(pick func(*feed) *cacheItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// 1. Method Validation
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set(config.HeaderAllow, config.AllowedMethods)
			http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
			return
		}

		// 2. Readiness Check
		f := s.cache.Load()
		if f == nil {
			w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
			http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
			return
		}
		item := pick(f)

		// 3. Set Response Headers
		w.Header().Set(config.HeaderContentType, item.contentType)
		w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
		w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
		w.Header().Set(config.HeaderETag, item.etag)
		w.Header().Set(config.HeaderLastModified, item.lastModified)

		// 4. Conditional Headers
		// If-Modified-Since is ignored when If-None-Match is present: several
		// edits can share one Last-Modified second (RFC 9110 §13.2.2).
		match := r.Header.Get(config.HeaderIfNoneMatch)
		if match != "" {
			if match == item.etag {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		} else if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
			if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
				if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
					if !serverTime.After(clientTime) {
						w.WriteHeader(http.StatusNotModified)
						return
					}
				}
			}
		}

		// 5. Serve Content
		if r.Method == http.MethodGet {
			if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
				slog.Error(config.ErrWriteResp,
					config.LogKeyComponent, config.CompServer,
					config.LogKeyRoute, r.URL.Path,
					config.LogKeyError, err,
				)
			}
		}
	}
}
