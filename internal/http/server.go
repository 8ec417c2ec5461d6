// Package http is the JSON view glue over the ledger service. Handlers
// parse requests, call the service and serialize plain records; no
// financial logic lives here.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"klagtrack/internal/cache"
	"klagtrack/internal/core"
	"klagtrack/internal/services"
)

type Server struct {
	http.Server
	svc *services.LedgerService

	// Derived summaries are memoized per month key; any ledger write
	// purges both caches, since one entry can shift several windows.
	monthCache *cache.LRUCache[core.MonthlySummary]
	chartCache *cache.LRUCache[core.ChartSeries]

	cacheManager *cache.Manager
	shutdownOnce sync.Once
	started      time.Time
}

func NewServer(addr string, svc *services.LedgerService) *Server {
	s := &Server{
		svc:          svc,
		monthCache:   cache.NewLRUCache[core.MonthlySummary](64, 5*time.Minute),
		chartCache:   cache.NewLRUCache[core.ChartSeries](64, 5*time.Minute),
		cacheManager: cache.NewManager(),
		started:      time.Now(),
	}
	s.cacheManager.Register(s.monthCache)
	s.cacheManager.Register(s.chartCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/entry", s.handleEntry)
	mux.HandleFunc("/api/entry/copy-previous", s.handleCopyPrevious)
	mux.HandleFunc("/api/summary/day", s.handleDaySummary)
	mux.HandleFunc("/api/summary/week", s.handleWeekSummary)
	mux.HandleFunc("/api/summary/month", s.handleMonthSummary)
	mux.HandleFunc("/api/overview", s.handleOverview)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/goal", s.handleGoal)
	mux.HandleFunc("/api/chart", s.handleChart)
	mux.HandleFunc("/api/export", s.handleExport)
	mux.HandleFunc("/api/import", s.handleImport)

	s.Server = http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

// Shutdown stops the cache sweep and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
	})
	return s.Server.Shutdown(ctx)
}

// invalidateDerived drops memoized summaries after any ledger mutation.
func (s *Server) invalidateDerived() {
	s.monthCache.Purge()
	s.chartCache.Purge()
}

// cachedMonthlySummary returns the month summary through the cache.
func (s *Server) cachedMonthlySummary(year, month int) core.MonthlySummary {
	key := core.DayKey(year, month, 1)[:7]
	if sum, ok := s.monthCache.Get(key); ok {
		return sum
	}
	sum := s.svc.MonthlySummary(year, month)
	s.monthCache.Set(key, sum)
	return sum
}

// cachedChart returns the month chart series through the cache.
func (s *Server) cachedChart(year, month int) core.ChartSeries {
	key := core.DayKey(year, month, 1)[:7]
	if series, ok := s.chartCache.Get(key); ok {
		return series
	}
	series := s.svc.MonthlyChart(year, month)
	s.chartCache.Set(key, series)
	return series
}
