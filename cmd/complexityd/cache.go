package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/complexity-analyzer/engine/internal/resultcache"
	"github.com/complexity-analyzer/engine/internal/rpcapi"
)

// cachingServer wraps an rpcapi.ComplexityServiceServer, memoizing Solve
// results in a resultcache.Cache. This is the host-side memoization
// spec.md §5 assigns to the host, not the core: rpcapi.Server and
// everything it calls into stays cache-unaware, and this type is the
// only thing in the repo that imports both rpcapi and resultcache.
type cachingServer struct {
	rpcapi.ComplexityServiceServer
	cache *resultcache.Cache
}

func newCachingServer(inner rpcapi.ComplexityServiceServer, cache *resultcache.Cache) *cachingServer {
	return &cachingServer{ComplexityServiceServer: inner, cache: cache}
}

func (s *cachingServer) Solve(ctx context.Context, req *rpcapi.SolveRequest) (*rpcapi.SolveResponse, error) {
	canonical, err := json.Marshal(req.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("complexityd: encoding cache key: %w", err)
	}
	key := resultcache.Key(string(canonical))

	if hit, ok, err := s.cache.Get(key); err == nil && ok {
		return &rpcapi.SolveResponse{
			RequestID:        uuid.NewString(),
			Outcome:          hit.Outcome,
			Expression:       hit.Expression,
			CriticalExponent: hit.CriticalExponent,
			Reasons:          hit.Reasons,
		}, nil
	}

	resp, err := s.ComplexityServiceServer.Solve(ctx, req)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Put(key, resultcache.Entry{
		Outcome:          resp.Outcome,
		Expression:       resp.Expression,
		CriticalExponent: resp.CriticalExponent,
		Reasons:          resp.Reasons,
		CachedAt:         time.Now(),
	})
	return resp, nil
}
