package main

import (
	"context"
	"testing"

	"github.com/complexity-analyzer/engine/internal/resultcache"
	"github.com/complexity-analyzer/engine/internal/rpcapi"
)

func TestCachingServerMemoizesSolve(t *testing.T) {
	cache, err := resultcache.Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer cache.Close()

	srv := newCachingServer(rpcapi.NewServer(), cache)
	req := &rpcapi.SolveRequest{
		Recurrence: rpcapi.RecurrenceSpec{
			Variable: "n",
			Terms:    []rpcapi.TermSpec{{Coefficient: 2, ScaleFactor: 0.5}},
			Work:     rpcapi.WorkSpec{Kind: "polynomial", Degree: 1},
		},
	}

	first, err := srv.Solve(context.Background(), req)
	if err != nil {
		t.Fatalf("Solve (miss): %v", err)
	}
	if first.Outcome != "MasterCase2" {
		t.Fatalf("outcome = %q, want MasterCase2", first.Outcome)
	}

	second, err := srv.Solve(context.Background(), req)
	if err != nil {
		t.Fatalf("Solve (hit): %v", err)
	}
	if second.Outcome != first.Outcome || second.Expression != first.Expression {
		t.Errorf("cached response %+v diverges from original %+v", second, first)
	}
}
