// Command complexityd serves the engine's query surface over gRPC
// (SPEC_FULL.md §F.2). Grounded on cmd/lsp/main.go's plain log.SetFlags/
// log.SetOutput setup, extended with a listen address flag and graceful
// shutdown on SIGINT/SIGTERM, the way a long-running daemon needs rather
// than the one-shot LSP process it's modeled on.
package main

import (
	"flag"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	"github.com/complexity-analyzer/engine/internal/config"
	"github.com/complexity-analyzer/engine/internal/resultcache"
	"github.com/complexity-analyzer/engine/internal/rpcapi"
)

func main() {
	addr := flag.String("addr", ":7443", "address to listen on")
	configPath := flag.String("config", "complexity.yaml", "path to an optional tunables override file")
	cachePath := flag.String("cache", "complexityd-cache.db", "path to the Solve-result memoization database (':memory:' to disable persistence)")
	flag.Parse()

	log.SetFlags(0)
	log.SetOutput(os.Stderr)

	if err := config.Load(*configPath); err != nil {
		log.Fatalf("complexityd: %v", err)
	}

	cache, err := resultcache.Open(*cachePath)
	if err != nil {
		log.Fatalf("complexityd: %v", err)
	}
	defer cache.Close()

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		log.Fatalf("complexityd: listen on %s: %v", *addr, err)
	}

	srv := grpc.NewServer()
	rpcapi.RegisterComplexityServiceServer(srv, newCachingServer(rpcapi.NewServer(), cache))

	done := make(chan struct{})
	go func() {
		log.Printf("complexityd: serving on %s", *addr)
		if err := srv.Serve(lis); err != nil {
			log.Printf("complexityd: serve: %v", err)
		}
		close(done)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
		log.Print("complexityd: shutting down")
		srv.GracefulStop()
	case <-done:
	}
}
