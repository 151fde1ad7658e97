// Command complexityctl runs a YAML recurrence/system fixture (the
// same shape internal/recurrence parses for tests) through the engine,
// either in-process or against a running complexityd over gRPC.
//
// Grounded on pkg/cli/entry.go's single-command-dispatch main and
// internal/evaluator/builtins_term.go's detectColorLevel, simplified
// here to a binary colorize/don't-colorize decision gated on
// NO_COLOR and github.com/mattn/go-isatty the same way.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"gopkg.in/yaml.v3"

	"github.com/complexity-analyzer/engine/internal/cexpr"
	"github.com/complexity-analyzer/engine/internal/recurrence"
	"github.com/complexity-analyzer/engine/internal/rpcapi"
	"github.com/complexity-analyzer/engine/internal/theorem"
)

// fixtureFile is the top-level shape of a scenario file: exactly one
// of Recurrence or System is expected to be set, mirroring
// internal/recurrence's two input shapes (a single recurrence vs. a
// mutually-recursive system).
type fixtureFile struct {
	Recurrence *recurrence.Spec       `yaml:"recurrence,omitempty"`
	System     *recurrence.SystemSpec `yaml:"system,omitempty"`
}

func main() {
	addr := flag.String("addr", "", "complexityd address to query over gRPC; solved in-process when empty")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: complexityctl [-addr host:port] <fixture.yaml>")
		os.Exit(2)
	}

	rec, err := loadFixture(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	var result solution
	if *addr != "" {
		result, err = solveRemote(*addr, rec)
	} else {
		result, err = solveLocal(rec)
	}
	if err != nil {
		fatal(err)
	}

	render(result)
}

// solution is the CLI's own render-ready shape, unifying the in-process
// *theorem.Result and the RPC SolveResponse so render doesn't need to
// know which path produced it.
type solution struct {
	Outcome          theorem.Outcome
	Expression       string
	CriticalExponent float64
	Reasons          []string
}

func solveLocal(rec *cexpr.Recurrence) (solution, error) {
	result, err := theorem.Solve(rec)
	if err != nil {
		return solution{}, err
	}
	s := solution{Outcome: result.Outcome, CriticalExponent: result.CriticalExponent, Reasons: result.Reasons}
	if result.Expr != nil {
		s.Expression = result.Expr.RenderBigO()
	}
	return s, nil
}

// loadFixture reads path and resolves it to a single *cexpr.Recurrence,
// reducing a mutually-recursive system down via theorem.Reduce first
// when the fixture describes one.
func loadFixture(path string) (*cexpr.Recurrence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("complexityctl: reading %s: %w", path, err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("complexityctl: parsing %s: %w", path, err)
	}
	switch {
	case f.Recurrence != nil:
		return recurrence.Build(*f.Recurrence)
	case f.System != nil:
		sys, err := recurrence.BuildSystem(*f.System)
		if err != nil {
			return nil, err
		}
		return theorem.Reduce(sys)
	default:
		return nil, fmt.Errorf("complexityctl: %s has neither a 'recurrence' nor a 'system' key", path)
	}
}

func solveRemote(addr string, rec *cexpr.Recurrence) (solution, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return solution{}, fmt.Errorf("complexityctl: dialing %s: %w", addr, err)
	}
	defer conn.Close()

	client := rpcapi.NewComplexityServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.Solve(ctx, &rpcapi.SolveRequest{Recurrence: specToRPCFromRecurrence(rec)})
	if err != nil {
		return solution{}, fmt.Errorf("complexityctl: Solve: %w", err)
	}
	return solution{
		Outcome:          outcomeFromString(resp.Outcome),
		Expression:       resp.Expression,
		CriticalExponent: resp.CriticalExponent,
		Reasons:          resp.Reasons,
	}, nil
}

func render(result solution) {
	colorize := shouldColorize()
	switch result.Outcome {
	case theorem.OutcomeNotApplicable:
		fmt.Println(paint(colorize, 31, fmt.Sprintf("not applicable: %v", result.Reasons)))
	default:
		line := result.Outcome.String()
		if result.Expression != "" {
			line += ": " + result.Expression
		}
		fmt.Println(paint(colorize, 32, line))
		for _, reason := range result.Reasons {
			fmt.Println(paint(colorize, 33, "  note: "+reason))
		}
	}
}

func paint(colorize bool, code int, s string) string {
	if !colorize {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}

// shouldColorize mirrors internal/evaluator/builtins_term.go's
// detectColorLevel, reduced to a boolean: NO_COLOR wins, then a TTY
// check via go-isatty, matching the teacher's stdout-fd detection.
func shouldColorize() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "complexityctl:", err)
	os.Exit(1)
}
