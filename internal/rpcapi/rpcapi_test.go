package rpcapi

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func dialServer(t *testing.T) (ComplexityServiceClient, func()) {
	t.Helper()
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	RegisterComplexityServiceServer(srv, NewServer())
	go func() {
		_ = srv.Serve(lis)
	}()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	client := NewComplexityServiceClient(conn)
	return client, func() {
		conn.Close()
		srv.Stop()
	}
}

func TestSolveMergeSortOverRPC(t *testing.T) {
	client, closeFn := dialServer(t)
	defer closeFn()

	resp, err := client.Solve(context.Background(), &SolveRequest{
		Recurrence: RecurrenceSpec{
			Variable: "n",
			Terms:    []TermSpec{{Coefficient: 2, ScaleFactor: 0.5}},
			Work:     WorkSpec{Kind: "polynomial", Degree: 1},
		},
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if resp.Outcome != "MasterCase2" {
		t.Errorf("outcome = %q, want MasterCase2", resp.Outcome)
	}
	if resp.RequestID == "" {
		t.Error("expected a stamped request id")
	}
}

func TestClassifyOverRPC(t *testing.T) {
	client, closeFn := dialServer(t)
	defer closeFn()

	resp, err := client.Classify(context.Background(), &ClassifyRequest{
		Expression: WorkSpec{Kind: "polynomial", Degree: 2},
		Variable:   "n",
	})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if resp.Form != "Polynomial" {
		t.Errorf("form = %q, want Polynomial", resp.Form)
	}
	if resp.PolyDegree != 2 {
		t.Errorf("poly degree = %v, want 2", resp.PolyDegree)
	}
}

func TestScoreConfidenceOverRPC(t *testing.T) {
	client, closeFn := dialServer(t)
	defer closeFn()

	resp, err := client.ScoreConfidence(context.Background(), &ScoreConfidenceRequest{
		SourceAuthority:   1,
		Simplicity:        1,
		InductionVerified: true, InductionInductiveStep: true,
		RSquared: 0.99, GapDistance: 5,
	})
	if err != nil {
		t.Fatalf("ScoreConfidence: %v", err)
	}
	if resp.Level != "VeryHigh" {
		t.Errorf("level = %q, want VeryHigh", resp.Level)
	}
}

func TestSolveDomainErrorMapsToInvalidArgument(t *testing.T) {
	client, closeFn := dialServer(t)
	defer closeFn()

	_, err := client.Solve(context.Background(), &SolveRequest{
		Recurrence: RecurrenceSpec{
			Variable: "n",
			Terms:    []TermSpec{{Coefficient: -1, ScaleFactor: 0.5}},
			Work:     WorkSpec{Kind: "polynomial", Degree: 1},
		},
	})
	if err == nil {
		t.Fatal("expected an error for a negative coefficient")
	}
	if code := status.Code(err); code != codes.InvalidArgument {
		t.Errorf("status code = %v, want InvalidArgument", code)
	}
}
