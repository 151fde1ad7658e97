package rpcapi

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/complexity-analyzer/engine/internal/diagnostics"
	"github.com/complexity-analyzer/engine/internal/recurrence"
	"github.com/complexity-analyzer/engine/internal/refine"
	"github.com/complexity-analyzer/engine/internal/theorem"
	"github.com/complexity-analyzer/engine/internal/transform"
)

// Server implements ComplexityServiceServer over the core packages.
// Every response is stamped with a request-scoped UUID (spec.md §6's
// query surface carries no identity of its own; the core's pure
// functions stay unaware of it, as SPEC_FULL.md §F.2 requires — the
// stamp is attached here, at the RPC boundary, and nowhere deeper).
type Server struct{}

// NewServer builds a Server. There is no state to initialize: every
// core package this wraps is either pure functions or a read-only,
// init()-populated table.
func NewServer() *Server { return &Server{} }

func (s *Server) Normalize(ctx context.Context, req *NormalizeRequest) (*NormalizeResponse, error) {
	e, err := recurrence.BuildExpression(toWorkSpec(req.Expression), req.Variable)
	if err != nil {
		return nil, statusFromError(err)
	}
	normalized := transform.NormalizeForm(transform.Simplify(e))
	return &NormalizeResponse{
		RequestID: uuid.NewString(),
		Rendered:  normalized.RenderBigO(),
	}, nil
}

func (s *Server) Classify(ctx context.Context, req *ClassifyRequest) (*ClassifyResponse, error) {
	e, err := recurrence.BuildExpression(toWorkSpec(req.Expression), req.Variable)
	if err != nil {
		return nil, statusFromError(err)
	}
	v := recurrence.ResolveVariable(req.Variable)
	c := transform.Classify(e, v)
	return &ClassifyResponse{
		RequestID:  uuid.NewString(),
		Form:       c.Form.String(),
		PolyDegree: c.PolyDegree,
		LogExp:     c.LogExponent,
	}, nil
}

func (s *Server) Solve(ctx context.Context, req *SolveRequest) (*SolveResponse, error) {
	rec, err := recurrence.Build(toRecurrenceSpec(req.Recurrence))
	if err != nil {
		return nil, statusFromError(err)
	}
	result, err := theorem.Solve(rec)
	if err != nil {
		return nil, statusFromError(err)
	}
	resp := &SolveResponse{
		RequestID:        uuid.NewString(),
		Outcome:          result.Outcome.String(),
		CriticalExponent: result.CriticalExponent,
		Reasons:          result.Reasons,
	}
	if result.Expr != nil {
		resp.Expression = result.Expr.RenderBigO()
	}
	return resp, nil
}

func (s *Server) VerifyInduction(ctx context.Context, req *VerifyInductionRequest) (*VerifyInductionResponse, error) {
	rec, err := recurrence.Build(toRecurrenceSpec(req.Recurrence))
	if err != nil {
		return nil, statusFromError(err)
	}
	candidate, err := recurrence.BuildExpression(toWorkSpec(req.Candidate), req.Recurrence.Variable)
	if err != nil {
		return nil, statusFromError(err)
	}
	result, err := refine.VerifyInduction(rec, candidate)
	if err != nil {
		return nil, statusFromError(err)
	}
	return &VerifyInductionResponse{
		RequestID:              uuid.NewString(),
		Verified:               result.Verified,
		BaseCase:               result.BaseCase,
		InductiveStep:          result.InductiveStep,
		AsymptoticVerification: result.AsymptoticVerification,
		SamplesChecked:         int32(result.SamplesChecked),
		MaxRelativeError:       result.MaxRelativeError,
	}, nil
}

func (s *Server) ScoreConfidence(ctx context.Context, req *ScoreConfidenceRequest) (*ScoreConfidenceResponse, error) {
	scorer := refine.NewConfidenceScorer()
	score := scorer.Score(refine.ScoreInputs{
		SourceAuthority: req.SourceAuthority,
		Simplicity:      req.Simplicity,
		Induction: &refine.InductionResult{
			Verified:      req.InductionVerified,
			InductiveStep: req.InductionInductiveStep,
		},
		RSquared:    req.RSquared,
		GapDistance: req.GapDistance,
	})
	return &ScoreConfidenceResponse{
		RequestID: uuid.NewString(),
		Value:     score.Value,
		Level:     score.Level.String(),
	}, nil
}

// statusFromError maps the core's diagnostics.Error taxonomy (spec.md
// §7) onto gRPC status codes a remote collaborator can branch on
// without importing internal/diagnostics.
func statusFromError(err error) error {
	diag, ok := err.(*diagnostics.Error)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}
	switch diag.Code {
	case diagnostics.CodeDomainError:
		return status.Error(codes.InvalidArgument, diag.Error())
	case diagnostics.CodeNotApplicable:
		return status.Error(codes.FailedPrecondition, diag.Error())
	case diagnostics.CodeNumericNonConvergence:
		return status.Error(codes.ResourceExhausted, diag.Error())
	case diagnostics.CodeIncomplete:
		return status.Error(codes.Unimplemented, diag.Error())
	default:
		return status.Error(codes.Internal, diag.Error())
	}
}
