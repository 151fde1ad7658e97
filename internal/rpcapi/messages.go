// Package rpcapi exposes the engine's core query surface (spec.md §6)
// over gRPC, per SPEC_FULL.md §F.2: Normalize, Classify, Solve,
// VerifyInduction and ScoreConfidence, each taking and returning only
// primitive scalars/strings so a remote host never links the core's Go
// types directly.
//
// complexity.proto in this package is the authoritative interface
// definition. The message types below are hand-maintained against it: the
// environment this engine was built in never invokes protoc, so there is
// no generated complexity.pb.go. Wiring google.golang.org/protobuf's own
// code generator without a protoc binary would mean hand-encoding a
// FileDescriptorProto's raw wire bytes, which is exactly the kind of
// fabricated-looking artifact the transformation rules warn against,
// so these structs are plain Go types with json tags instead, carried
// over gRPC by the "json" codec registered in codec.go rather than the
// default proto codec. See DESIGN.md's "rpcapi wire format" entry.
package rpcapi

// WorkSpec mirrors internal/recurrence.WorkSpec on the wire.
type WorkSpec struct {
	Kind        string  `json:"kind"`
	Degree      float64 `json:"degree,omitempty"`
	LogExponent float64 `json:"log_exponent,omitempty"`
	Base        float64 `json:"base,omitempty"`
	Coefficient float64 `json:"coefficient,omitempty"`
}

// TermSpec mirrors internal/recurrence.TermSpec on the wire.
type TermSpec struct {
	Coefficient float64 `json:"coefficient"`
	ScaleFactor float64 `json:"scale_factor,omitempty"`
	Shift       int32   `json:"shift,omitempty"`
}

// RecurrenceSpec mirrors internal/recurrence.Spec on the wire.
type RecurrenceSpec struct {
	Variable    string     `json:"variable"`
	Terms       []TermSpec `json:"terms"`
	Work        WorkSpec   `json:"work"`
	HasBaseCase bool       `json:"has_base_case,omitempty"`
	BaseCase    float64    `json:"base_case,omitempty"`
}

type NormalizeRequest struct {
	Expression WorkSpec `json:"expression"`
	Variable   string   `json:"variable"`
}

type NormalizeResponse struct {
	RequestID string `json:"request_id"`
	Rendered  string `json:"rendered"`
}

type ClassifyRequest struct {
	Expression WorkSpec `json:"expression"`
	Variable   string   `json:"variable"`
}

type ClassifyResponse struct {
	RequestID  string  `json:"request_id"`
	Form       string  `json:"form"`
	PolyDegree float64 `json:"poly_degree"`
	LogExp     float64 `json:"log_exponent"`
}

type SolveRequest struct {
	Recurrence RecurrenceSpec `json:"recurrence"`
}

type SolveResponse struct {
	RequestID        string   `json:"request_id"`
	Outcome          string   `json:"outcome"`
	Expression       string   `json:"expression"`
	CriticalExponent float64  `json:"critical_exponent"`
	Reasons          []string `json:"reasons,omitempty"`
}

type VerifyInductionRequest struct {
	Recurrence RecurrenceSpec `json:"recurrence"`
	Candidate  WorkSpec       `json:"candidate"`
}

type VerifyInductionResponse struct {
	RequestID              string  `json:"request_id"`
	Verified               bool    `json:"verified"`
	BaseCase               bool    `json:"base_case"`
	InductiveStep          bool    `json:"inductive_step"`
	AsymptoticVerification bool    `json:"asymptotic_verification"`
	SamplesChecked         int32   `json:"samples_checked"`
	MaxRelativeError       float64 `json:"max_relative_error"`
}

type ScoreConfidenceRequest struct {
	SourceAuthority        float64 `json:"source_authority"`
	Simplicity             float64 `json:"simplicity"`
	InductionVerified      bool    `json:"induction_verified"`
	InductionInductiveStep bool    `json:"induction_inductive_step"`
	RSquared               float64 `json:"r_squared"`
	GapDistance            float64 `json:"gap_distance"`
}

type ScoreConfidenceResponse struct {
	RequestID string  `json:"request_id"`
	Value     float64 `json:"value"`
	Level     string  `json:"level"`
}
