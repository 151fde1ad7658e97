package rpcapi

import (
	"context"

	"google.golang.org/grpc"
)

// ComplexityServiceServer is the interface cmd/complexityd implements;
// its shape mirrors what protoc-gen-go-grpc would emit from
// complexity.proto's service block.
type ComplexityServiceServer interface {
	Normalize(context.Context, *NormalizeRequest) (*NormalizeResponse, error)
	Classify(context.Context, *ClassifyRequest) (*ClassifyResponse, error)
	Solve(context.Context, *SolveRequest) (*SolveResponse, error)
	VerifyInduction(context.Context, *VerifyInductionRequest) (*VerifyInductionResponse, error)
	ScoreConfidence(context.Context, *ScoreConfidenceRequest) (*ScoreConfidenceResponse, error)
}

func _ComplexityService_Normalize_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NormalizeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplexityServiceServer).Normalize(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/complexity.v1.ComplexityService/Normalize"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplexityServiceServer).Normalize(ctx, req.(*NormalizeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplexityService_Classify_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplexityServiceServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/complexity.v1.ComplexityService/Classify"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplexityServiceServer).Classify(ctx, req.(*ClassifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplexityService_Solve_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SolveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplexityServiceServer).Solve(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/complexity.v1.ComplexityService/Solve"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplexityServiceServer).Solve(ctx, req.(*SolveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplexityService_VerifyInduction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(VerifyInductionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplexityServiceServer).VerifyInduction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/complexity.v1.ComplexityService/VerifyInduction"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplexityServiceServer).VerifyInduction(ctx, req.(*VerifyInductionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ComplexityService_ScoreConfidence_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreConfidenceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ComplexityServiceServer).ScoreConfidence(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/complexity.v1.ComplexityService/ScoreConfidence"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ComplexityServiceServer).ScoreConfidence(ctx, req.(*ScoreConfidenceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ComplexityServiceDesc is the grpc.ServiceDesc complexity.proto's
// service block would compile to.
var ComplexityServiceDesc = grpc.ServiceDesc{
	ServiceName: "complexity.v1.ComplexityService",
	HandlerType: (*ComplexityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Normalize", Handler: _ComplexityService_Normalize_Handler},
		{MethodName: "Classify", Handler: _ComplexityService_Classify_Handler},
		{MethodName: "Solve", Handler: _ComplexityService_Solve_Handler},
		{MethodName: "VerifyInduction", Handler: _ComplexityService_VerifyInduction_Handler},
		{MethodName: "ScoreConfidence", Handler: _ComplexityService_ScoreConfidence_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "complexity.proto",
}

// RegisterComplexityServiceServer registers srv on s, the way
// protoc-gen-go-grpc's generated RegisterXxxServer function does.
func RegisterComplexityServiceServer(s grpc.ServiceRegistrar, srv ComplexityServiceServer) {
	s.RegisterService(&ComplexityServiceDesc, srv)
}

// ComplexityServiceClient is the client-side counterpart, used by
// cmd/complexityctl to call a running complexityd.
type ComplexityServiceClient interface {
	Normalize(ctx context.Context, in *NormalizeRequest, opts ...grpc.CallOption) (*NormalizeResponse, error)
	Classify(ctx context.Context, in *ClassifyRequest, opts ...grpc.CallOption) (*ClassifyResponse, error)
	Solve(ctx context.Context, in *SolveRequest, opts ...grpc.CallOption) (*SolveResponse, error)
	VerifyInduction(ctx context.Context, in *VerifyInductionRequest, opts ...grpc.CallOption) (*VerifyInductionResponse, error)
	ScoreConfidence(ctx context.Context, in *ScoreConfidenceRequest, opts ...grpc.CallOption) (*ScoreConfidenceResponse, error)
}

type complexityServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewComplexityServiceClient wraps a *grpc.ClientConn as a
// ComplexityServiceClient, always selecting the "json" codec this
// package registers (see codec.go).
func NewComplexityServiceClient(cc grpc.ClientConnInterface) ComplexityServiceClient {
	return &complexityServiceClient{cc: cc}
}

func withJSONCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
}

func (c *complexityServiceClient) Normalize(ctx context.Context, in *NormalizeRequest, opts ...grpc.CallOption) (*NormalizeResponse, error) {
	out := new(NormalizeResponse)
	if err := c.cc.Invoke(ctx, "/complexity.v1.ComplexityService/Normalize", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complexityServiceClient) Classify(ctx context.Context, in *ClassifyRequest, opts ...grpc.CallOption) (*ClassifyResponse, error) {
	out := new(ClassifyResponse)
	if err := c.cc.Invoke(ctx, "/complexity.v1.ComplexityService/Classify", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complexityServiceClient) Solve(ctx context.Context, in *SolveRequest, opts ...grpc.CallOption) (*SolveResponse, error) {
	out := new(SolveResponse)
	if err := c.cc.Invoke(ctx, "/complexity.v1.ComplexityService/Solve", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complexityServiceClient) VerifyInduction(ctx context.Context, in *VerifyInductionRequest, opts ...grpc.CallOption) (*VerifyInductionResponse, error) {
	out := new(VerifyInductionResponse)
	if err := c.cc.Invoke(ctx, "/complexity.v1.ComplexityService/VerifyInduction", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *complexityServiceClient) ScoreConfidence(ctx context.Context, in *ScoreConfidenceRequest, opts ...grpc.CallOption) (*ScoreConfidenceResponse, error) {
	out := new(ScoreConfidenceResponse)
	if err := c.cc.Invoke(ctx, "/complexity.v1.ComplexityService/ScoreConfidence", in, out, withJSONCodec(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
