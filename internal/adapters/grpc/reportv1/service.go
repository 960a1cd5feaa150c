// Package reportv1 は workforce.v1.ReportService の gRPC サービス定義です。
// メッセージには google.protobuf.Struct を使い、.proto からのコード生成を必要としません。
package reportv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName は完全修飾サービス名です。
	ServiceName = "workforce.v1.ReportService"
	// GenerateReportFullMethodName は GenerateReport のフルメソッド名です。
	GenerateReportFullMethodName = "/" + ServiceName + "/GenerateReport"
)

// ReportServiceServer はサーバー側の実装が満たすインターフェースです。
type ReportServiceServer interface {
	GenerateReport(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterReportServiceServer は srv を gRPC サーバーへ登録します。
func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportServiceDesc, srv)
}

func generateReportHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReportServiceServer).GenerateReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateReportFullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReportServiceServer).GenerateReport(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// ReportServiceDesc は ReportService の grpc.ServiceDesc です。
var ReportServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateReport",
			Handler:    generateReportHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "workforce/v1/report.proto",
}

// ReportServiceClient は ReportService のクライアントです。
type ReportServiceClient interface {
	GenerateReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type reportServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewReportServiceClient は接続からクライアントを生成します。
func NewReportServiceClient(cc grpc.ClientConnInterface) ReportServiceClient {
	return &reportServiceClient{cc: cc}
}

func (c *reportServiceClient) GenerateReport(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GenerateReportFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
