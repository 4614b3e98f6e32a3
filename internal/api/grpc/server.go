package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "traffic-advisory-service/internal/api/grpc/pb"
	"traffic-advisory-service/internal/domain"
	"traffic-advisory-service/internal/infra"
)

// NewServer constructs the gRPC server exposing the TelemetryIngest transport.
func NewServer(ingestor domain.ReportIngestor, logger *infra.Logger) *grpc.Server {
	interceptors := []grpc.UnaryServerInterceptor{
		loggingInterceptor(logger),
		infra.GRPCUnaryInterceptor(),
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))
	pb.RegisterTelemetryIngestServer(server, &telemetryServer{ingestor: ingestor})
	return server
}

type telemetryServer struct {
	pb.UnimplementedTelemetryIngestServer
	ingestor domain.ReportIngestor
}

// Publish validates one report at the transport boundary and hands it to the
// ingestion path. Malformed reports are rejected without touching the
// registry.
func (s *telemetryServer) Publish(ctx context.Context, req *pb.VehicleReport) (*pb.PublishResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request must not be nil")
	}

	report := domain.VehicleReport{
		VehicleID: req.GetVehicleId(),
		Latitude:  req.GetLatitude(),
		Longitude: req.GetLongitude(),
		SpeedMPS:  req.GetSpeedMps(),
	}
	if ts := req.GetCapturedAt(); ts != nil && ts.IsValid() {
		report.CapturedAt = ts.AsTime()
	}

	if err := report.Validate(); err != nil {
		infra.IngestDroppedTotal.Inc()
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.ingestor.Ingest(report)
	return &pb.PublishResponse{Accepted: true}, nil
}

func loggingInterceptor(logger *infra.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Errorf(ctx, "grpc %s: %v", info.FullMethod, err)
		}
		return resp, err
	}
}
