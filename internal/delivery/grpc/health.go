package grpc

import (
	"context"
	"net"
	"time"

	"github.com/sirupsen/logrus"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"
)

// ServiceName is the name health checks can ask about besides the empty
// whole-server name.
const ServiceName = "catalog_service"

type HealthServer struct {
	server *gogrpc.Server
	health *health.Server
	log    *logrus.Logger
}

func NewHealthServer(logger *logrus.Logger) *HealthServer {
	server := gogrpc.NewServer(gogrpc.UnaryInterceptor(loggingInterceptor(logger)))
	healthServer := health.NewServer()

	healthpb.RegisterHealthServer(server, healthServer)
	reflection.Register(server)

	return &HealthServer{
		server: server,
		health: healthServer,
		log:    logger,
	}
}

// Serve marks the service SERVING and blocks until the listener is closed.
func (s *HealthServer) Serve(lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	s.log.Infof("gRPC health server listening on %s", lis.Addr())
	return s.server.Serve(lis)
}

// MarkNotServing flips every status to NOT_SERVING so probes fail while the
// process drains.
func (s *HealthServer) MarkNotServing() {
	s.health.Shutdown()
}

func (s *HealthServer) Stop() {
	s.MarkNotServing()
	s.server.GracefulStop()
	s.log.Info("gRPC health server stopped")
}

func loggingInterceptor(logger *logrus.Logger) gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		entry := logger.WithFields(logrus.Fields{
			"grpc_method": info.FullMethod,
			"grpc_code":   status.Code(err).String(),
			"latency_ms":  time.Since(start).Milliseconds(),
		})
		if msg, ok := req.(proto.Message); ok {
			entry = entry.WithField("request_bytes", proto.Size(msg))
		}
		if err != nil {
			entry.Warnf("gRPC Handler: call failed: %v", err)
		} else {
			entry.Debug("gRPC Handler: call completed")
		}
		return resp, err
	}
}
