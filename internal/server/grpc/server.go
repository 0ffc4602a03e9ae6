package grpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	pb "github.com/dmitrijs2005/assetkeeper/internal/proto"
	"github.com/dmitrijs2005/assetkeeper/internal/server/orchestrator"
	"github.com/dmitrijs2005/assetkeeper/internal/server/services"
)

// Uploads is the service layer behind the gRPC surface.
type Uploads interface {
	Initiate(ctx context.Context, req services.InitiateRequest) (*services.InitiateResult, error)
	Upload(ctx context.Context, ownerID, sessionID string, progress orchestrator.Progress) (*services.CompletionResult, error)
	Abort(ctx context.Context, ownerID, sessionID string) error
	Status(ctx context.Context, ownerID, sessionID string) (*services.SessionStatus, error)
	DownloadURL(ctx context.Context, ownerID, sessionID string) (string, time.Time, error)
}

var _ pb.UploadsServer = (*GRPCServer)(nil)

type GRPCServer struct {
	pb.UnimplementedUploadsServer

	address   string
	uploads   Uploads
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, u Uploads, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		uploads:   u,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))

	// registers service
	pb.RegisterUploadsServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
