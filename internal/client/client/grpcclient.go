package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	pb "github.com/dmitrijs2005/assetkeeper/internal/proto"
)

var _ Client = (*GRPCClient)(nil)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.UploadsClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewUploadsClientService dials endpointURL lazily; the first call opens the
// connection.
func NewUploadsClientService(endpointURL, accessToken string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: accessToken}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(extra ...grpc.DialOption) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUploadsClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Initiate(ctx context.Context, r InitiateRequest) (*Session, error) {

	resp, err := s.client.Initiate(ctx, &pb.InitiateRequest{
		Key:         r.Key,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		SourcePath:  r.SourcePath,
		TotalBytes:  r.TotalBytes,
		Metadata:    r.Metadata,
	})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &Session{
		ID:          resp.GetSessionId(),
		Key:         resp.GetKey(),
		Kind:        resp.GetKind(),
		ChunkBytes:  resp.GetChunkBytes(),
		TotalParts:  int(resp.GetTotalParts()),
		WorkerCount: int(resp.GetWorkerCount()),
		Tolerance:   resp.GetTolerance(),
	}, nil
}

func (s *GRPCClient) Upload(ctx context.Context, sessionID string) (*File, error) {
	resp, err := s.client.Upload(ctx, &pb.SessionRequest{SessionId: sessionID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return parseFile(resp.GetFile()), nil
}

func (s *GRPCClient) Abort(ctx context.Context, sessionID string) error {
	_, err := s.client.Abort(ctx, &pb.SessionRequest{SessionId: sessionID})
	return s.mapError(err)
}

func (s *GRPCClient) Status(ctx context.Context, sessionID string) (*Status, error) {
	resp, err := s.client.Status(ctx, &pb.SessionRequest{SessionId: sessionID})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &Status{
		SessionID:     resp.GetSessionId(),
		State:         resp.GetState(),
		Kind:          resp.GetKind(),
		Key:           resp.GetKey(),
		TotalBytes:    resp.GetTotalBytes(),
		ChunkBytes:    resp.GetChunkBytes(),
		TotalParts:    int(resp.GetTotalParts()),
		UploadedParts: int(resp.GetUploadedParts()),
		Tolerance:     resp.GetTolerance(),
		FailureReason: resp.GetFailureReason(),
		UpdatedAt:     parseTime(resp.GetUpdatedAt()),
		File:          parseFile(resp.GetFile()),
	}, nil
}

func (s *GRPCClient) DownloadURL(ctx context.Context, sessionID string) (string, time.Time, error) {
	resp, err := s.client.DownloadURL(ctx, &pb.SessionRequest{SessionId: sessionID})
	if err != nil {
		return "", time.Time{}, s.mapError(err)
	}
	return resp.GetUrl(), parseTime(resp.GetExpiresAt()), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return ErrNotFound
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func parseFile(f *pb.FileInfo) *File {
	if f == nil {
		return nil
	}
	return &File{
		ID:          f.GetId(),
		Key:         f.GetKey(),
		Kind:        f.GetKind(),
		ContentType: f.GetContentType(),
		Size:        f.GetSize(),
		Location:    f.GetLocation(),
		ETag:        f.GetEtag(),
		CreatedAt:   parseTime(f.GetCreatedAt()),
	}
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
