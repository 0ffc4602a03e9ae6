package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	pb "github.com/dmitrijs2005/assetkeeper/internal/proto"
)

// fakeServer records what the client sends and replies with canned messages.
type fakeServer struct {
	pb.UnimplementedUploadsServer

	mu       sync.Mutex
	tokens   []string
	initReq  *pb.InitiateRequest
	session  string
	err      error
	initiate *pb.InitiateResponse
	upload   *pb.UploadResponse
	status   *pb.StatusResponse
	download *pb.DownloadURLResponse
}

func (f *fakeServer) record(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		f.tokens = append(f.tokens, md.Get(common.AccessTokenHeaderName)...)
	}
	f.session = sessionID
	return f.err
}

func (f *fakeServer) Initiate(ctx context.Context, r *pb.InitiateRequest) (*pb.InitiateResponse, error) {
	f.initReq = r
	if err := f.record(ctx, ""); err != nil {
		return nil, err
	}
	return f.initiate, nil
}

func (f *fakeServer) Upload(ctx context.Context, r *pb.SessionRequest) (*pb.UploadResponse, error) {
	if err := f.record(ctx, r.GetSessionId()); err != nil {
		return nil, err
	}
	return f.upload, nil
}

func (f *fakeServer) Abort(ctx context.Context, r *pb.SessionRequest) (*pb.AbortResponse, error) {
	if err := f.record(ctx, r.GetSessionId()); err != nil {
		return nil, err
	}
	return &pb.AbortResponse{SessionId: r.GetSessionId()}, nil
}

func (f *fakeServer) Status(ctx context.Context, r *pb.SessionRequest) (*pb.StatusResponse, error) {
	if err := f.record(ctx, r.GetSessionId()); err != nil {
		return nil, err
	}
	return f.status, nil
}

func (f *fakeServer) DownloadURL(ctx context.Context, r *pb.SessionRequest) (*pb.DownloadURLResponse, error) {
	if err := f.record(ctx, r.GetSessionId()); err != nil {
		return nil, err
	}
	return f.download, nil
}

func newTestClient(t *testing.T, fs *fakeServer, token string) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterUploadsServer(srv, fs)
	go func() { _ = srv.Serve(lis) }()

	c, err := NewUploadsClientService("passthrough:///bufnet", token,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		c.Close()
		srv.Stop()
	})
	return c
}

func TestInitiate_SendsTokenAndParsesPlan(t *testing.T) {
	t.Parallel()

	fs := &fakeServer{initiate: &pb.InitiateResponse{
		SessionId:   "upl-1",
		Key:         "owner-1/clip.mp4",
		Kind:        "video",
		ChunkBytes:  64 << 20,
		TotalParts:  12,
		WorkerCount: 8,
		Tolerance:   true,
	}}
	c := newTestClient(t, fs, "tok-1")

	s, err := c.Initiate(context.Background(), InitiateRequest{
		Key:        "clip.mp4",
		SourcePath: "abc.bin",
		TotalBytes: 700 << 20,
		Metadata:   map[string]string{"camera": "a7"},
	})
	require.NoError(t, err)

	assert.Equal(t, &Session{
		ID: "upl-1", Key: "owner-1/clip.mp4", Kind: "video",
		ChunkBytes: 64 << 20, TotalParts: 12, WorkerCount: 8, Tolerance: true,
	}, s)
	assert.Equal(t, []string{"tok-1"}, fs.tokens)
	assert.Equal(t, int64(700<<20), fs.initReq.GetTotalBytes())
	assert.Equal(t, "abc.bin", fs.initReq.GetSourcePath())
	assert.Equal(t, map[string]string{"camera": "a7"}, fs.initReq.GetMetadata())
}

func TestInitiate_SizesAbove2To53AreExact(t *testing.T) {
	t.Parallel()

	const huge int64 = 1<<53 + 1
	fs := &fakeServer{
		initiate: &pb.InitiateResponse{SessionId: "upl-1", ChunkBytes: 1<<40 + 1},
		status:   &pb.StatusResponse{SessionId: "upl-1", TotalBytes: huge},
	}
	c := newTestClient(t, fs, "tok")

	s, err := c.Initiate(context.Background(), InitiateRequest{Key: "disk.img", TotalBytes: huge})
	require.NoError(t, err)
	assert.Equal(t, huge, fs.initReq.GetTotalBytes())
	assert.Equal(t, int64(1<<40+1), s.ChunkBytes)

	st, err := c.Status(context.Background(), "upl-1")
	require.NoError(t, err)
	assert.Equal(t, huge, st.TotalBytes)
}

func TestStatus_ParsesFile(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	fs := &fakeServer{status: &pb.StatusResponse{
		SessionId:     "upl-2",
		State:         "completed",
		TotalBytes:    100,
		TotalParts:    1,
		UploadedParts: 1,
		UpdatedAt:     created.Format(time.RFC3339),
		File: &pb.FileInfo{
			Id:        "f-1",
			Size:      100,
			Etag:      "\"e\"",
			CreatedAt: created.Format(time.RFC3339),
		},
	}}
	c := newTestClient(t, fs, "")

	st, err := c.Status(context.Background(), "upl-2")
	require.NoError(t, err)

	assert.True(t, st.Terminal())
	assert.False(t, st.Tolerance)
	assert.Equal(t, 1, st.UploadedParts)
	assert.Equal(t, created, st.UpdatedAt)
	require.NotNil(t, st.File)
	assert.Equal(t, "f-1", st.File.ID)
	assert.Equal(t, int64(100), st.File.Size)
	assert.Equal(t, "\"e\"", st.File.ETag)
	assert.Equal(t, "upl-2", fs.session)
	assert.Empty(t, fs.tokens)
}

func TestStatus_NoFileBeforeCompletion(t *testing.T) {
	t.Parallel()

	fs := &fakeServer{status: &pb.StatusResponse{SessionId: "upl-4", State: "in_progress"}}
	c := newTestClient(t, fs, "tok")

	st, err := c.Status(context.Background(), "upl-4")
	require.NoError(t, err)
	assert.False(t, st.Terminal())
	assert.Nil(t, st.File)
	assert.True(t, st.UpdatedAt.IsZero())
}

func TestUpload_ReturnsFile(t *testing.T) {
	t.Parallel()

	fs := &fakeServer{upload: &pb.UploadResponse{SessionId: "upl-5", File: &pb.FileInfo{Id: "f-5", Key: "o/k", Size: 42}}}
	c := newTestClient(t, fs, "tok")

	f, err := c.Upload(context.Background(), "upl-5")
	require.NoError(t, err)
	assert.Equal(t, &File{ID: "f-5", Key: "o/k", Size: 42}, f)
	assert.Equal(t, "upl-5", fs.session)
}

func TestDownloadURL(t *testing.T) {
	t.Parallel()

	exp := time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC)
	fs := &fakeServer{download: &pb.DownloadURLResponse{Url: "https://s3/x", ExpiresAt: exp.Format(time.RFC3339)}}
	c := newTestClient(t, fs, "tok")

	url, expires, err := c.DownloadURL(context.Background(), "upl-3")
	require.NoError(t, err)
	assert.Equal(t, "https://s3/x", url)
	assert.Equal(t, exp, expires)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "x"), ErrUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "x"), ErrUnavailable},
		{"not found", status.Error(codes.NotFound, "x"), ErrNotFound},
		{"quota", status.Error(codes.ResourceExhausted, "x"), ErrQuotaExceeded},
		{"invalid", status.Error(codes.InvalidArgument, "x"), ErrRejected},
		{"busy", status.Error(codes.FailedPrecondition, "x"), ErrRejected},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fs := &fakeServer{err: tt.err}
			c := newTestClient(t, fs, "tok")
			err := c.Abort(context.Background(), "upl")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpload_AbortedKeepsServerMessage(t *testing.T) {
	t.Parallel()

	fs := &fakeServer{err: status.Error(codes.Aborted, "upload failed (session upl-9)")}
	c := newTestClient(t, fs, "tok")

	_, err := c.Upload(context.Background(), "upl-9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upl-9")
	for _, sentinel := range []error{ErrUnauthorized, ErrNotFound, ErrRejected} {
		assert.False(t, errors.Is(err, sentinel))
	}
}
