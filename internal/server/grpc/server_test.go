package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/logging"
	pb "github.com/dmitrijs2005/assetkeeper/internal/proto"
	"github.com/dmitrijs2005/assetkeeper/internal/server/auth"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/orchestrator"
	"github.com/dmitrijs2005/assetkeeper/internal/server/services"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

const secret = "secret"

// hugeBytes is above 2^53, where a float64 would lose the last digit.
const hugeBytes int64 = 1<<53 + 1

type fakeUploads struct {
	initReq   services.InitiateRequest
	initErr   error
	uploadErr error
	owner     string
}

func (f *fakeUploads) Initiate(_ context.Context, req services.InitiateRequest) (*services.InitiateResult, error) {
	f.initReq = req
	if f.initErr != nil {
		return nil, f.initErr
	}
	return &services.InitiateResult{
		SessionID: "upl-1",
		Key:       "owners/" + req.OwnerID + "/" + req.Key,
		Kind:      models.AssetVideo,
		Plan:      models.UploadPlan{ChunkBytes: 10 << 20, TotalParts: 12, WorkerCount: 8},
	}, nil
}

func (f *fakeUploads) Upload(_ context.Context, owner, id string, _ orchestrator.Progress) (*services.CompletionResult, error) {
	f.owner = owner
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &services.CompletionResult{SessionID: id, File: &models.FileRecord{ID: "file-1", Key: "k", Size: 120 << 20}}, nil
}

func (f *fakeUploads) Abort(_ context.Context, owner, id string) error {
	f.owner = owner
	return nil
}

func (f *fakeUploads) Status(_ context.Context, owner, id string) (*services.SessionStatus, error) {
	if id != "upl-1" {
		return nil, common.ErrorNotFound
	}
	return &services.SessionStatus{
		Session: &models.UploadSession{
			ID: id, State: models.SessionInProgress, Kind: models.AssetVideo,
			TotalBytes: hugeBytes, ChunkBytes: 1 << 30, TotalParts: 8388609, Tolerance: true,
			UpdatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		Uploaded: 8,
	}, nil
}

func (f *fakeUploads) DownloadURL(context.Context, string, string) (string, time.Time, error) {
	return "https://signed", time.Date(2024, 5, 1, 12, 15, 0, 0, time.UTC), nil
}

func startServer(t *testing.T, u Uploads) pb.UploadsClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer("bufnet", nopLogger{}, u, secret)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})
	return pb.NewUploadsClient(conn)
}

func authed(t *testing.T, owner string) context.Context {
	t.Helper()
	tok, err := auth.GenerateToken(owner, []byte(secret), time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, tok)
}

func TestInitiate_RoundTrip(t *testing.T) {
	t.Parallel()
	fu := &fakeUploads{}
	c := startServer(t, fu)

	var trailer metadata.MD
	out, err := c.Initiate(authed(t, "u1"), &pb.InitiateRequest{
		Key:         "clip.mp4",
		ContentType: "video/mp4",
		TotalBytes:  125829120,
		Metadata:    map[string]string{"camera": "a7"},
	}, grpc.Trailer(&trailer))
	require.NoError(t, err)

	assert.Equal(t, services.InitiateRequest{
		OwnerID:     "u1",
		Key:         "clip.mp4",
		ContentType: "video/mp4",
		TotalBytes:  125829120,
		Metadata:    map[string]string{"camera": "a7"},
	}, fu.initReq)

	assert.Equal(t, "upl-1", out.GetSessionId())
	assert.Equal(t, "video", out.GetKind())
	assert.Equal(t, int64(10<<20), out.GetChunkBytes())
	assert.Equal(t, int32(12), out.GetTotalParts())
	assert.Equal(t, int32(8), out.GetWorkerCount())
	assert.False(t, out.GetTolerance())
	assert.Equal(t, []string{"upl-1"}, trailer.Get(common.CorrelationHeaderName))
}

func TestInitiate_LargeSizesKeepPrecision(t *testing.T) {
	t.Parallel()
	fu := &fakeUploads{}
	c := startServer(t, fu)

	_, err := c.Initiate(authed(t, "u1"), &pb.InitiateRequest{Key: "disk.img", TotalBytes: hugeBytes})
	require.NoError(t, err)
	assert.Equal(t, hugeBytes, fu.initReq.TotalBytes)

	out, err := c.Status(authed(t, "u1"), &pb.SessionRequest{SessionId: "upl-1"})
	require.NoError(t, err)
	assert.Equal(t, hugeBytes, out.GetTotalBytes())
	assert.Equal(t, int64(1<<30), out.GetChunkBytes())
	assert.Equal(t, int32(8388609), out.GetTotalParts())
	assert.True(t, out.GetTolerance())
}

func TestInitiate_ServiceRejection(t *testing.T) {
	t.Parallel()
	c := startServer(t, &fakeUploads{initErr: &models.QuotaExceededError{UsedBytes: 900, QuotaBytes: 1000, RequestedBytes: 2000}})

	_, err := c.Initiate(authed(t, "u1"), &pb.InitiateRequest{Key: "a", TotalBytes: 2000})
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestUnauthenticated(t *testing.T) {
	t.Parallel()
	c := startServer(t, &fakeUploads{})
	req := &pb.SessionRequest{SessionId: "upl-1"}

	_, err := c.Status(context.Background(), req)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	expired, err := auth.GenerateToken("u1", []byte(secret), -time.Second)
	require.NoError(t, err)
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, expired)
	_, err = c.Status(ctx, req)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	forged, err := auth.GenerateToken("u1", []byte("other"), time.Hour)
	require.NoError(t, err)
	ctx = metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, forged)
	_, err = c.Status(ctx, req)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestUpload_FailureCarriesSessionID(t *testing.T) {
	t.Parallel()
	fu := &fakeUploads{uploadErr: &models.PartUploadError{SessionID: "upl-1", PartNumber: 3, Attempts: 4}}
	c := startServer(t, fu)

	var trailer metadata.MD
	_, err := c.Upload(authed(t, "u1"), &pb.SessionRequest{SessionId: "upl-1"}, grpc.Trailer(&trailer))

	st := status.Convert(err)
	assert.Equal(t, codes.Aborted, st.Code())
	assert.Contains(t, st.Message(), "upl-1")
	assert.Equal(t, []string{"upl-1"}, trailer.Get(common.CorrelationHeaderName))
	assert.Equal(t, "u1", fu.owner)
}

func TestUpload_Success(t *testing.T) {
	t.Parallel()
	c := startServer(t, &fakeUploads{})

	out, err := c.Upload(authed(t, "u1"), &pb.SessionRequest{SessionId: "upl-1"})
	require.NoError(t, err)

	assert.Equal(t, "upl-1", out.GetSessionId())
	assert.Equal(t, "file-1", out.GetFile().GetId())
	assert.Equal(t, int64(120<<20), out.GetFile().GetSize())
}

func TestStatusAbortAndDownload(t *testing.T) {
	t.Parallel()
	fu := &fakeUploads{}
	c := startServer(t, fu)
	ctx := authed(t, "u1")

	out, err := c.Status(ctx, &pb.SessionRequest{SessionId: "upl-1"})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", out.GetState())
	assert.Equal(t, int32(8), out.GetUploadedParts())
	assert.Equal(t, "2024-05-01T12:00:00Z", out.GetUpdatedAt())
	assert.Nil(t, out.GetFile())

	_, err = c.Status(ctx, &pb.SessionRequest{SessionId: "other"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.Status(ctx, &pb.SessionRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Abort(ctx, &pb.SessionRequest{SessionId: "upl-1"})
	require.NoError(t, err)
	assert.Equal(t, "u1", fu.owner)

	dl, err := c.DownloadURL(ctx, &pb.SessionRequest{SessionId: "upl-1"})
	require.NoError(t, err)
	assert.Equal(t, "https://signed", dl.GetUrl())
	assert.Equal(t, "2024-05-01T12:15:00Z", dl.GetExpiresAt())
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", nopLogger{}, &fakeUploads{}, secret)
	assert.Error(t, srv.Run(context.Background()))
}
