package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	pb "github.com/dmitrijs2005/assetkeeper/internal/proto"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
	"github.com/dmitrijs2005/assetkeeper/internal/server/services"
)

func (s *GRPCServer) Initiate(ctx context.Context, req *pb.InitiateRequest) (*pb.InitiateResponse, error) {

	result, err := s.uploads.Initiate(ctx, services.InitiateRequest{
		OwnerID:     ownerFromContext(ctx),
		Key:         req.GetKey(),
		FileName:    req.GetFileName(),
		ContentType: req.GetContentType(),
		SourcePath:  req.GetSourcePath(),
		TotalBytes:  req.GetTotalBytes(),
		Metadata:    req.GetMetadata(),
	})
	if err != nil {
		return nil, s.toStatus(ctx, err, "")
	}

	s.setSessionTrailer(ctx, result.SessionID)
	return &pb.InitiateResponse{
		SessionId:   result.SessionID,
		Key:         result.Key,
		Kind:        string(result.Kind),
		ChunkBytes:  result.Plan.ChunkBytes,
		TotalParts:  int32(result.Plan.TotalParts),
		WorkerCount: int32(result.Plan.WorkerCount),
		Tolerance:   result.Tolerance,
	}, nil
}

func (s *GRPCServer) Upload(ctx context.Context, req *pb.SessionRequest) (*pb.UploadResponse, error) {

	id, err := sessionID(req)
	if err != nil {
		return nil, err
	}
	s.setSessionTrailer(ctx, id)

	result, err := s.uploads.Upload(ctx, ownerFromContext(ctx), id, nil)
	if err != nil {
		return nil, s.toStatus(ctx, err, id)
	}

	return &pb.UploadResponse{SessionId: id, File: fileInfo(result.File)}, nil
}

func (s *GRPCServer) Abort(ctx context.Context, req *pb.SessionRequest) (*pb.AbortResponse, error) {

	id, err := sessionID(req)
	if err != nil {
		return nil, err
	}
	s.setSessionTrailer(ctx, id)

	if err := s.uploads.Abort(ctx, ownerFromContext(ctx), id); err != nil {
		return nil, s.toStatus(ctx, err, id)
	}

	return &pb.AbortResponse{SessionId: id}, nil
}

func (s *GRPCServer) Status(ctx context.Context, req *pb.SessionRequest) (*pb.StatusResponse, error) {

	id, err := sessionID(req)
	if err != nil {
		return nil, err
	}

	st, err := s.uploads.Status(ctx, ownerFromContext(ctx), id)
	if err != nil {
		return nil, s.toStatus(ctx, err, id)
	}

	return &pb.StatusResponse{
		SessionId:     id,
		State:         string(st.Session.State),
		Kind:          string(st.Session.Kind),
		Key:           st.Session.TargetKey,
		TotalBytes:    st.Session.TotalBytes,
		ChunkBytes:    st.Session.ChunkBytes,
		TotalParts:    int32(st.Session.TotalParts),
		UploadedParts: int32(st.Uploaded),
		Tolerance:     st.Session.Tolerance,
		FailureReason: st.Session.FailureReason,
		UpdatedAt:     st.Session.UpdatedAt.UTC().Format(time.RFC3339),
		File:          fileInfo(st.File),
	}, nil
}

func (s *GRPCServer) DownloadURL(ctx context.Context, req *pb.SessionRequest) (*pb.DownloadURLResponse, error) {

	id, err := sessionID(req)
	if err != nil {
		return nil, err
	}

	url, expires, err := s.uploads.DownloadURL(ctx, ownerFromContext(ctx), id)
	if err != nil {
		return nil, s.toStatus(ctx, err, id)
	}

	return &pb.DownloadURLResponse{
		Url:       url,
		ExpiresAt: expires.UTC().Format(time.RFC3339),
	}, nil
}

// toStatus maps service errors onto gRPC codes. Upload failures carry the
// session id so callers can correlate them with server logs.
func (s *GRPCServer) toStatus(ctx context.Context, err error, sessionID string) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrQuotaExceeded):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "session not found")
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrSessionBusy), errors.Is(err, common.ErrSessionTerminal), errors.Is(err, common.ErrStateTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrPartUpload), errors.Is(err, common.ErrCompletion),
		errors.Is(err, common.ErrSessionAbort), errors.Is(err, context.Canceled):
		return status.Errorf(codes.Aborted, "upload failed (session %s)", sessionID)
	}

	s.logger.Error(ctx, "internal error", "session_id", sessionID, "error", err)
	if sessionID != "" {
		return status.Errorf(codes.Internal, "internal error (session %s)", sessionID)
	}
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) setSessionTrailer(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := grpc.SetTrailer(ctx, metadata.Pairs(common.CorrelationHeaderName, id)); err != nil {
		s.logger.Debug(ctx, "trailer not set", "error", err)
	}
}

func sessionID(req *pb.SessionRequest) (string, error) {
	id := req.GetSessionId()
	if id == "" {
		return "", status.Error(codes.InvalidArgument, "session_id is required")
	}
	return id, nil
}

func fileInfo(f *models.FileRecord) *pb.FileInfo {
	if f == nil {
		return nil
	}
	return &pb.FileInfo{
		Id:          f.ID,
		Key:         f.Key,
		Kind:        string(f.Kind),
		ContentType: f.ContentType,
		Size:        f.Size,
		Location:    f.Location,
		Etag:        f.ETag,
		CreatedAt:   f.CreatedAt.UTC().Format(time.RFC3339),
	}
}
