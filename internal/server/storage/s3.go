package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/dmitrijs2005/assetkeeper/internal/common"
	"github.com/dmitrijs2005/assetkeeper/internal/netx"
	"github.com/dmitrijs2005/assetkeeper/internal/server/models"
)

// S3API is the subset of *s3.Client used for multipart uploads.
type S3API interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListParts(ctx context.Context, params *s3.ListPartsInput, optFns ...func(*s3.Options)) (*s3.ListPartsOutput, error)
	CreateMultipartUpload(ctx context.Context, params *s3.CreateMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error)
	UploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.Options)) (*s3.UploadPartOutput, error)
	CompleteMultipartUpload(ctx context.Context, params *s3.CompleteMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error)
	AbortMultipartUpload(ctx context.Context, params *s3.AbortMultipartUploadInput, optFns ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error)
}

// PresignAPI is the subset of *s3.PresignClient used for signed URLs.
type PresignAPI interface {
	PresignUploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

var (
	_ S3API       = (*s3.Client)(nil)
	_ PresignAPI  = (*s3.PresignClient)(nil)
	_ ObjectStore = (*S3Store)(nil)
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// partURLTTL bounds how long a presigned part URL stays valid; it only has to
// outlive one PUT.
const partURLTTL = 15 * time.Minute

// Options configures an S3Store.
type Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	// PresignedParts sends part bytes as plain HTTP PUTs to presigned
	// UploadPart URLs instead of signed SDK requests.
	PresignedParts bool
	HTTPClient     *http.Client
}

// S3Store implements ObjectStore on aws-sdk-go-v2.
type S3Store struct {
	client         S3API
	presign        PresignAPI
	bucket         string
	presignedParts bool
	httpClient     *http.Client
}

// NewS3Store loads AWS config with static credentials and builds the clients.
func NewS3Store(ctx context.Context, opts Options) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})

	return NewS3StoreWithClient(client, s3.NewPresignClient(client), opts), nil
}

// NewS3StoreWithClient wires pre-built clients; tests pass fakes here.
func NewS3StoreWithClient(client S3API, presign PresignAPI, opts Options) *S3Store {
	hc := opts.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	return &S3Store{
		client:         client,
		presign:        presign,
		bucket:         opts.Bucket,
		presignedParts: opts.PresignedParts,
		httpClient:     hc,
	}
}

func (s *S3Store) CreateMultipartUpload(ctx context.Context, key, contentType string, metadata map[string]string) (string, error) {
	in := &s3.CreateMultipartUploadInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(key),
		Metadata: metadata,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	out, err := s.client.CreateMultipartUpload(ctx, in)
	if err != nil {
		return "", s.wrap("CreateMultipartUpload", key, err)
	}
	if out.UploadId == nil || *out.UploadId == "" {
		return "", s.wrap("CreateMultipartUpload", key, fmt.Errorf("backend returned no upload id"))
	}
	return *out.UploadId, nil
}

func (s *S3Store) UploadPart(ctx context.Context, key, uploadID string, partNumber int, body []byte) (string, error) {
	in := &s3.UploadPartInput{
		Bucket:     aws.String(s.bucket),
		Key:        aws.String(key),
		UploadId:   aws.String(uploadID),
		PartNumber: aws.Int32(int32(partNumber)),
	}

	if s.presignedParts {
		req, err := s.presign.PresignUploadPart(ctx, in, s3.WithPresignExpires(partURLTTL))
		if err != nil {
			return "", s.wrap("PresignUploadPart", key, err)
		}
		etag, err := netx.PutPart(ctx, s.httpClient, req.URL, body)
		if err != nil {
			return "", s.wrap("UploadPart", key, err)
		}
		return etag, nil
	}

	in.Body = bytes.NewReader(body)
	in.ContentLength = aws.Int64(int64(len(body)))

	out, err := s.client.UploadPart(ctx, in)
	if err != nil {
		return "", s.wrap("UploadPart", key, err)
	}
	if out.ETag == nil || *out.ETag == "" {
		return "", s.wrap("UploadPart", key, fmt.Errorf("backend returned no ETag for part %d", partNumber))
	}
	return *out.ETag, nil
}

// CompleteMultipartUpload requires parts in strictly ascending order.
func (s *S3Store) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []models.CompletedPart) (string, string, error) {
	if len(parts) == 0 {
		return "", "", s.wrap("CompleteMultipartUpload", key, fmt.Errorf("%w: no parts", common.ErrInvalidInput))
	}

	completed := make([]types.CompletedPart, len(parts))
	for i, p := range parts {
		if i > 0 && p.PartNumber <= parts[i-1].PartNumber {
			return "", "", s.wrap("CompleteMultipartUpload", key,
				fmt.Errorf("%w: part %d follows part %d", common.ErrInvalidInput, p.PartNumber, parts[i-1].PartNumber))
		}
		completed[i] = types.CompletedPart{
			ETag:       aws.String(p.IntegrityTag),
			PartNumber: aws.Int32(int32(p.PartNumber)),
		}
	}

	out, err := s.client.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:          aws.String(s.bucket),
		Key:             aws.String(key),
		UploadId:        aws.String(uploadID),
		MultipartUpload: &types.CompletedMultipartUpload{Parts: completed},
	})
	if err != nil {
		return "", "", s.wrap("CompleteMultipartUpload", key, err)
	}

	return aws.ToString(out.Location), aws.ToString(out.ETag), nil
}

// AbortMultipartUpload treats an upload the backend no longer knows as aborted.
func (s *S3Store) AbortMultipartUpload(ctx context.Context, key, uploadID string) error {
	_, err := s.client.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	})
	if err != nil && !isNoSuchUpload(err) {
		return s.wrap("AbortMultipartUpload", key, err)
	}
	return nil
}

// UploadOpen reports whether the backend still holds uploadID as an open
// multipart upload. A completed or aborted upload is no longer open.
func (s *S3Store) UploadOpen(ctx context.Context, key, uploadID string) (bool, error) {
	_, err := s.client.ListParts(ctx, &s3.ListPartsInput{
		Bucket:   aws.String(s.bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
		MaxParts: aws.Int32(1),
	})
	if isNoSuchUpload(err) {
		return false, nil
	}
	if err != nil {
		return false, s.wrap("ListParts", key, err)
	}
	return true, nil
}

// StatObject looks up the stored object at key. found is false when nothing
// is stored there.
func (s *S3Store) StatObject(ctx context.Context, key string) (info models.ObjectInfo, found bool, err error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if isNotFound(err) {
		return models.ObjectInfo{}, false, nil
	}
	if err != nil {
		return models.ObjectInfo{}, false, s.wrap("HeadObject", key, err)
	}

	return models.ObjectInfo{
		Key:      key,
		Size:     aws.ToInt64(out.ContentLength),
		ETag:     aws.ToString(out.ETag),
		Location: fmt.Sprintf("s3://%s/%s", s.bucket, key),
	}, true, nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", s.wrap("PresignGetObject", key, err)
	}
	return req.URL, nil
}

func (s *S3Store) wrap(op, key string, err error) error {
	return &Error{Op: op, Bucket: s.bucket, Key: key, Err: err}
}
