package storage

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"github.com/dmitrijs2005/assetkeeper/internal/netx"
)

// Error records which S3 operation failed on which object.
type Error struct {
	Op     string
	Bucket string
	Key    string
	Err    error
}

func (e *Error) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("s3.%s %s/%s: %v", e.Op, e.Bucket, e.Key, e.Err)
	}
	return fmt.Sprintf("s3.%s bucket %s: %v", e.Op, e.Bucket, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// API error codes that no amount of retrying will fix.
var permanentCodes = map[string]struct{}{
	"NoSuchUpload":          {},
	"NoSuchBucket":          {},
	"AccessDenied":          {},
	"InvalidAccessKeyId":    {},
	"SignatureDoesNotMatch": {},
	"InvalidPart":           {},
	"InvalidPartOrder":      {},
	"EntityTooSmall":        {},
	"EntityTooLarge":        {},
}

// IsPermanent reports whether err is a backend rejection that retrying the
// same request cannot cure.
func IsPermanent(err error) bool {
	if err == nil {
		return false
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		_, ok := permanentCodes[apiErr.ErrorCode()]
		return ok
	}

	var statusErr *netx.StatusError
	if errors.As(err, &statusErr) {
		return !statusErr.Temporary()
	}
	return false
}

func isNoSuchUpload(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchUpload"
}

// HeadObject answers a missing key with a bare 404, surfaced as NotFound.
func isNotFound(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NotFound", "NoSuchKey":
		return true
	}
	return false
}
