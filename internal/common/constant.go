// Package common contains shared constants and sentinel errors used across
// assetkeeper components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on inbound and outbound requests.
const AccessTokenHeaderName = "access_token"

// CorrelationHeaderName is the gRPC trailer key carrying the upload session id
// on failed upload calls.
const CorrelationHeaderName = "x-session-id"
