// Package client contains the uploadctl side of the assetkeeper gRPC API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering
//     Initiate, Upload, Abort, Status and DownloadURL.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the access token via an interceptor and maps gRPC
//     status codes to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound, ErrQuotaExceeded,
// ErrRejected. Failed uploads keep the server message, which names the
// session id to look for in server logs.
//
// All operations accept context.Context and honor cancellation and timeouts.
package client
