// Package proto holds the generated gRPC contract of assetkeeper.v1.Uploads
// shared by the server and uploadctl.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative uploads.proto
