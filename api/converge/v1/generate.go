// Package convergepb - gRPC контракт converge.v1.TransactionService.
// transaction.pb.go и transaction_grpc.pb.go генерируются из transaction.proto.
package convergepb

//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative converge/v1/transaction.proto
