package grpcadapter

import (
	"github.com/teooliver/taskstore/internal/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatusError は Repository のエラーを gRPC status に変換する唯一の場所。
// 分類は storage.Classify（REST 側と共通のポリシー）に委ねる。
// 内部エラーの詳細は logging interceptor がログに残すので、
// クライアントには短いメッセージだけ返す。
func toStatusError(err error, msg string) error {
	switch storage.Classify(err) {
	case storage.KindNotFound:
		return status.Error(codes.NotFound, msg+" not found")
	case storage.KindConstraint:
		return status.Error(codes.AlreadyExists, msg+" already exists")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
