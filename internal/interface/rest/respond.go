package rest

import (
	"encoding/json"
	"net/http"

	"github.com/teooliver/taskstore/internal/storage"
	"go.uber.org/zap"
)

// errorResponse は失敗レスポンスの共通ボディ。常に {"error": "..."} の形。
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// ここで encode が失敗しても status は送信済みなので握りつぶすしかない
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeRepoError は Repository のエラーを HTTP ステータスに変換する唯一の場所。
// 分類は storage.Classify（gRPC 側と共通のポリシー）に委ねる。
// 内部エラーの詳細はミドルウェアのログに残し、クライアントには短く返す。
func writeRepoError(w http.ResponseWriter, logger *zap.Logger, err error, entity string) {
	switch storage.Classify(err) {
	case storage.KindNotFound:
		writeError(w, http.StatusNotFound, entity+" not found")
	case storage.KindConstraint:
		writeError(w, http.StatusConflict, entity+" already exists")
	default:
		logger.Error("repository error", zap.String("entity", entity), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
