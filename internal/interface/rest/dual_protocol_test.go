package rest

import (
	"context"
	"net/http"
	"testing"

	taskv1 "github.com/teooliver/taskstore/api/task/v1"
	"github.com/teooliver/taskstore/internal/infrastructure/memory"
	grpcadapter "github.com/teooliver/taskstore/internal/interface/grpc"
	"go.uber.org/zap"
)

// 同一 Repository を gRPC と HTTP の両方から共有したとき、
// 片方の書き込みがもう片方から同じ内容で見えることを確認する。
func TestDualProtocol_SharedRepository(t *testing.T) {
	tasks := memory.NewTaskRepository()
	users := memory.NewUserRepository()

	grpcHandler := grpcadapter.NewTaskHandler(tasks)
	router := NewRouter(tasks, users, zap.NewNop())
	ctx := context.Background()

	// gRPC で作成
	created, err := grpcHandler.CreateTask(ctx, &taskv1.CreateTaskRequest{
		Title:       "shared",
		Description: "written via gRPC",
	})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	// HTTP で読めること
	rec := doRequest(t, router, http.MethodGet, "/tasks/"+itoa(created.GetId()), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	got := decodeTask(t, rec)
	if got.ID != created.GetId() || got.Title != "shared" || got.Description != "written via gRPC" {
		t.Errorf("unexpected task over HTTP: %+v", got)
	}

	// HTTP で削除したものは gRPC からも消えている
	rec = doRequest(t, router, http.MethodDelete, "/tasks/"+itoa(created.GetId()), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, err := grpcHandler.GetTask(ctx, &taskv1.GetTaskRequest{Id: created.GetId()}); err == nil {
		t.Errorf("expected GetTask to fail after HTTP delete")
	}
}
