package grpcadapter

import (
	"context"
	"errors"
	"testing"

	wrappers "github.com/golang/protobuf/ptypes/wrappers"
	taskv1 "github.com/teooliver/taskstore/api/task/v1"
	domain_task "github.com/teooliver/taskstore/internal/domain/task"
	"github.com/teooliver/taskstore/internal/infrastructure/memory"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mockTaskRepo は任意のメソッドを関数フィールドで差し替えられるモック。
type mockTaskRepo struct {
	createFn func(ctx context.Context, title, description string) (*domain_task.Task, error)
	getFn    func(ctx context.Context, id int64) (*domain_task.Task, error)
	listFn   func(ctx context.Context) ([]*domain_task.Task, error)
	updateFn func(ctx context.Context, id int64, patch domain_task.Patch) (*domain_task.Task, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockTaskRepo) Create(ctx context.Context, title, description string) (*domain_task.Task, error) {
	return m.createFn(ctx, title, description)
}
func (m *mockTaskRepo) Get(ctx context.Context, id int64) (*domain_task.Task, error) {
	return m.getFn(ctx, id)
}
func (m *mockTaskRepo) List(ctx context.Context) ([]*domain_task.Task, error) {
	return m.listFn(ctx)
}
func (m *mockTaskRepo) Update(ctx context.Context, id int64, patch domain_task.Patch) (*domain_task.Task, error) {
	return m.updateFn(ctx, id, patch)
}
func (m *mockTaskRepo) Delete(ctx context.Context, id int64) (bool, error) {
	return m.deleteFn(ctx, id)
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected gRPC status error, got %v", err)
	}
	if st.Code() != want {
		t.Errorf("expected code=%v, got %v", want, st.Code())
	}
}

func TestCreateTask_Success(t *testing.T) {
	h := NewTaskHandler(memory.NewTaskRepository())

	res, err := h.CreateTask(context.Background(), &taskv1.CreateTaskRequest{
		Title:       "テストタスク",
		Description: "説明",
	})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}
	if res.GetId() == 0 {
		t.Errorf("expected non-zero id, got %d", res.GetId())
	}
	if res.GetTitle() != "テストタスク" {
		t.Errorf("expected title %q, got %q", "テストタスク", res.GetTitle())
	}
	if res.GetCompleted() {
		t.Errorf("expected completed=false, got true")
	}
}

func TestGetTask_NotFound(t *testing.T) {
	h := NewTaskHandler(memory.NewTaskRepository())

	_, err := h.GetTask(context.Background(), &taskv1.GetTaskRequest{Id: 999})
	wantCode(t, err, codes.NotFound)
}

func TestListTasks_NewestFirst(t *testing.T) {
	repo := memory.NewTaskRepository()
	h := NewTaskHandler(repo)
	ctx := context.Background()

	for _, title := range []string{"first", "second"} {
		if _, err := h.CreateTask(ctx, &taskv1.CreateTaskRequest{Title: title}); err != nil {
			t.Fatalf("CreateTask returned error: %v", err)
		}
	}

	res, err := h.ListTasks(ctx, &taskv1.ListTasksRequest{})
	if err != nil {
		t.Fatalf("ListTasks returned error: %v", err)
	}
	if len(res.GetTasks()) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(res.GetTasks()))
	}
	if res.GetTasks()[0].GetTitle() != "second" {
		t.Errorf("expected newest first, got %q", res.GetTasks()[0].GetTitle())
	}
}

func TestUpdateTask_PartialMerge(t *testing.T) {
	h := NewTaskHandler(memory.NewTaskRepository())
	ctx := context.Background()

	created, err := h.CreateTask(ctx, &taskv1.CreateTaskRequest{Title: "original", Description: "keep"})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	// completed だけセット。title / description は wrapper が nil なので保持される
	res, err := h.UpdateTask(ctx, &taskv1.UpdateTaskRequest{
		Id:        created.GetId(),
		Completed: &wrappers.BoolValue{Value: true},
	})
	if err != nil {
		t.Fatalf("UpdateTask returned error: %v", err)
	}
	if !res.GetCompleted() {
		t.Errorf("expected completed=true")
	}
	if res.GetTitle() != "original" || res.GetDescription() != "keep" {
		t.Errorf("expected other fields preserved, got %+v", res)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	h := NewTaskHandler(memory.NewTaskRepository())

	_, err := h.UpdateTask(context.Background(), &taskv1.UpdateTaskRequest{
		Id:    999,
		Title: &wrappers.StringValue{Value: "x"},
	})
	wantCode(t, err, codes.NotFound)
}

func TestDeleteTask_Success(t *testing.T) {
	h := NewTaskHandler(memory.NewTaskRepository())
	ctx := context.Background()

	created, err := h.CreateTask(ctx, &taskv1.CreateTaskRequest{Title: "削除用タスク"})
	if err != nil {
		t.Fatalf("CreateTask returned error: %v", err)
	}

	res, err := h.DeleteTask(ctx, &taskv1.DeleteTaskRequest{Id: created.GetId()})
	if err != nil {
		t.Fatalf("DeleteTask returned error: %v", err)
	}
	if !res.GetSuccess() {
		t.Errorf("expected success=true, got false")
	}
}

func TestDeleteTask_NotFound(t *testing.T) {
	h := NewTaskHandler(memory.NewTaskRepository())

	_, err := h.DeleteTask(context.Background(), &taskv1.DeleteTaskRequest{Id: 999})
	wantCode(t, err, codes.NotFound)
}

func TestGetTask_BackendFailure(t *testing.T) {
	repo := &mockTaskRepo{
		getFn: func(ctx context.Context, id int64) (*domain_task.Task, error) {
			return nil, errors.New("disk I/O error")
		},
	}
	h := NewTaskHandler(repo)

	_, err := h.GetTask(context.Background(), &taskv1.GetTaskRequest{Id: 1})
	wantCode(t, err, codes.Internal)

	// バックエンドの詳細（ドライバのメッセージ）はクライアントに漏らさない
	st, _ := status.FromError(err)
	if st.Message() != "internal error" {
		t.Errorf("expected opaque message, got %q", st.Message())
	}
}
