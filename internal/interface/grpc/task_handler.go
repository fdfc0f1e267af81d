package grpcadapter

import (
	"context"

	taskv1 "github.com/teooliver/taskstore/api/task/v1"
	domain_task "github.com/teooliver/taskstore/internal/domain/task"
	"github.com/teooliver/taskstore/internal/storage"
)

type TaskHandler struct {
	taskv1.UnimplementedTaskServiceServer
	repo domain_task.Repository
}

func NewTaskHandler(repo domain_task.Repository) *TaskHandler {
	return &TaskHandler{repo: repo}
}

// --- Create ---
func (h *TaskHandler) CreateTask(ctx context.Context, req *taskv1.CreateTaskRequest) (*taskv1.Task, error) {
	t, err := h.repo.Create(ctx, req.GetTitle(), req.GetDescription())
	if err != nil {
		return nil, toStatusError(err, "task")
	}
	return toProtoTask(t), nil
}

// --- Get ---
func (h *TaskHandler) GetTask(ctx context.Context, req *taskv1.GetTaskRequest) (*taskv1.Task, error) {
	t, err := h.repo.Get(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err, "task")
	}
	return toProtoTask(t), nil
}

// --- List ---
func (h *TaskHandler) ListTasks(ctx context.Context, req *taskv1.ListTasksRequest) (*taskv1.ListTasksResponse, error) {
	list, err := h.repo.List(ctx)
	if err != nil {
		return nil, toStatusError(err, "task")
	}

	resp := &taskv1.ListTasksResponse{}
	for _, t := range list {
		resp.Tasks = append(resp.Tasks, toProtoTask(t))
	}
	return resp, nil
}

// --- Update ---
// wrapper が nil のフィールドは Patch に載せない＝現在値を保持。
// 「フィールド省略」と「空文字を明示的にセット」をここで区別する。
func (h *TaskHandler) UpdateTask(ctx context.Context, req *taskv1.UpdateTaskRequest) (*taskv1.Task, error) {
	var patch domain_task.Patch
	if v := req.GetTitle(); v != nil {
		s := v.Value
		patch.Title = &s
	}
	if v := req.GetDescription(); v != nil {
		s := v.Value
		patch.Description = &s
	}
	if v := req.GetCompleted(); v != nil {
		b := v.Value
		patch.Completed = &b
	}

	t, err := h.repo.Update(ctx, req.GetId(), patch)
	if err != nil {
		return nil, toStatusError(err, "task")
	}
	return toProtoTask(t), nil
}

// --- Delete ---
// Repository の false を NotFound に変換するのはアダプタの責務
// （Delete 自体はエラーを返さない契約なので）。
func (h *TaskHandler) DeleteTask(ctx context.Context, req *taskv1.DeleteTaskRequest) (*taskv1.DeleteTaskResponse, error) {
	ok, err := h.repo.Delete(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err, "task")
	}
	if !ok {
		return nil, toStatusError(storage.ErrNotFound, "task")
	}
	return &taskv1.DeleteTaskResponse{Success: true}, nil
}

// --- converter (domain -> proto) ---
func toProtoTask(t *domain_task.Task) *taskv1.Task {
	return &taskv1.Task{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}
