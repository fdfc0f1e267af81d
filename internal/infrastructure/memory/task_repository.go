// internal/infrastructure/memory/task_repository.go
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	domain_task "github.com/teooliver/taskstore/internal/domain/task"
	"github.com/teooliver/taskstore/internal/storage"
)

// TaskRepository は map ベースのインメモリ実装。
// sqlite 実装と同じ契約（NotFound / bool Delete / id 降順 List）を満たすので、
// アダプタのテストをストア無しで回せる。
type TaskRepository struct {
	mu    sync.Mutex
	next  int64
	items map[int64]domain_task.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{
		next:  1,
		items: make(map[int64]domain_task.Task),
	}
}

func (r *TaskRepository) Create(ctx context.Context, title, description string) (*domain_task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.next
	r.next++

	t := domain_task.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   false,
	}
	r.items[id] = t

	// map の中身とは独立したコピーを返す
	out := t
	return &out, nil
}

func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain_task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}
	out := t
	return &out, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain_task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]*domain_task.Task, 0, len(r.items))
	for _, t := range r.items {
		out := t
		tasks = append(tasks, &out)
	}
	// id 降順は契約なので、ここでも揃える
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID > tasks[j].ID })
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id int64, patch domain_task.Patch) (*domain_task.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}

	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Completed != nil {
		t.Completed = *patch.Completed
	}
	r.items[id] = t

	out := t
	return &out, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
