package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	domain_task "github.com/teooliver/taskstore/internal/domain/task"
	"github.com/teooliver/taskstore/internal/storage"
)

func TestTaskRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, "a", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	second, err := repo.Create(ctx, "b", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("expected ids 1, 2, got %d, %d", first.ID, second.ID)
	}
}

func TestTaskRepository_ReturnsCopies(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "original", "")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// 返ってきた値を書き換えてもストア内の状態には影響しない
	created.Title = "mutated"

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Title != "original" {
		t.Errorf("expected stored title unchanged, got %q", got.Title)
	}
}

func TestTaskRepository_Update_EmptyPatchIsNoop(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "title", "desc")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	got, err := repo.Update(ctx, created.ID, domain_task.Patch{})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got.Title != "title" || got.Description != "desc" || got.Completed {
		t.Errorf("expected unchanged task, got %+v", got)
	}
}

func TestTaskRepository_Update_NotFound(t *testing.T) {
	repo := NewTaskRepository()

	title := "x"
	_, err := repo.Update(context.Background(), 999, domain_task.Patch{Title: &title})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTaskRepository_ConcurrentCreates(t *testing.T) {
	repo := NewTaskRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.Create(ctx, "concurrent", ""); err != nil {
				t.Errorf("Create returned error: %v", err)
			}
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != n {
		t.Errorf("expected %d tasks, got %d", n, len(list))
	}

	// ID はユニークであること
	seen := make(map[int64]bool, n)
	for _, task := range list {
		if seen[task.ID] {
			t.Errorf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
}
