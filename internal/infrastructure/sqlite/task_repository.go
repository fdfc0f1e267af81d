package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domain_task "github.com/teooliver/taskstore/internal/domain/task"
	"github.com/teooliver/taskstore/internal/storage"
	"go.uber.org/zap"
)

type TaskRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewTaskRepository(db *sql.DB, logger *zap.Logger) *TaskRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskRepository{db: db, logger: logger}
}

// Create は新しい行を INSERT し、採番された id 込みのエンティティを返す。
// completed は常に false で作成される（明示的な Update でのみ変わる）。
func (r *TaskRepository) Create(ctx context.Context, title, description string) (*domain_task.Task, error) {
	res, err := r.db.ExecContext(
		ctx,
		"INSERT INTO tasks (title, description, completed) VALUES (?, ?, 0)",
		title,
		description,
	)
	if err != nil {
		return nil, wrapErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domain_task.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   false,
	}, nil
}

// Get は id で1件取得する。行が無ければ storage.ErrNotFound。
func (r *TaskRepository) Get(ctx context.Context, id int64) (*domain_task.Task, error) {
	var t domain_task.Task

	err := doWithRetry(ctx, DefaultReadRetry, func() error {
		return r.db.QueryRowContext(
			ctx,
			"SELECT id, title, description, completed FROM tasks WHERE id = ?",
			id,
		).Scan(&t.ID, &t.Title, &t.Description, &t.Completed)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
		}
		return nil, wrapErr(err)
	}

	return &t, nil
}

// List は全件を id 降順（新しいものが先頭）で返す。0件なら空スライス。
func (r *TaskRepository) List(ctx context.Context) ([]*domain_task.Task, error) {
	tasks := make([]*domain_task.Task, 0)

	err := doWithRetry(ctx, DefaultReadRetry, func() error {
		rows, err := r.db.QueryContext(ctx, "SELECT id, title, description, completed FROM tasks ORDER BY id DESC")
		if err != nil {
			return err
		}
		defer rows.Close()

		tasks = tasks[:0]
		for rows.Next() {
			var t domain_task.Task
			if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed); err != nil {
				return err
			}
			tasks = append(tasks, &t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, wrapErr(err)
	}

	return tasks, nil
}

// Update はフィールド単位のマージ更新。
// まず現在値を読み、指定されたフィールドだけ差し替えて書き戻す。
// 読みと書きの間に行が消えた場合は RowsAffected が 0 になるので、
// 黙って握りつぶさず NotFound として返す。
func (r *TaskRepository) Update(ctx context.Context, id int64, patch domain_task.Patch) (*domain_task.Task, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = *patch.Description
	}
	if patch.Completed != nil {
		merged.Completed = *patch.Completed
	}

	res, err := r.db.ExecContext(
		ctx,
		"UPDATE tasks SET title = ?, description = ?, completed = ? WHERE id = ?",
		merged.Title,
		merged.Description,
		merged.Completed,
		id,
	)
	if err != nil {
		return nil, wrapErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// 読みと書きの間に並行 Delete が入ったケース
		r.logger.Warn("task row vanished during update", zap.Int64("id", id))
		return nil, fmt.Errorf("task %d: %w", id, storage.ErrNotFound)
	}

	return &merged, nil
}

// Delete は削除件数 > 0 なら true を返す。対象が無くてもエラーにはしない。
func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, wrapErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
