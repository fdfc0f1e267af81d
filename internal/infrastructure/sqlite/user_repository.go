package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	domain_user "github.com/teooliver/taskstore/internal/domain/user"
	"github.com/teooliver/taskstore/internal/storage"
	"go.uber.org/zap"
)

type UserRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewUserRepository(db *sql.DB, logger *zap.Logger) *UserRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserRepository{db: db, logger: logger}
}

// Create は新しい行を INSERT する。
// email の UNIQUE 制約に当たった場合は storage.ErrConstraint になる。
func (r *UserRepository) Create(ctx context.Context, name, email string) (*domain_user.User, error) {
	res, err := r.db.ExecContext(
		ctx,
		"INSERT INTO users (name, email) VALUES (?, ?)",
		name,
		email,
	)
	if err != nil {
		return nil, wrapErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &domain_user.User{
		ID:    id,
		Name:  name,
		Email: email,
	}, nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*domain_user.User, error) {
	var u domain_user.User

	err := doWithRetry(ctx, DefaultReadRetry, func() error {
		return r.db.QueryRowContext(
			ctx,
			"SELECT id, name, email FROM users WHERE id = ?",
			id,
		).Scan(&u.ID, &u.Name, &u.Email)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
		}
		return nil, wrapErr(err)
	}

	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain_user.User, error) {
	users := make([]*domain_user.User, 0)

	err := doWithRetry(ctx, DefaultReadRetry, func() error {
		rows, err := r.db.QueryContext(ctx, "SELECT id, name, email FROM users ORDER BY id DESC")
		if err != nil {
			return err
		}
		defer rows.Close()

		users = users[:0]
		for rows.Next() {
			var u domain_user.User
			if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
				return err
			}
			users = append(users, &u)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, wrapErr(err)
	}

	return users, nil
}

// Update はフィールド単位のマージ更新（Task 側と同じ規約）。
// email を既存ユーザと重複する値に変えた場合は UNIQUE 制約で ErrConstraint。
func (r *UserRepository) Update(ctx context.Context, id int64, patch domain_user.Patch) (*domain_user.User, error) {
	existing, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Email != nil {
		merged.Email = *patch.Email
	}

	res, err := r.db.ExecContext(
		ctx,
		"UPDATE users SET name = ?, email = ? WHERE id = ?",
		merged.Name,
		merged.Email,
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
		r.logger.Warn("user row vanished during update", zap.Int64("id", id))
		return nil, fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
	}

	return &merged, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return false, wrapErr(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
