// internal/infrastructure/memory/user_repository.go
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	domain_user "github.com/teooliver/taskstore/internal/domain/user"
	"github.com/teooliver/taskstore/internal/storage"
)

// UserRepository は map ベースのインメモリ実装。
// email の一意性も sqlite 実装（UNIQUE 制約）と同じ振る舞いになるよう enforce する。
type UserRepository struct {
	mu    sync.Mutex
	next  int64
	items map[int64]domain_user.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		next:  1,
		items: make(map[int64]domain_user.User),
	}
}

// emailTaken は他の id が同じ email を使っているかどうか。呼び出し側で lock 済み前提。
func (r *UserRepository) emailTaken(email string, exclude int64) bool {
	for id, u := range r.items {
		if id != exclude && u.Email == email {
			return true
		}
	}
	return false
}

func (r *UserRepository) Create(ctx context.Context, name, email string) (*domain_user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.emailTaken(email, 0) {
		return nil, fmt.Errorf("%w: users.email", storage.ErrConstraint)
	}

	id := r.next
	r.next++

	u := domain_user.User{
		ID:    id,
		Name:  name,
		Email: email,
	}
	r.items[id] = u

	out := u
	return &out, nil
}

func (r *UserRepository) Get(ctx context.Context, id int64) (*domain_user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
	}
	out := u
	return &out, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain_user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]*domain_user.User, 0, len(r.items))
	for _, u := range r.items {
		out := u
		users = append(users, &out)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch domain_user.Patch) (*domain_user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, storage.ErrNotFound)
	}

	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		if r.emailTaken(*patch.Email, id) {
			return nil, fmt.Errorf("%w: users.email", storage.ErrConstraint)
		}
		u.Email = *patch.Email
	}
	r.items[id] = u

	out := u
	return &out, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
