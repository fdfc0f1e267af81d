package memory

import (
	"context"
	"errors"
	"testing"

	domain_user "github.com/teooliver/taskstore/internal/domain/user"
	"github.com/teooliver/taskstore/internal/storage"
)

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "alice", "alice@example.com"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	_, err := repo.Create(ctx, "bob", "alice@example.com")
	if !errors.Is(err, storage.ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}

func TestUserRepository_Update_OwnEmailIsAllowed(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	// 自分の現在の email を再設定するのは制約違反ではない
	same := "alice@example.com"
	newName := "alicia"
	updated, err := repo.Update(ctx, created.ID, domain_user.Patch{Name: &newName, Email: &same})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Name != "alicia" || updated.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", updated)
	}
}

func TestUserRepository_Update_TakenEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, "alice", "alice@example.com"); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	bob, err := repo.Create(ctx, "bob", "bob@example.com")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	taken := "alice@example.com"
	_, err = repo.Update(ctx, bob.ID, domain_user.Patch{Email: &taken})
	if !errors.Is(err, storage.ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", err)
	}
}

func TestUserRepository_DeleteFreesEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	ok, err := repo.Delete(ctx, created.ID)
	if err != nil || !ok {
		t.Fatalf("Delete failed: ok=%v err=%v", ok, err)
	}

	// 削除後は同じ email で再登録できる
	if _, err := repo.Create(ctx, "alice2", "alice@example.com"); err != nil {
		t.Fatalf("Create after delete returned error: %v", err)
	}
}
