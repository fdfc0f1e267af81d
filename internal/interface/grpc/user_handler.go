package grpcadapter

import (
	"context"

	userv1 "github.com/teooliver/taskstore/api/user/v1"
	domain_user "github.com/teooliver/taskstore/internal/domain/user"
	"github.com/teooliver/taskstore/internal/storage"
)

type UserHandler struct {
	userv1.UnimplementedUserServiceServer
	repo domain_user.Repository
}

func NewUserHandler(repo domain_user.Repository) *UserHandler {
	return &UserHandler{repo: repo}
}

// email 重複は AlreadyExists になる（toStatusError が分類する）
func (h *UserHandler) CreateUser(ctx context.Context, req *userv1.CreateUserRequest) (*userv1.User, error) {
	u, err := h.repo.Create(ctx, req.GetName(), req.GetEmail())
	if err != nil {
		return nil, toStatusError(err, "user")
	}
	return toProtoUser(u), nil
}

func (h *UserHandler) GetUser(ctx context.Context, req *userv1.GetUserRequest) (*userv1.User, error) {
	u, err := h.repo.Get(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err, "user")
	}
	return toProtoUser(u), nil
}

func (h *UserHandler) ListUsers(ctx context.Context, req *userv1.ListUsersRequest) (*userv1.ListUsersResponse, error) {
	list, err := h.repo.List(ctx)
	if err != nil {
		return nil, toStatusError(err, "user")
	}

	resp := &userv1.ListUsersResponse{}
	for _, u := range list {
		resp.Users = append(resp.Users, toProtoUser(u))
	}
	return resp, nil
}

func (h *UserHandler) UpdateUser(ctx context.Context, req *userv1.UpdateUserRequest) (*userv1.User, error) {
	var patch domain_user.Patch
	if v := req.GetName(); v != nil {
		s := v.Value
		patch.Name = &s
	}
	if v := req.GetEmail(); v != nil {
		s := v.Value
		patch.Email = &s
	}

	u, err := h.repo.Update(ctx, req.GetId(), patch)
	if err != nil {
		return nil, toStatusError(err, "user")
	}
	return toProtoUser(u), nil
}

func (h *UserHandler) DeleteUser(ctx context.Context, req *userv1.DeleteUserRequest) (*userv1.DeleteUserResponse, error) {
	ok, err := h.repo.Delete(ctx, req.GetId())
	if err != nil {
		return nil, toStatusError(err, "user")
	}
	if !ok {
		return nil, toStatusError(storage.ErrNotFound, "user")
	}
	return &userv1.DeleteUserResponse{Success: true}, nil
}

// --- converter (domain -> proto) ---
func toProtoUser(u *domain_user.User) *userv1.User {
	return &userv1.User{
		Id:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
