package rest

import (
	"encoding/json"
	"net/http"

	domain_user "github.com/teooliver/taskstore/internal/domain/user"
	"go.uber.org/zap"
)

type userJSON struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type createUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func toUserJSON(u *domain_user.User) userJSON {
	return userJSON{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

type userHandlers struct {
	repo   domain_user.Repository
	logger *zap.Logger
}

func (h *userHandlers) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /users", h.create)
	mux.HandleFunc("GET /users", h.list)
	mux.HandleFunc("GET /users/{id}", h.get)
	mux.HandleFunc("PUT /users/{id}", h.update)
	mux.HandleFunc("DELETE /users/{id}", h.delete)
}

// email 重複は 409 になる（writeRepoError が分類する）
func (h *userHandlers) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.repo.Create(r.Context(), req.Name, req.Email)
	if err != nil {
		writeRepoError(w, h.logger, err, "user")
		return
	}
	writeJSON(w, http.StatusCreated, toUserJSON(u))
}

func (h *userHandlers) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	u, err := h.repo.Get(r.Context(), id)
	if err != nil {
		writeRepoError(w, h.logger, err, "user")
		return
	}
	writeJSON(w, http.StatusOK, toUserJSON(u))
}

func (h *userHandlers) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		writeRepoError(w, h.logger, err, "user")
		return
	}

	out := make([]userJSON, 0, len(list))
	for _, u := range list {
		out = append(out, toUserJSON(u))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *userHandlers) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.repo.Update(r.Context(), id, domain_user.Patch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeRepoError(w, h.logger, err, "user")
		return
	}
	writeJSON(w, http.StatusOK, toUserJSON(u))
}

func (h *userHandlers) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	ok, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		writeRepoError(w, h.logger, err, "user")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
