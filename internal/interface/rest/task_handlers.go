package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	domain_task "github.com/teooliver/taskstore/internal/domain/task"
	"go.uber.org/zap"
)

// taskJSON は Task の wire 表現。gRPC 側の proto と同じフィールド集合。
type taskJSON struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// updateTaskRequest のポインタフィールドは「JSON にキーが無い＝nil＝未指定」。
// 空文字を明示的に送ったケース（*p == ""）とはここで区別される。
type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func toTaskJSON(t *domain_task.Task) taskJSON {
	return taskJSON{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

type taskHandlers struct {
	repo   domain_task.Repository
	logger *zap.Logger
}

func (h *taskHandlers) register(mux *http.ServeMux) {
	mux.HandleFunc("POST /tasks", h.create)
	mux.HandleFunc("GET /tasks", h.list)
	mux.HandleFunc("GET /tasks/{id}", h.get)
	mux.HandleFunc("PUT /tasks/{id}", h.update)
	mux.HandleFunc("DELETE /tasks/{id}", h.delete)
}

// pathID は {id} を int64 として取り出す。数値でなければ 0, false。
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (h *taskHandlers) create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.repo.Create(r.Context(), req.Title, req.Description)
	if err != nil {
		writeRepoError(w, h.logger, err, "task")
		return
	}
	writeJSON(w, http.StatusCreated, toTaskJSON(t))
}

func (h *taskHandlers) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	t, err := h.repo.Get(r.Context(), id)
	if err != nil {
		writeRepoError(w, h.logger, err, "task")
		return
	}
	writeJSON(w, http.StatusOK, toTaskJSON(t))
}

func (h *taskHandlers) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		writeRepoError(w, h.logger, err, "task")
		return
	}

	// 0件でも null ではなく [] を返す
	out := make([]taskJSON, 0, len(list))
	for _, t := range list {
		out = append(out, toTaskJSON(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *taskHandlers) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.repo.Update(r.Context(), id, domain_task.Patch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		writeRepoError(w, h.logger, err, "task")
		return
	}
	writeJSON(w, http.StatusOK, toTaskJSON(t))
}

func (h *taskHandlers) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid task id")
		return
	}

	ok, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		writeRepoError(w, h.logger, err, "task")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
