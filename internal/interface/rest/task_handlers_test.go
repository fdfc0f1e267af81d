package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/teooliver/taskstore/internal/infrastructure/memory"
	"go.uber.org/zap"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return NewRouter(memory.NewTaskRepository(), memory.NewUserRepository(), zap.NewNop())
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeTask(t *testing.T, rec *httptest.ResponseRecorder) taskJSON {
	t.Helper()
	var out taskJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode body %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestTasks_Create(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/tasks", `{"title":"買い物","description":"牛乳"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	task := decodeTask(t, rec)
	if task.ID == 0 {
		t.Errorf("expected non-zero id")
	}
	if task.Title != "買い物" || task.Description != "牛乳" || task.Completed {
		t.Errorf("unexpected task: %+v", task)
	}
}

func TestTasks_Create_BadJSON(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/tasks", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTasks_Get_NotFound(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/tasks/999", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	// エラーは {"error": "..."} の形
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("expected error field, got %q", rec.Body.String())
	}
}

func TestTasks_Get_InvalidID(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/tasks/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTasks_List_EmptyIsArray(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/tasks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("expected empty array, got %q", got)
	}
}

func TestTasks_List_NewestFirst(t *testing.T) {
	h := newTestRouter(t)

	doRequest(t, h, http.MethodPost, "/tasks", `{"title":"first"}`)
	doRequest(t, h, http.MethodPost, "/tasks", `{"title":"second"}`)

	rec := doRequest(t, h, http.MethodGet, "/tasks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var list []taskJSON
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(list))
	}
	if list[0].Title != "second" || list[1].Title != "first" {
		t.Errorf("expected newest first, got %q, %q", list[0].Title, list[1].Title)
	}
}

func TestTasks_Update_PartialMerge(t *testing.T) {
	h := newTestRouter(t)

	created := decodeTask(t, doRequest(t, h, http.MethodPost, "/tasks",
		`{"title":"original","description":"keep"}`))

	// completed だけ送る。キーの無いフィールドは保持
	rec := doRequest(t, h, http.MethodPut, "/tasks/"+itoa(created.ID), `{"completed":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	updated := decodeTask(t, rec)
	if !updated.Completed {
		t.Errorf("expected completed=true")
	}
	if updated.Title != "original" || updated.Description != "keep" {
		t.Errorf("expected other fields preserved, got %+v", updated)
	}
}

func TestTasks_Update_ExplicitEmptyString(t *testing.T) {
	h := newTestRouter(t)

	created := decodeTask(t, doRequest(t, h, http.MethodPost, "/tasks",
		`{"title":"title","description":"to clear"}`))

	rec := doRequest(t, h, http.MethodPut, "/tasks/"+itoa(created.ID), `{"description":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	updated := decodeTask(t, rec)
	if updated.Description != "" {
		t.Errorf("expected description cleared, got %q", updated.Description)
	}
	if updated.Title != "title" {
		t.Errorf("expected title preserved, got %q", updated.Title)
	}
}

func TestTasks_Update_NotFound(t *testing.T) {
	h := newTestRouter(t)

	rec := doRequest(t, h, http.MethodPut, "/tasks/999", `{"title":"x"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestTasks_Delete(t *testing.T) {
	h := newTestRouter(t)

	created := decodeTask(t, doRequest(t, h, http.MethodPost, "/tasks", `{"title":"to delete"}`))

	rec := doRequest(t, h, http.MethodDelete, "/tasks/"+itoa(created.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	// 二度目は 404
	rec = doRequest(t, h, http.MethodDelete, "/tasks/"+itoa(created.ID), "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}
