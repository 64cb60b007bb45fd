package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/planner/internal/model"
	"github.com/nhle/planner/internal/seed"
	"github.com/nhle/planner/internal/server"
	"github.com/nhle/planner/internal/store"
	"github.com/nhle/planner/tests/testutil"
)

type harness struct {
	t     *testing.T
	store *store.SQLStore
	h     http.Handler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	st := testutil.NewTestStore(t)
	logger, _ := logtest.NewNullLogger()
	entry := logger.WithField("component", "test")
	srv := server.New(st, seed.New(st, entry), testutil.TestTokenSecret, entry)
	return &harness{t: t, store: st, h: srv.Handler()}
}

func (h *harness) do(method, path, token, body string) *httptest.ResponseRecorder {
	h.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestRequiresIdentity(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/api/todos", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = h.do(http.MethodGet, "/api/todos", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).
		SignedString([]byte("wrong-secret"))
	require.NoError(t, err)
	rec = h.do(http.MethodGet, "/api/todos", forged, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired := testutil.NewToken(t, "u1", map[string]interface{}{
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	rec = h.do(http.MethodGet, "/api/todos", expired, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "u1"}).
		SignedString(testutil.TestTokenSecret)
	require.NoError(t, err)
	rec = h.do(http.MethodGet, "/api/todos", noExpiry, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRejectsOversizedBody(t *testing.T) {
	h := newHarness(t)
	token := testutil.NewToken(t, "u1", nil)

	title := strings.Repeat("a", 2<<20)
	rec := h.do(http.MethodPost, "/api/todos", token, `{"title":"`+title+`","dayOfWeek":1}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	todos, err := h.store.GetTodos(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestAuthUserSeedsOnFirstCall(t *testing.T) {
	h := newHarness(t)
	token := testutil.NewToken(t, "u1", map[string]interface{}{
		"email":      "ada@example.com",
		"first_name": "Ada",
	})

	rec := h.do(http.MethodGet, "/api/auth/user", token, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	user := decodeBody[model.User](t, rec)
	assert.Equal(t, "u1", user.ID)
	require.NotNil(t, user.Email)
	assert.Equal(t, "ada@example.com", *user.Email)
	assert.Equal(t, "Ada", *user.FirstName)

	rec = h.do(http.MethodGet, "/api/auth/user", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = h.do(http.MethodGet, "/api/todos", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]model.Todo](t, rec), 11)

	rec = h.do(http.MethodGet, "/api/schedule", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]model.ScheduleItem](t, rec), 20)

	rec = h.do(http.MethodGet, "/api/assignments", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]model.Assignment](t, rec), 3)
}

func TestTodoEndpoints(t *testing.T) {
	h := newHarness(t)
	alice := testutil.NewToken(t, "alice", nil)
	bob := testutil.NewToken(t, "bob", nil)

	rec := h.do(http.MethodPost, "/api/todos", alice, `{"title":"Read","dayOfWeek":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	todo := decodeBody[model.Todo](t, rec)
	assert.Equal(t, "alice", todo.UserID)
	assert.Equal(t, model.CategoryOther, todo.Category)
	assert.Equal(t, model.PriorityMedium, todo.Priority)
	assert.False(t, todo.Completed)

	rec = h.do(http.MethodPost, "/api/todos", alice, `{"title":"Read","dayOfWeek":1,"userId":"bob"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "userId must not be supplied")

	rec = h.do(http.MethodPost, "/api/todos", alice, `{"dayOfWeek":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "title is required")

	rec = h.do(http.MethodPatch, "/api/todos/"+todo.ID, bob, `{"completed":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Todo not found")

	rec = h.do(http.MethodPatch, "/api/todos/"+todo.ID, alice, `{"completed":true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeBody[model.Todo](t, rec)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Read", updated.Title)

	rec = h.do(http.MethodGet, "/api/todos", bob, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody[[]model.Todo](t, rec))

	rec = h.do(http.MethodDelete, "/api/todos/"+todo.ID, bob, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = h.do(http.MethodDelete, "/api/todos/"+todo.ID, alice, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = h.do(http.MethodDelete, "/api/todos/"+todo.ID, alice, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleAssignmentAndQuickTaskEndpoints(t *testing.T) {
	h := newHarness(t)
	token := testutil.NewToken(t, "u1", nil)

	rec := h.do(http.MethodPost, "/api/schedule", token, `{"title":"Lecture","time":"09:00","dayOfWeek":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	item := decodeBody[model.ScheduleItem](t, rec)
	assert.Equal(t, "09:00", item.Time)

	rec = h.do(http.MethodPatch, "/api/schedule/"+item.ID, token, `{"time":"10:15"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "10:15", decodeBody[model.ScheduleItem](t, rec).Time)

	rec = h.do(http.MethodPost, "/api/schedule", token, `{"title":"Early","time":"9:30","dayOfWeek":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "time must use the HH:MM format")

	rec = h.do(http.MethodPost, "/api/schedule", token, `{"title":"Early","time":"08:30","dayOfWeek":2}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = h.do(http.MethodGet, "/api/schedule", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[[]model.ScheduleItem](t, rec)
	require.Len(t, items, 2)
	assert.Equal(t, "08:30", items[0].Time)
	assert.Equal(t, "10:15", items[1].Time)

	rec = h.do(http.MethodPost, "/api/assignments", token, `{"title":"Essay","dueDate":"2026-11-01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assignment := decodeBody[model.Assignment](t, rec)

	rec = h.do(http.MethodPatch, "/api/assignments/"+assignment.ID, token, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no fields to update")

	rec = h.do(http.MethodPost, "/api/quick-tasks", token, `{"title":"Buy milk","priority":"high"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	task := decodeBody[model.QuickTask](t, rec)
	assert.Equal(t, model.PriorityHigh, task.Priority)

	rec = h.do(http.MethodPatch, "/api/quick-tasks/missing", token, `{"completed":true}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Quick task not found")

	rec = h.do(http.MethodGet, "/api/quick-tasks", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]model.QuickTask](t, rec), 1)
}

func TestHealth(t *testing.T) {
	h := newHarness(t)

	rec := h.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
