// internal/handlers/topic_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gridapp/internal/app"
	"gridapp/internal/model"
	repomocks "gridapp/internal/repository/mocks"
	storemocks "gridapp/internal/store/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- テストヘルパー関数 ---

func newHandlerTestApp(t *testing.T, repo *repomocks.Repository) *app.App {
	t.Helper()
	st := new(storemocks.Store)
	st.On("GetSettings").Return(model.DefaultSettings()).Maybe()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return app.New(repo, st, testLogger)
}

func newTestRouter(a *app.App) *chi.Mux {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewTopicHandler(a, testLogger)

	r := chi.NewRouter()
	r.Route("/api/v1/topics", func(r chi.Router) {
		r.Get("/", h.GetTopics)
		r.Post("/", h.CreateTopic)
		r.Route("/{topicName}", func(r chi.Router) {
			r.Delete("/", h.DeleteTopic)
			r.Get("/cards", h.GetCards)
			r.Post("/cards", h.AddCard)
		})
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// --- GetTopics ---

func Test_TopicHandler_GetTopics(t *testing.T) {
	t.Run("正常系: トピック一覧とsyncStatusを返す", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("GetCachedTopics").Return([]model.Topic{})
		repo.On("LoadTopics", mock.Anything).Return([]model.Topic{
			{ID: "latin-sufijos", Name: "Latin - Sufijos", CardCount: 3},
		}, model.SyncOffline, nil)

		router := newTestRouter(newHandlerTestApp(t, repo))
		rec := doJSON(t, router, http.MethodGet, "/api/v1/topics/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var payload struct {
			Topics     []model.Topic    `json:"topics"`
			SyncStatus model.SyncStatus `json:"syncStatus"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Len(t, payload.Topics, 1)
		assert.Equal(t, model.SyncOffline, payload.SyncStatus)
	})

	t.Run("正常系: リモート失敗でも200でキャッシュとエラーメッセージを返す", func(t *testing.T) {
		loadErr := model.NewAppError("NETWORK_ERROR", "Error de conexion", "", model.ErrRemoteUnavailable)
		repo := new(repomocks.Repository)
		repo.On("GetCachedTopics").Return([]model.Topic{{ID: "latin-raices", Name: "Latin - Raices"}})
		repo.On("LoadTopics", mock.Anything).Return([]model.Topic{
			{ID: "latin-raices", Name: "Latin - Raices"},
		}, model.SyncError, loadErr)

		router := newTestRouter(newHandlerTestApp(t, repo))
		rec := doJSON(t, router, http.MethodGet, "/api/v1/topics/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "Error de conexion", payload["error"])
		assert.Equal(t, "error", payload["syncStatus"])
	})
}

// --- CreateTopic ---

func Test_TopicHandler_CreateTopic(t *testing.T) {
	validReq := map[string]any{
		"title": "Mi Tema",
		"columns": []map[string]any{
			{"name": "Palabra", "type": "text"},
			{"name": "Definicion", "type": "text"},
		},
	}

	t.Run("正常系: 201で更新済み一覧を返す", func(t *testing.T) {
		created := &model.Topic{ID: "mi-tema", Name: "Mi Tema"}
		repo := new(repomocks.Repository)
		repo.On("CreateTopic", mock.Anything, mock.Anything, mock.MatchedBy(func(req *model.CreateTopicRequest) bool {
			return req.Title == "Mi Tema" && len(req.Columns) == 2
		})).Return([]model.Topic{*created}, created, nil)

		router := newTestRouter(newHandlerTestApp(t, repo))
		rec := doJSON(t, router, http.MethodPost, "/api/v1/topics/", validReq)

		require.Equal(t, http.StatusCreated, rec.Code)
		repo.AssertExpectations(t)
	})

	t.Run("異常系: タイトル欠落は400でリポジトリを呼ばない", func(t *testing.T) {
		repo := new(repomocks.Repository)
		router := newTestRouter(newHandlerTestApp(t, repo))

		rec := doJSON(t, router, http.MethodPost, "/api/v1/topics/", map[string]any{
			"title":   "",
			"columns": []map[string]any{{"name": "Palabra", "type": "text"}},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Equal(t, "VALIDATION_ERROR", errResp.Error.Code)
		assert.Equal(t, "title", errResp.Error.Field)
		repo.AssertNotCalled(t, "CreateTopic", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("異常系: カラム名の重複は400", func(t *testing.T) {
		repo := new(repomocks.Repository)
		router := newTestRouter(newHandlerTestApp(t, repo))

		rec := doJSON(t, router, http.MethodPost, "/api/v1/topics/", map[string]any{
			"title": "Mi Tema",
			"columns": []map[string]any{
				{"name": "Palabra", "type": "text"},
				{"name": "Palabra", "type": "text"},
			},
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var errResp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Contains(t, errResp.Error.Message, "duplicado")
	})

	t.Run("異常系: カラム7個以上は400", func(t *testing.T) {
		columns := make([]map[string]any, 7)
		for i := range columns {
			columns[i] = map[string]any{"name": string(rune('A' + i)), "type": "text"}
		}
		repo := new(repomocks.Repository)
		router := newTestRouter(newHandlerTestApp(t, repo))

		rec := doJSON(t, router, http.MethodPost, "/api/v1/topics/", map[string]any{
			"title":   "Mi Tema",
			"columns": columns,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("異常系: 未知のフィールドは400", func(t *testing.T) {
		repo := new(repomocks.Repository)
		router := newTestRouter(newHandlerTestApp(t, repo))

		rec := doJSON(t, router, http.MethodPost, "/api/v1/topics/", map[string]any{
			"title":      "Mi Tema",
			"columns":    []map[string]any{{"name": "Palabra", "type": "text"}},
			"inesperado": true,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("異常系: リモート到達不能は502", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("CreateTopic", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil, model.NewAppError("NETWORK_ERROR", "Error de conexion", "", model.ErrRemoteUnavailable))

		router := newTestRouter(newHandlerTestApp(t, repo))
		rec := doJSON(t, router, http.MethodPost, "/api/v1/topics/", validReq)

		require.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

// --- AddCard / GetCards ---

func Test_TopicHandler_AddCard(t *testing.T) {
	t.Run("正常系: URLのトピック名とボディのセルからリクエストを組む", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("AddCard", mock.Anything, mock.Anything, mock.MatchedBy(func(req *model.AddCardRequest) bool {
			return req.TopicName == "Latin - Sufijos" && req.Cells.Get("Sufijo") == "-oso"
		})).Return([]model.Topic{}, &model.Card{ID: time.Now().UnixMilli()}, nil)

		router := newTestRouter(newHandlerTestApp(t, repo))
		rec := doJSON(t, router, http.MethodPost, "/api/v1/topics/Latin%20-%20Sufijos/cards", map[string]any{
			"cells": map[string]string{"Sufijo": "-oso"},
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		repo.AssertExpectations(t)
	})

	t.Run("異常系: タイムアウトは504", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("AddCard", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, nil, model.NewAppError("TIMEOUT", "Request timed out after 30s", "", model.ErrTimeout))

		router := newTestRouter(newHandlerTestApp(t, repo))
		rec := doJSON(t, router, http.MethodPost, "/api/v1/topics/Latin%20-%20Sufijos/cards", map[string]any{
			"cells": map[string]string{"Sufijo": "-oso"},
		})

		require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	})
}

func Test_TopicHandler_GetCards(t *testing.T) {
	t.Run("異常系: 存在しないトピックは404", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("GetCards", mock.Anything, mock.Anything, "Desconocido").
			Return(nil, model.NewAppError("NOT_FOUND", "Topic \"Desconocido\" not found", "", model.ErrNotFound))

		router := newTestRouter(newHandlerTestApp(t, repo))
		rec := doJSON(t, router, http.MethodGet, "/api/v1/topics/Desconocido/cards", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// --- DeleteTopic ---

func Test_TopicHandler_DeleteTopic(t *testing.T) {
	t.Run("正常系: 200でdeletedを返す", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("DeleteTopic", mock.Anything, mock.Anything, "Latin - Sufijos").
			Return([]model.Topic{}, nil)

		router := newTestRouter(newHandlerTestApp(t, repo))
		rec := doJSON(t, router, http.MethodDelete, "/api/v1/topics/Latin%20-%20Sufijos/", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, "Latin - Sufijos", payload["deleted"])
	})
}
