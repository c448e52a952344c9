// internal/handlers/state_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"gridapp/internal/app"
	"gridapp/internal/config"
	"gridapp/internal/model"
	"gridapp/internal/webutil"
)

// StateHandler はアプリケーション全体の状態スナップショット・ビュー遷移・
// 設定のHTTP入口です。
type StateHandler struct {
	app    *app.App
	logger *slog.Logger
}

func NewStateHandler(a *app.App, logger *slog.Logger) *StateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateHandler{app: a, logger: logger}
}

// GetState はUIが購読する状態スナップショットを返します
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetState"))

	payload := map[string]any{
		"topics":        h.app.Topics(),
		"currentTopic":  h.app.CurrentTopic(),
		"currentFolder": h.app.CurrentFolder(),
		"currentView":   h.app.CurrentView(),
		"syncStatus":    h.app.SyncStatus(),
		"isLoading":     h.app.IsLoading(),
		"darkMode":      h.app.IsDarkMode(),
	}
	if msg := h.app.LastError(); msg != "" {
		payload["error"] = msg
	}
	webutil.RespondWithJSON(w, http.StatusOK, payload, logger)
}

// SelectTopic は現在のトピックを切り替えます。空IDは選択解除です。
func (h *StateHandler) SelectTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SelectTopic"))

	var body struct {
		TopicID string `json:"topicId"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.SelectTopic(body.TopicID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.app.CurrentTopic(), logger)
}

// SetView は現在のビューを切り替えます
func (h *StateHandler) SetView(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SetView"))

	var body struct {
		View model.ViewType `json:"view"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil || !body.View.Valid() {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "La vista indicada no es valida.", "view", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	h.app.SetView(body.View)
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"currentView": body.View}, logger)
}

// RefreshCurrentTopic は選択中トピックの内容をリモートで更新します。
// 未選択・オフライン時はno-opです。
func (h *StateHandler) RefreshCurrentTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "RefreshCurrentTopic"))

	if err := h.app.RefreshCurrentTopic(r.Context()); err != nil {
		logger.Error("Error refreshing current topic", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.app.CurrentTopic(), logger)
}

// GetSettings は永続化済みの設定を返します
func (h *StateHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetSettings"))
	webutil.RespondWithJSON(w, http.StatusOK, h.app.Settings(), logger)
}

// UpdateSettings は設定の部分更新を適用し、マージ後の全設定を返します
func (h *StateHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateSettings"))

	var patch model.SettingsPatch
	if err := webutil.DecodeJSONBody(r, &patch); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if patch.FontSize != nil && !patch.FontSize.Valid() {
		appErr := model.NewAppError("VALIDATION_ERROR", "El tamano de fuente no es valido.", "fontSize", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	settings := h.app.UpdateSettings(patch)
	logger.Info("Settings updated")
	webutil.RespondWithJSON(w, http.StatusOK, settings, logger)
}

// ToggleDarkMode はダークモードを反転して永続化します
func (h *StateHandler) ToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ToggleDarkMode"))

	darkMode := h.app.ToggleDarkMode()
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"darkMode": darkMode}, logger)
}

// ClearError はエラースロットを明示的にクリアします
func (h *StateHandler) ClearError(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ClearError"))

	h.app.ClearError()
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"error": ""}, logger)
}

// Health はリモートとローカルストアの疎通状況を返します
func (h *StateHandler) Health(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Health"))

	remoteOK, storeOK := h.app.Ping(r.Context())
	status := http.StatusOK
	if !storeOK {
		status = http.StatusServiceUnavailable
	}
	webutil.RespondWithJSON(w, status, map[string]any{
		"status":  config.AppName,
		"version": config.AppVersion,
		"remote":  remoteOK,
		"store":   storeOK,
	}, logger)
}
