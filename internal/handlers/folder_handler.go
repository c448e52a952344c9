// internal/handlers/folder_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"gridapp/internal/app"
	"gridapp/internal/model"
	"gridapp/internal/webutil"

	"github.com/go-chi/chi/v5"
)

// FolderHandler はフォルダ操作とフォルダ内検索のHTTP入口です。
// リモート未設定時、フォルダ機能は使用できません（一覧は空になります）。
type FolderHandler struct {
	app    *app.App
	logger *slog.Logger
}

func NewFolderHandler(a *app.App, logger *slog.Logger) *FolderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FolderHandler{app: a, logger: logger}
}

// GetFolders はフォルダ一覧と未分類トピック一覧を返します
func (h *FolderHandler) GetFolders(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetFolders"))

	if err := h.app.LoadFolders(r.Context()); err != nil {
		logger.Error("Error loading folders", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.app.Folders(), logger)
}

// CreateFolder はフォルダを作成し、一覧を再読込して返します
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateFolder"))

	var req model.CreateFolderRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if appErr := webutil.ValidateStruct(req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.CreateFolder(r.Context(), req.Name); err != nil {
		logger.Error("Error creating folder", slog.Any("error", err), slog.String("name", req.Name))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Folder created successfully", slog.String("name", req.Name))
	webutil.RespondWithJSON(w, http.StatusCreated, h.app.Folders(), logger)
}

// DeleteFolder はフォルダを削除します。メンバーのトピックは未分類に戻ります。
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteFolder"))

	folderID := chi.URLParam(r, "folderId")
	if err := h.app.DeleteFolder(r.Context(), folderID); err != nil {
		logger.Error("Error deleting folder", slog.Any("error", err), slog.String("folder_id", folderID))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.app.Folders(), logger)
}

// AssignTopic はトピックをフォルダへ割り当てます（再割当は暗黙の移動）
func (h *FolderHandler) AssignTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AssignTopic"))

	var req model.AssignTopicRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if appErr := webutil.ValidateStruct(req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.AssignTopicToFolder(r.Context(), &req); err != nil {
		logger.Error("Error assigning topic to folder", slog.Any("error", err),
			slog.String("topic", req.TopicName), slog.String("folder_id", req.FolderID))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.app.Folders(), logger)
}

// UnassignTopic はトピックをフォルダから外して未分類に戻します
func (h *FolderHandler) UnassignTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UnassignTopic"))

	var body struct {
		TopicName string `json:"topicName"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil || body.TopicName == "" {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El nombre del tema es obligatorio.", "topicName", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.RemoveTopicFromFolder(r.Context(), body.TopicName); err != nil {
		logger.Error("Error removing topic from folder", slog.Any("error", err),
			slog.String("topic", body.TopicName))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.app.Folders(), logger)
}

// SelectFolder は現在のフォルダを切り替えます（検索スコープになる）
func (h *FolderHandler) SelectFolder(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SelectFolder"))

	var body struct {
		FolderID string `json:"folderId"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.SelectFolder(body.FolderID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, h.app.CurrentFolder(), logger)
}

// Search は選択中フォルダを対象にデバウンス付き検索を予約します。
// 結果は確定し次第 SearchResults で参照できます。
func (h *FolderHandler) Search(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "Search"))

	var body struct {
		Query string `json:"query"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	h.app.SearchInFolder(body.Query)
	webutil.RespondWithJSON(w, http.StatusAccepted, map[string]any{"accepted": true}, logger)
}

// SearchResults は直近に確定した検索結果を返します
func (h *FolderHandler) SearchResults(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SearchResults"))
	webutil.RespondWithJSON(w, http.StatusOK,
		model.SearchResponse{Results: h.app.SearchResults()}, logger)
}
