// internal/handlers/topic_handler.go
package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"gridapp/internal/app"
	"gridapp/internal/model"
	"gridapp/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type TopicHandler struct {
	app    *app.App
	logger *slog.Logger
}

func NewTopicHandler(a *app.App, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicHandler{app: a, logger: logger}
}

// topicNameParam はURLパラメータからトピック名を取り出します（URLエスケープを解く）
func topicNameParam(r *http.Request) string {
	raw := chi.URLParam(r, "topicName")
	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return name
}

// GetTopics はキャッシュ優先でトピック一覧を読み込み、同期状態とともに返します
func (h *TopicHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopics"))

	if err := h.app.LoadTopics(r.Context()); err != nil {
		// 読み込み失敗でもキャッシュ分は返せる。エラーはスロット経由で伝える
		logger.Warn("Topics loaded with error, serving cache", slog.String("error", err.Error()))
	}

	payload := map[string]any{
		"topics":     h.app.Topics(),
		"syncStatus": h.app.SyncStatus(),
	}
	if msg := h.app.LastError(); msg != "" {
		payload["error"] = msg
	}
	webutil.RespondWithJSON(w, http.StatusOK, payload, logger)
}

// CreateTopic は新しいトピックを作成するためのハンドラ
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "CreateTopic"))

	var req model.CreateTopicRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	// バリデーションはリモート呼び出しの前に行う。違反時は状態を変更しない
	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}
	if appErr := validateColumnNames(req.Columns); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.CreateTopic(r.Context(), &req); err != nil {
		logger.Error("Error creating topic", slog.Any("error", err), slog.String("title", req.Title))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Topic created successfully", slog.String("title", req.Title))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]any{"topics": h.app.Topics()}, logger)
}

// validateColumnNames はカラム名の重複を検査します
func validateColumnNames(columns []model.ColumnInput) *model.AppError {
	seen := map[string]bool{}
	for _, c := range columns {
		if seen[c.Name] {
			return model.NewAppError(
				"VALIDATION_ERROR",
				"El nombre de columna esta duplicado: "+c.Name,
				"columns",
				model.ErrInvalidInput,
			)
		}
		seen[c.Name] = true
	}
	return nil
}

// DeleteTopic はトピックを削除するためのハンドラ。学習進捗の削除にカスケードします。
func (h *TopicHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteTopic"))

	topicName := topicNameParam(r)
	if topicName == "" {
		appErr := model.NewAppError("INVALID_URL_PARAM", "El nombre del tema es obligatorio.", "topicName", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.DeleteTopic(r.Context(), topicName); err != nil {
		logger.Error("Error deleting topic", slog.Any("error", err), slog.String("topic", topicName))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Topic deleted successfully", slog.String("topic", topicName))
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"deleted": topicName}, logger)
}

// GetCards はトピックのカード一覧とヘッダを返します
func (h *TopicHandler) GetCards(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetCards"))

	topicName := topicNameParam(r)
	result, err := h.app.GetTopicCards(r.Context(), topicName)
	if err != nil {
		logger.Error("Error loading cards", slog.Any("error", err), slog.String("topic", topicName))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, result, logger)
}

// AddCard はトピックにカードを追加するためのハンドラ
func (h *TopicHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "AddCard"))

	var body struct {
		Cells model.CellData `json:"cells"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	req := model.AddCardRequest{TopicName: topicNameParam(r), Cells: body.Cells}
	if appErr := webutil.ValidateStruct(req); appErr != nil {
		logger.Warn("Validation failed", slog.String("error", appErr.Error()))
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.AddCard(r.Context(), &req); err != nil {
		logger.Error("Error adding card", slog.Any("error", err), slog.String("topic", req.TopicName))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Card added successfully", slog.String("topic", req.TopicName))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]any{"topics": h.app.Topics()}, logger)
}

// UpdateCard は既存カードのセル内容を更新するためのハンドラ
func (h *TopicHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateCard"))

	rowID, err := strconv.ParseInt(chi.URLParam(r, "rowId"), 10, 64)
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "La fila no es valida.", "rowId", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	var body struct {
		Cells model.CellData `json:"cells"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	req := model.UpdateCardRequest{TopicName: topicNameParam(r), RowID: rowID, Cells: body.Cells}
	if appErr := webutil.ValidateStruct(req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.UpdateCard(r.Context(), &req); err != nil {
		logger.Error("Error updating card", slog.Any("error", err),
			slog.String("topic", req.TopicName), slog.Int64("row_id", rowID))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"updated": rowID}, logger)
}

// DeleteCard はカードを削除するためのハンドラ
func (h *TopicHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "DeleteCard"))

	rowID, err := strconv.ParseInt(chi.URLParam(r, "rowId"), 10, 64)
	if err != nil {
		appErr := model.NewAppError("INVALID_URL_PARAM", "La fila no es valida.", "rowId", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	req := model.DeleteCardRequest{TopicName: topicNameParam(r), RowID: rowID}
	if err := h.app.DeleteCard(r.Context(), &req); err != nil {
		logger.Error("Error deleting card", slog.Any("error", err),
			slog.String("topic", req.TopicName), slog.Int64("row_id", rowID))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"deleted": rowID}, logger)
}

// UploadImage は画像をアップロードしてホスト済みURLを返します
func (h *TopicHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UploadImage"))

	var req model.UploadImageRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	if appErr := webutil.ValidateStruct(req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	imageURL, err := h.app.UploadImage(r.Context(), &req)
	if err != nil {
		logger.Error("Error uploading image", slog.Any("error", err), slog.String("file", req.FileName))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Image uploaded successfully", slog.String("file", req.FileName))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]any{"url": imageURL}, logger)
}

// GetTopicConfig はトピックのカラム設定を返します
func (h *TopicHandler) GetTopicConfig(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopicConfig"))

	topicName := topicNameParam(r)
	cfg, err := h.app.GetTopicConfig(r.Context(), topicName)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, cfg, logger)
}

// UpdateTopicConfig はトピックのカラム設定を更新します
func (h *TopicHandler) UpdateTopicConfig(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "UpdateTopicConfig"))

	var body struct {
		Columns []model.ColumnConfig `json:"columns"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	req := model.UpdateTopicConfigRequest{TopicName: topicNameParam(r), Columns: body.Columns}
	if appErr := webutil.ValidateStruct(req); appErr != nil {
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := h.app.UpdateTopicConfig(r.Context(), &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, map[string]any{"updated": req.TopicName}, logger)
}

// SyncData は現在のトピック一覧をリモートへ一括同期します
func (h *TopicHandler) SyncData(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "SyncData"))

	results, err := h.app.SyncData(r.Context())
	if err != nil {
		logger.Error("Error syncing data", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, results, logger)
}
