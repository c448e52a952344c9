// internal/handlers/study_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"gridapp/internal/app"
	"gridapp/internal/model"
	"gridapp/internal/session"
	"gridapp/internal/webutil"
)

// StudyHandler は学習セッション状態機械のHTTP入口です。
// キーボード操作 (←/→/Espacio/R など) はUI側でこれらのエンドポイントに変換されます。
type StudyHandler struct {
	app    *app.App
	logger *slog.Logger
}

func NewStudyHandler(a *app.App, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{app: a, logger: logger}
}

// Start は選択中トピックのカードを遅延取得してセッションを開始します
func (h *StudyHandler) Start(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyStart"))

	if err := h.app.StartStudy(r.Context()); err != nil {
		logger.Error("Error starting study session", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	state, err := h.app.Study(nil)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Study session started",
		slog.String("topic_id", state.TopicID), slog.Int("total_cards", state.TotalCards))
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}

// State は現在のセッション状態を返します
func (h *StudyHandler) State(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "StudyState", nil)
}

// Next は次のカードへ進みます。最後のカードではno-opです。
func (h *StudyHandler) Next(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "StudyNext", func(s *session.Session) { s.GoToNext() })
}

// Previous は前のカードへ戻ります。先頭ではno-opです。
func (h *StudyHandler) Previous(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "StudyPrevious", func(s *session.Session) { s.GoToPrevious() })
}

// GoTo は指定インデックスのカードへジャンプします
func (h *StudyHandler) GoTo(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyGoTo"))

	var body struct {
		Index int `json:"index"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El cuerpo de la peticion no es valido.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	h.apply(w, r, "StudyGoTo", func(s *session.Session) { s.GoToCard(body.Index) })
}

// Reveal は現在のカードの1カラムを公開します
func (h *StudyHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "StudyReveal"))

	var body struct {
		ColumnName string `json:"columnName"`
	}
	if err := webutil.DecodeJSONBody(r, &body); err != nil || body.ColumnName == "" {
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "El nombre de la columna es obligatorio.", "columnName", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	h.apply(w, r, "StudyReveal", func(s *session.Session) { s.RevealCell(body.ColumnName) })
}

// RevealAll は全カラムを一度に公開します (ショートカット: Espacio)
func (h *StudyHandler) RevealAll(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "StudyRevealAll", func(s *session.Session) { s.RevealAllCells() })
}

// ResetCard は現在のカードの公開状態だけをクリアします (ショートカット: R)
func (h *StudyHandler) ResetCard(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "StudyResetCard", func(s *session.Session) { s.ResetCurrentCard() })
}

// Reset はセッションを初期状態へ戻し、永続化済み進捗を消去します
func (h *StudyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, "StudyReset", func(s *session.Session) { s.ResetSession() })
}

func (h *StudyHandler) apply(w http.ResponseWriter, r *http.Request, name string, fn func(*session.Session)) {
	logger := h.logger.With(slog.String("handler", name))

	state, err := h.app.Study(fn)
	if err != nil {
		logger.Warn("No active study session", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, state, logger)
}
