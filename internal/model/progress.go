// internal/model/progress.go
package model

// StudyProgress はトピックごとの学習進捗スナップショットです。
// RevealedCells にはカードIDをキーとして公開済みカラム名を保持しますが、
// 書き込みパスは直近に離脱したカードの1エントリのみを格納します
// （セッションをまたいだ全カード分の履歴は保持しない設計）。
type StudyProgress struct {
	TopicID              string             `json:"topicId"`
	TotalCards           int                `json:"totalCards"`
	ViewedCards          []int              `json:"viewedCards"`
	RevealedCells        map[int64][]string `json:"revealedCells"`
	LastStudied          string             `json:"lastStudied,omitempty"`
	CompletionPercentage float64            `json:"completionPercentage"`
}

// FontSize はフォントサイズ設定の取りうる値です
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// Valid は既知のフォントサイズかどうかを判定します
func (f FontSize) Valid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	}
	return false
}

// AppSettings はプロセス全体の永続化されるユーザ設定です
type AppSettings struct {
	DarkMode          bool     `json:"darkMode"`
	FontSize          FontSize `json:"fontSize"`
	AutoSync          bool     `json:"autoSync"`
	ShowKeyboardHints bool     `json:"showKeyboardHints"`
}

// DefaultSettings は設定が保存されていない場合の既定値を返します
func DefaultSettings() AppSettings {
	return AppSettings{
		DarkMode:          false,
		FontSize:          FontMedium,
		AutoSync:          true,
		ShowKeyboardHints: true,
	}
}

// SettingsPatch は部分更新用のDTOです。nil のフィールドは変更しません。
type SettingsPatch struct {
	DarkMode          *bool     `json:"darkMode,omitempty"`
	FontSize          *FontSize `json:"fontSize,omitempty" validate:"omitempty,oneof=small medium large"`
	AutoSync          *bool     `json:"autoSync,omitempty"`
	ShowKeyboardHints *bool     `json:"showKeyboardHints,omitempty"`
}

// PendingOperationType はオフライン操作キューのエントリ種別です
type PendingOperationType string

const (
	PendingAdd    PendingOperationType = "add"
	PendingUpdate PendingOperationType = "update"
	PendingDelete PendingOperationType = "delete"
)

// PendingOperation はオフライン時のカード操作を後で再送するためのキューエントリです。
// 現行の書き込みパスはこのキューを使用しません（データモデルとして予約）。
type PendingOperation struct {
	ID        string               `json:"id"`
	Type      PendingOperationType `json:"type"`
	TopicName string               `json:"topicName"`
	Data      map[string]any       `json:"data"`
	Timestamp int64                `json:"timestamp"`
}
