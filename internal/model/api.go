// internal/model/api.go
package model

import "encoding/json"

// SyncStatus はリモートとの直近の同期状態を表します
type SyncStatus string

const (
	SyncSynced  SyncStatus = "synced"
	SyncSyncing SyncStatus = "syncing"
	SyncError   SyncStatus = "error"
	SyncOffline SyncStatus = "offline"
)

// ViewType は表示中の画面を表します
type ViewType string

const (
	ViewDashboard ViewType = "dashboard"
	ViewCreator   ViewType = "creator"
	ViewEditor    ViewType = "editor"
	ViewStudy     ViewType = "study"
	ViewSettings  ViewType = "settings"
)

// Valid は既知のビュー名かどうかを判定します
func (v ViewType) Valid() bool {
	switch v {
	case ViewDashboard, ViewCreator, ViewEditor, ViewStudy, ViewSettings:
		return true
	}
	return false
}

// APIEnvelope はリモートAPIのレスポンス封筒です。
// 成功時: {success:true, data:..., message, timestamp, version}
// 失敗時: {success:false, error:{message, code}}
type APIEnvelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
	Version   string          `json:"version,omitempty"`
	Error     *RemoteError    `json:"error,omitempty"`
}

// RemoteError は封筒レベルの失敗情報です
type RemoteError struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// CardsResult は getCards アクションの結果です
type CardsResult struct {
	Topic      string         `json:"topic"`
	Headers    []ColumnConfig `json:"headers"`
	Cards      []Card         `json:"cards"`
	TotalCards int            `json:"totalCards"`
}

// UploadResult は uploadImage アクションの結果です
type UploadResult struct {
	FileID      string `json:"fileId"`
	FileName    string `json:"fileName"`
	URL         string `json:"url"`
	WebViewLink string `json:"webViewLink"`
	Size        int64  `json:"size"`
}

// DeletedResult は deleteTopic / deleteCard の結果です
type DeletedResult struct {
	Deleted json.RawMessage `json:"deleted"`
}

// SearchResponse は searchInFolder アクションの結果です
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}

// SyncResult は syncData のトピックごとの結果です
type SyncResult struct {
	Topic  string `json:"topic"`
	Status string `json:"status"`
}

// PingResult は ping アクションの結果です
type PingResult struct {
	Status string `json:"status"`
}
