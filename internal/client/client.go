//go:generate mockery --name RemoteClient --output ./mocks --outpkg mocks --case=underscore
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"gridapp/internal/model"
)

// RemoteClient はリモートのアクションAPIに対するステートレスなクライアントです。
// すべての呼び出しはリクエスト単位で、固定タイムアウトを強制します。
// リトライは行いません（方針は呼び出し側の責務）。
type RemoteClient interface {
	IsConfigured() bool

	// トピック
	GetTopics(ctx context.Context) ([]model.Topic, error)
	CreateTopic(ctx context.Context, req *model.CreateTopicRequest) (*model.Topic, error)
	DeleteTopic(ctx context.Context, topicName string) error

	// カード
	GetCards(ctx context.Context, topicName string) (*model.CardsResult, error)
	AddCard(ctx context.Context, req *model.AddCardRequest) (*model.Card, error)
	UpdateCard(ctx context.Context, req *model.UpdateCardRequest) (*model.Card, error)
	DeleteCard(ctx context.Context, req *model.DeleteCardRequest) error

	// 画像
	UploadImage(ctx context.Context, req *model.UploadImageRequest) (*model.UploadResult, error)

	// カラム設定
	GetTopicConfig(ctx context.Context, topicName string) (map[string]string, error)
	UpdateTopicConfig(ctx context.Context, req *model.UpdateTopicConfigRequest) error

	// フォルダ
	GetFolders(ctx context.Context) (*model.FoldersResult, error)
	CreateFolder(ctx context.Context, name string) (*model.Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error
	AssignTopicToFolder(ctx context.Context, req *model.AssignTopicRequest) error
	RemoveTopicFromFolder(ctx context.Context, topicName string) error
	SearchInFolder(ctx context.Context, folderID, query string) ([]model.SearchResult, error)

	// 同期・疎通
	SyncData(ctx context.Context, topics []model.Topic) ([]model.SyncResult, error)
	Ping(ctx context.Context) bool
}

type httpRemoteClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// New はリモートクライアントを作成します。baseURL が空文字列の場合、
// IsConfigured は false を返し、すべての呼び出しは ErrNotConfigured で失敗します。
func New(baseURL string, timeout time.Duration, logger *slog.Logger) RemoteClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &httpRemoteClient{
		baseURL: baseURL,
		timeout: timeout,
		// タイムアウトはリクエストごとのcontextで制御する
		httpClient: &http.Client{},
		logger:     logger,
	}
}

func (c *httpRemoteClient) IsConfigured() bool {
	return c.baseURL != ""
}

// doGet は action とパラメータをクエリ文字列に載せてGETし、封筒を剥がして out に展開します
func (c *httpRemoteClient) doGet(ctx context.Context, action string, params map[string]string, out any) error {
	if !c.IsConfigured() {
		return model.NewAppError("NOT_CONFIGURED", "Remote endpoint is not configured", "", model.ErrNotConfigured)
	}

	query := url.Values{}
	query.Set("action", action)
	for k, v := range params {
		query.Set(k, v)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return model.NewAppError("INTERNAL", err.Error(), "", model.ErrInternalServer)
	}
	req.Header.Set("Accept", "application/json")

	return c.execute(req, action, out)
}

// doPost は action をボディに埋め込んでPOSTし、封筒を剥がして out に展開します
func (c *httpRemoteClient) doPost(ctx context.Context, action string, payload map[string]any, out any) error {
	if !c.IsConfigured() {
		return model.NewAppError("NOT_CONFIGURED", "Remote endpoint is not configured", "", model.ErrNotConfigured)
	}

	body := map[string]any{"action": action}
	for k, v := range payload {
		body[k] = v
	}
	data, err := json.Marshal(body)
	if err != nil {
		return model.NewAppError("INTERNAL", err.Error(), "", model.ErrInternalServer)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return model.NewAppError("INTERNAL", err.Error(), "", model.ErrInternalServer)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.execute(req, action, out)
}

// execute はリクエストを送信し、トランスポート・封筒両方の失敗をAppErrorに正規化します
func (c *httpRemoteClient) execute(req *http.Request, action string, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.logger.Warn("Remote request timed out",
				"action", action, "timeout", c.timeout.String())
			return model.NewAppError("TIMEOUT",
				fmt.Sprintf("Request timed out after %s", c.timeout), "", model.ErrTimeout)
		}
		c.logger.Warn("Remote request failed", "action", action, "error", err)
		return model.NewAppError("NETWORK_ERROR", "Error de conexion", "", model.ErrRemoteUnavailable)
	}
	defer resp.Body.Close()

	// 非2xxは封筒の内容に関わらずHTTPステータスエラー
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("Remote returned non-2xx status",
			"action", action, "status", resp.StatusCode)
		return model.NewAppError("HTTP_ERROR",
			fmt.Sprintf("HTTP error! status: %d", resp.StatusCode), "", model.ErrRemoteUnavailable)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.NewAppError("NETWORK_ERROR", "Error reading response body", "", model.ErrRemoteUnavailable)
	}

	var envelope model.APIEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.logger.Warn("Remote returned malformed envelope", "action", action, "error", err)
		return model.NewAppError("BAD_ENVELOPE", "Malformed response from remote", "", model.ErrRemoteUnavailable)
	}

	if !envelope.Success {
		message := "Unknown error"
		if envelope.Error != nil && envelope.Error.Message != "" {
			message = envelope.Error.Message
		}
		c.logger.Warn("Remote reported failure", "action", action, "message", message)
		return model.NewAppError("REMOTE_ERROR", message, "", model.ErrRemoteUnavailable)
	}

	c.logger.Debug("Remote request completed",
		"action", action, "latency_ms", float64(time.Since(start).Nanoseconds())/1e6)

	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return model.NewAppError("BAD_ENVELOPE", "Malformed data in response", "", model.ErrRemoteUnavailable)
		}
	}
	return nil
}

// --- トピック ---

func (c *httpRemoteClient) GetTopics(ctx context.Context) ([]model.Topic, error) {
	var topics []model.Topic
	if err := c.doGet(ctx, "getTopics", nil, &topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (c *httpRemoteClient) CreateTopic(ctx context.Context, req *model.CreateTopicRequest) (*model.Topic, error) {
	var topic model.Topic
	payload := map[string]any{
		"title":   req.Title,
		"columns": req.Columns,
	}
	if err := c.doPost(ctx, "createTopic", payload, &topic); err != nil {
		return nil, err
	}
	return &topic, nil
}

func (c *httpRemoteClient) DeleteTopic(ctx context.Context, topicName string) error {
	var deleted model.DeletedResult
	return c.doPost(ctx, "deleteTopic", map[string]any{"topicName": topicName}, &deleted)
}

// --- カード ---

func (c *httpRemoteClient) GetCards(ctx context.Context, topicName string) (*model.CardsResult, error) {
	var result model.CardsResult
	if err := c.doGet(ctx, "getCards", map[string]string{"topic": topicName}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpRemoteClient) AddCard(ctx context.Context, req *model.AddCardRequest) (*model.Card, error) {
	var card model.Card
	payload := map[string]any{
		"topicName": req.TopicName,
		"cells":     req.Cells,
	}
	if err := c.doPost(ctx, "addCard", payload, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *httpRemoteClient) UpdateCard(ctx context.Context, req *model.UpdateCardRequest) (*model.Card, error) {
	var card model.Card
	payload := map[string]any{
		"topicName": req.TopicName,
		"rowId":     req.RowID,
		"cells":     req.Cells,
	}
	if err := c.doPost(ctx, "updateCard", payload, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (c *httpRemoteClient) DeleteCard(ctx context.Context, req *model.DeleteCardRequest) error {
	var deleted model.DeletedResult
	payload := map[string]any{
		"topicName": req.TopicName,
		"rowId":     req.RowID,
	}
	return c.doPost(ctx, "deleteCard", payload, &deleted)
}

// --- 画像 ---

func (c *httpRemoteClient) UploadImage(ctx context.Context, req *model.UploadImageRequest) (*model.UploadResult, error) {
	var result model.UploadResult
	payload := map[string]any{
		"imageData": req.ImageData,
		"fileName":  req.FileName,
		"mimeType":  req.MimeType,
	}
	if err := c.doPost(ctx, "uploadImage", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// --- カラム設定 ---

func (c *httpRemoteClient) GetTopicConfig(ctx context.Context, topicName string) (map[string]string, error) {
	config := map[string]string{}
	if err := c.doGet(ctx, "getTopicConfig", map[string]string{"topic": topicName}, &config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *httpRemoteClient) UpdateTopicConfig(ctx context.Context, req *model.UpdateTopicConfigRequest) error {
	payload := map[string]any{
		"topicName": req.TopicName,
		"columns":   req.Columns,
	}
	return c.doPost(ctx, "updateTopicConfig", payload, nil)
}

// --- フォルダ ---

func (c *httpRemoteClient) GetFolders(ctx context.Context) (*model.FoldersResult, error) {
	var result model.FoldersResult
	if err := c.doPost(ctx, "getFolders", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpRemoteClient) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	var folder model.Folder
	if err := c.doPost(ctx, "createFolder", map[string]any{"name": name}, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (c *httpRemoteClient) DeleteFolder(ctx context.Context, folderID string) error {
	return c.doPost(ctx, "deleteFolder", map[string]any{"folderId": folderID}, nil)
}

func (c *httpRemoteClient) AssignTopicToFolder(ctx context.Context, req *model.AssignTopicRequest) error {
	payload := map[string]any{
		"topicName":  req.TopicName,
		"folderId":   req.FolderID,
		"folderName": req.FolderName,
	}
	return c.doPost(ctx, "assignTopicToFolder", payload, nil)
}

func (c *httpRemoteClient) RemoveTopicFromFolder(ctx context.Context, topicName string) error {
	return c.doPost(ctx, "removeTopicFromFolder", map[string]any{"topicName": topicName}, nil)
}

func (c *httpRemoteClient) SearchInFolder(ctx context.Context, folderID, query string) ([]model.SearchResult, error) {
	var result model.SearchResponse
	payload := map[string]any{
		"folderId": folderID,
		"query":    query,
	}
	if err := c.doPost(ctx, "searchInFolder", payload, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// --- 同期・疎通 ---

func (c *httpRemoteClient) SyncData(ctx context.Context, topics []model.Topic) ([]model.SyncResult, error) {
	var results []model.SyncResult
	if err := c.doPost(ctx, "syncData", map[string]any{"topics": topics}, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Ping はリモートの死活を真偽値で返します。失敗はエラーにしません。
func (c *httpRemoteClient) Ping(ctx context.Context) bool {
	var result model.PingResult
	if err := c.doGet(ctx, "ping", nil, &result); err != nil {
		return false
	}
	return result.Status == "online"
}
