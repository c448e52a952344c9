//go:generate mockery --name Repository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gridapp/internal/client"
	"gridapp/internal/model"
	"gridapp/internal/store"
)

// Repository はローカルストアとリモートクライアントのどちらを使うかを
// 一手に引き受ける調停レイヤです。
//
// 読み取りはキャッシュ優先、書き込みはライトスルー。リモートが未設定の場合は
// ローカルで同等の効果を合成します（オフライン/デモモード）。
//
// メソッドは現在のトピック一覧を受け取り、更新後の一覧を返します。
// メモリ上の状態の所有者はアプリケーション状態コンテナであり、
// このレイヤはキャッシュへの書き込みまでを責務とします。
type Repository interface {
	// 楽観表示用。TTL内のキャッシュを即座に返す（期限切れなら空）
	GetCachedTopics() []model.Topic

	// キャッシュ→リモートの順で照合し、権威あるトピック一覧と同期状態を返す
	LoadTopics(ctx context.Context) ([]model.Topic, model.SyncStatus, error)

	CreateTopic(ctx context.Context, topics []model.Topic, req *model.CreateTopicRequest) ([]model.Topic, *model.Topic, error)
	DeleteTopic(ctx context.Context, topics []model.Topic, topicName string) ([]model.Topic, error)

	GetCards(ctx context.Context, topics []model.Topic, topicName string) (*model.CardsResult, error)
	AddCard(ctx context.Context, topics []model.Topic, req *model.AddCardRequest) ([]model.Topic, *model.Card, error)
	UpdateCard(ctx context.Context, topics []model.Topic, req *model.UpdateCardRequest) ([]model.Topic, error)
	DeleteCard(ctx context.Context, topics []model.Topic, req *model.DeleteCardRequest) ([]model.Topic, error)

	UploadImage(ctx context.Context, req *model.UploadImageRequest) (string, error)

	GetTopicConfig(ctx context.Context, topicName string) (map[string]string, error)
	UpdateTopicConfig(ctx context.Context, req *model.UpdateTopicConfigRequest) error

	// フォルダ操作。リモート未設定時、一覧は空を返しミューテーションはno-op
	ListFolders(ctx context.Context) (*model.FoldersResult, error)
	CreateFolder(ctx context.Context, name string) (*model.Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error
	AssignTopicToFolder(ctx context.Context, req *model.AssignTopicRequest) error
	RemoveTopicFromFolder(ctx context.Context, topicName string) error
	SearchInFolder(ctx context.Context, folderID, query string) ([]model.SearchResult, error)

	SyncData(ctx context.Context, topics []model.Topic) ([]model.SyncResult, error)
	Ping(ctx context.Context) bool

	IsRemoteConfigured() bool
}

type topicRepository struct {
	remote client.RemoteClient
	store  store.Store
	logger *slog.Logger
	now    func() time.Time
}

func NewTopicRepository(remote client.RemoteClient, st store.Store, logger *slog.Logger) Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &topicRepository{
		remote: remote,
		store:  st,
		logger: logger,
		now:    time.Now,
	}
}

func (r *topicRepository) IsRemoteConfigured() bool {
	return r.remote.IsConfigured()
}

func (r *topicRepository) GetCachedTopics() []model.Topic {
	// TTL切れのキャッシュは楽観表示には使わない。
	// リモート失敗時のフォールバック（LoadTopics側）とは別の判断
	if !r.store.IsCacheValid() {
		return []model.Topic{}
	}
	return r.store.GetTopics()
}

func (r *topicRepository) LoadTopics(ctx context.Context) ([]model.Topic, model.SyncStatus, error) {
	cached := r.store.GetTopics()

	if !r.remote.IsConfigured() {
		// オフライン/デモモード。キャッシュが空ならデモデータを流し込む
		if len(cached) == 0 {
			cached = DemoTopics()
			r.store.SaveTopics(cached)
			r.logger.Info("Seeded demo topics into empty cache", "count", len(cached))
		}
		return cached, model.SyncOffline, nil
	}

	topics, err := r.remote.GetTopics(ctx)
	if err != nil {
		// 失敗時は表示済みのキャッシュにフォールバック
		r.logger.Warn("Failed to load topics from remote, falling back to cache",
			"error", err, "cached", len(cached))
		return cached, model.SyncError, err
	}

	r.store.SaveTopics(topics)
	return topics, model.SyncSynced, nil
}

func (r *topicRepository) CreateTopic(ctx context.Context, topics []model.Topic, req *model.CreateTopicRequest) ([]model.Topic, *model.Topic, error) {
	var newTopic *model.Topic

	if r.remote.IsConfigured() {
		created, err := r.remote.CreateTopic(ctx, req)
		if err != nil {
			return topics, nil, err
		}
		newTopic = created
	} else {
		// オフライン合成: スラッグID、カード0枚、カラムは入力順
		columns := make([]model.ColumnConfig, 0, len(req.Columns))
		for i, c := range req.Columns {
			columns = append(columns, model.ColumnConfig{
				ID:    fmt.Sprintf("col-%d", i),
				Name:  c.Name,
				Type:  c.Type,
				Order: i + 1,
			})
		}
		newTopic = &model.Topic{
			ID:        Slugify(req.Title),
			Name:      req.Title,
			CardCount: 0,
			Columns:   columns,
			Cards:     []model.Card{},
		}
	}

	updated := append(append([]model.Topic{}, topics...), *newTopic)
	r.store.SaveTopics(updated)
	return updated, newTopic, nil
}

func (r *topicRepository) DeleteTopic(ctx context.Context, topics []model.Topic, topicName string) ([]model.Topic, error) {
	if r.remote.IsConfigured() {
		if err := r.remote.DeleteTopic(ctx, topicName); err != nil {
			return topics, err
		}
	}

	updated := make([]model.Topic, 0, len(topics))
	for _, t := range topics {
		if t.Name != topicName {
			updated = append(updated, t)
		}
	}
	r.store.SaveTopics(updated)

	// トピック削除は学習進捗の削除にカスケードする
	r.store.ClearProgress(Slugify(topicName))

	return updated, nil
}

func (r *topicRepository) GetCards(ctx context.Context, topics []model.Topic, topicName string) (*model.CardsResult, error) {
	if r.remote.IsConfigured() {
		return r.remote.GetCards(ctx, topicName)
	}

	// オフライン時はキャッシュ済みトピックから組み立てる
	for _, t := range topics {
		if t.Name == topicName {
			return &model.CardsResult{
				Topic:      t.Name,
				Headers:    t.Columns,
				Cards:      t.Cards,
				TotalCards: len(t.Cards),
			}, nil
		}
	}
	return nil, model.NewAppError("NOT_FOUND",
		fmt.Sprintf("Topic %q not found", topicName), "", model.ErrNotFound)
}

func (r *topicRepository) AddCard(ctx context.Context, topics []model.Topic, req *model.AddCardRequest) ([]model.Topic, *model.Card, error) {
	var card *model.Card

	if r.remote.IsConfigured() {
		created, err := r.remote.AddCard(ctx, req)
		if err != nil {
			return topics, nil, err
		}
		card = created
	} else {
		// ローカル生成カードはタイムスタンプ由来の大きなIDを持つ
		card = &model.Card{
			ID:    r.now().UnixMilli(),
			Cells: req.Cells,
		}
	}

	// カード数は非正規化フィールドのみを更新する。実数との差異は
	// 次回の完全リフレッシュまで残りうる
	updated := patchCardCount(topics, req.TopicName, +1)
	r.store.SaveTopics(updated)
	return updated, card, nil
}

func (r *topicRepository) UpdateCard(ctx context.Context, topics []model.Topic, req *model.UpdateCardRequest) ([]model.Topic, error) {
	if r.remote.IsConfigured() {
		if _, err := r.remote.UpdateCard(ctx, req); err != nil {
			return topics, err
		}
	}
	r.store.SaveTopics(topics)
	return topics, nil
}

func (r *topicRepository) DeleteCard(ctx context.Context, topics []model.Topic, req *model.DeleteCardRequest) ([]model.Topic, error) {
	if r.remote.IsConfigured() {
		if err := r.remote.DeleteCard(ctx, req); err != nil {
			return topics, err
		}
	}

	updated := patchCardCount(topics, req.TopicName, -1)
	r.store.SaveTopics(updated)
	return updated, nil
}

// patchCardCount は該当トピックの cardCount のみを増減した新しいスライスを返します
func patchCardCount(topics []model.Topic, topicName string, delta int) []model.Topic {
	updated := make([]model.Topic, len(topics))
	copy(updated, topics)
	for i := range updated {
		if updated[i].Name == topicName {
			count := updated[i].CardCount + delta
			if count < 0 {
				count = 0
			}
			updated[i].CardCount = count
		}
	}
	return updated
}

func (r *topicRepository) UploadImage(ctx context.Context, req *model.UploadImageRequest) (string, error) {
	if r.remote.IsConfigured() {
		result, err := r.remote.UploadImage(ctx, req)
		if err != nil {
			return "", err
		}
		return result.URL, nil
	}

	// オフライン時は一時的なdata URLを返す
	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, req.ImageData), nil
}

func (r *topicRepository) GetTopicConfig(ctx context.Context, topicName string) (map[string]string, error) {
	if !r.remote.IsConfigured() {
		return map[string]string{}, nil
	}
	return r.remote.GetTopicConfig(ctx, topicName)
}

func (r *topicRepository) UpdateTopicConfig(ctx context.Context, req *model.UpdateTopicConfigRequest) error {
	if !r.remote.IsConfigured() {
		return nil
	}
	return r.remote.UpdateTopicConfig(ctx, req)
}

// --- フォルダ ---
// フォルダにはオフラインフォールバックが無い。リモート未設定時、
// 一覧は空、ミューテーションはno-opになる。

func (r *topicRepository) ListFolders(ctx context.Context) (*model.FoldersResult, error) {
	if !r.remote.IsConfigured() {
		return &model.FoldersResult{
			Folders:       []model.Folder{},
			Uncategorized: []model.FolderTopic{},
		}, nil
	}
	return r.remote.GetFolders(ctx)
}

func (r *topicRepository) CreateFolder(ctx context.Context, name string) (*model.Folder, error) {
	if !r.remote.IsConfigured() {
		return nil, nil
	}
	return r.remote.CreateFolder(ctx, name)
}

func (r *topicRepository) DeleteFolder(ctx context.Context, folderID string) error {
	if !r.remote.IsConfigured() {
		return nil
	}
	return r.remote.DeleteFolder(ctx, folderID)
}

func (r *topicRepository) AssignTopicToFolder(ctx context.Context, req *model.AssignTopicRequest) error {
	if !r.remote.IsConfigured() {
		return nil
	}
	return r.remote.AssignTopicToFolder(ctx, req)
}

func (r *topicRepository) RemoveTopicFromFolder(ctx context.Context, topicName string) error {
	if !r.remote.IsConfigured() {
		return nil
	}
	return r.remote.RemoveTopicFromFolder(ctx, topicName)
}

func (r *topicRepository) SearchInFolder(ctx context.Context, folderID, query string) ([]model.SearchResult, error) {
	if !r.remote.IsConfigured() {
		return []model.SearchResult{}, nil
	}
	return r.remote.SearchInFolder(ctx, folderID, query)
}

func (r *topicRepository) SyncData(ctx context.Context, topics []model.Topic) ([]model.SyncResult, error) {
	if !r.remote.IsConfigured() {
		return nil, model.NewAppError("NOT_CONFIGURED",
			"Remote endpoint is not configured", "", model.ErrNotConfigured)
	}
	return r.remote.SyncData(ctx, topics)
}

func (r *topicRepository) Ping(ctx context.Context) bool {
	if !r.remote.IsConfigured() {
		return false
	}
	return r.remote.Ping(ctx)
}
