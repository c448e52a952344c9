//go:generate mockery --name Store --output ./mocks --outpkg mocks --case=underscore
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gridapp/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ストレージの名前空間キー
const (
	keyTopics         = "gridapp_topics"
	keyCacheTimestamp = "gridapp_cache_timestamp"
	keyProgress       = "gridapp_progress"
	keySettings       = "gridapp_settings"
	keyPendingSync    = "gridapp_pending_sync"
)

// Store は耐久性のあるキー/バリューストアに対する型付きアクセスを提供します。
//
// 読み取り・パース失敗は「値なし」として扱い、書き込み失敗はログのみで
// 黙って破棄します（ベストエフォート永続化）。エラーは呼び出し側に伝播しません。
type Store interface {
	// トピックキャッシュ
	GetTopics() []model.Topic
	SaveTopics(topics []model.Topic)
	IsCacheValid() bool
	ClearTopicsCache()

	// 学習進捗
	GetProgress(topicID string) (model.StudyProgress, bool)
	GetAllProgress() map[string]model.StudyProgress
	SaveProgress(progress model.StudyProgress)
	ClearProgress(topicID string)
	ClearAllProgress()

	// 設定
	GetSettings() model.AppSettings
	SaveSettings(patch model.SettingsPatch) model.AppSettings

	// オフライン操作キュー（予約領域。現行の書き込みパスからは未使用）
	GetPendingOperations() []model.PendingOperation
	AddPendingOperation(op model.PendingOperation)
	RemovePendingOperation(id string)
	ClearPendingOperations()
	HasPendingOperations() bool

	// ヘルスチェック用
	Ping(ctx context.Context) error
}

// kvEntry は名前空間キーごとにJSON値を1行で保持します
type kvEntry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte `gorm:"type:blob"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

type gormStore struct {
	db     *gorm.DB
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time // テストで差し替え可能にする
}

// NewStore はgorm/sqliteベースのStoreを作成します
func NewStore(db *gorm.DB, ttl time.Duration, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &gormStore{
		db:     db,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// --- 汎用 get/set/remove ---

func (s *gormStore) getItem(key string, dst any) bool {
	var entry kvEntry
	result := s.db.Where("key = ?", key).First(&entry)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			s.logger.Error("Error reading key from local store",
				"error", result.Error, "key", key)
		}
		return false
	}
	if err := json.Unmarshal(entry.Value, dst); err != nil {
		// 壊れたエントリは「値なし」として扱う
		s.logger.Error("Error parsing value from local store",
			"error", err, "key", key)
		return false
	}
	return true
}

func (s *gormStore) setItem(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Error marshaling value for local store",
			"error", err, "key", key)
		return
	}
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kvEntry{Key: key, Value: data, UpdatedAt: s.now()})
	if result.Error != nil {
		s.logger.Error("Error writing key to local store",
			"error", result.Error, "key", key)
	}
}

func (s *gormStore) removeItem(key string) {
	result := s.db.Where("key = ?", key).Delete(&kvEntry{})
	if result.Error != nil {
		s.logger.Error("Error removing key from local store",
			"error", result.Error, "key", key)
	}
}

// --- トピックキャッシュ ---

func (s *gormStore) GetTopics() []model.Topic {
	var topics []model.Topic
	if !s.getItem(keyTopics, &topics) {
		return []model.Topic{}
	}
	return topics
}

func (s *gormStore) SaveTopics(topics []model.Topic) {
	s.setItem(keyTopics, topics)
	s.setItem(keyCacheTimestamp, s.now().UnixMilli())
}

func (s *gormStore) IsCacheValid() bool {
	var stamp int64
	if !s.getItem(keyCacheTimestamp, &stamp) {
		return false
	}
	return s.now().UnixMilli()-stamp < s.ttl.Milliseconds()
}

func (s *gormStore) ClearTopicsCache() {
	s.removeItem(keyTopics)
	s.removeItem(keyCacheTimestamp)
}

// --- 学習進捗 ---

func (s *gormStore) GetAllProgress() map[string]model.StudyProgress {
	all := map[string]model.StudyProgress{}
	s.getItem(keyProgress, &all)
	return all
}

func (s *gormStore) GetProgress(topicID string) (model.StudyProgress, bool) {
	all := s.GetAllProgress()
	progress, ok := all[topicID]
	return progress, ok
}

func (s *gormStore) SaveProgress(progress model.StudyProgress) {
	all := s.GetAllProgress()
	progress.LastStudied = s.now().UTC().Format(time.RFC3339)
	all[progress.TopicID] = progress
	s.setItem(keyProgress, all)
}

func (s *gormStore) ClearProgress(topicID string) {
	all := s.GetAllProgress()
	delete(all, topicID)
	s.setItem(keyProgress, all)
}

func (s *gormStore) ClearAllProgress() {
	s.removeItem(keyProgress)
}

// --- 設定 ---

func (s *gormStore) GetSettings() model.AppSettings {
	settings := model.DefaultSettings()
	s.getItem(keySettings, &settings)
	return settings
}

func (s *gormStore) SaveSettings(patch model.SettingsPatch) model.AppSettings {
	current := s.GetSettings()
	if patch.DarkMode != nil {
		current.DarkMode = *patch.DarkMode
	}
	if patch.FontSize != nil {
		current.FontSize = *patch.FontSize
	}
	if patch.AutoSync != nil {
		current.AutoSync = *patch.AutoSync
	}
	if patch.ShowKeyboardHints != nil {
		current.ShowKeyboardHints = *patch.ShowKeyboardHints
	}
	s.setItem(keySettings, current)
	return current
}

// --- オフライン操作キュー ---

func (s *gormStore) GetPendingOperations() []model.PendingOperation {
	var ops []model.PendingOperation
	if !s.getItem(keyPendingSync, &ops) {
		return []model.PendingOperation{}
	}
	return ops
}

func (s *gormStore) AddPendingOperation(op model.PendingOperation) {
	ops := s.GetPendingOperations()
	if op.ID == "" {
		op.ID = uuid.NewString()
	}
	op.Timestamp = s.now().UnixMilli()
	ops = append(ops, op)
	s.setItem(keyPendingSync, ops)
}

func (s *gormStore) RemovePendingOperation(id string) {
	ops := s.GetPendingOperations()
	filtered := ops[:0]
	for _, op := range ops {
		if op.ID != id {
			filtered = append(filtered, op)
		}
	}
	s.setItem(keyPendingSync, filtered)
}

func (s *gormStore) ClearPendingOperations() {
	s.removeItem(keyPendingSync)
}

func (s *gormStore) HasPendingOperations() bool {
	return len(s.GetPendingOperations()) > 0
}

// --- ヘルスチェック ---

func (s *gormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
