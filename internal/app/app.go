// internal/app/app.go
package app

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gridapp/internal/config"
	"gridapp/internal/model"
	"gridapp/internal/repository"
	"gridapp/internal/session"
	"gridapp/internal/store"
)

// App はプレゼンテーション層に公開する唯一の共有状態コンテナです。
// 起動時に1度だけ構築し、参照で各コンシューマに渡します
// （グローバル変数にはしない）。
//
// 元の実行モデルはシングルスレッド協調型のため、ここでは1つのミューテックスで
// 全状態アクセスを直列化し、同じ「論理的に単一のアクター」を再現します。
//
// エラースロットは1件のみ保持し、後続のアクションが上書きします。
// 成功したアクションはスロットをクリアします。
type App struct {
	mu sync.Mutex

	repo   repository.Repository
	store  store.Store
	logger *slog.Logger

	topics        []model.Topic
	currentTopic  *model.Topic
	currentFolder *model.Folder
	currentView   model.ViewType
	syncStatus    model.SyncStatus
	isLoading     bool
	errMsg        string
	darkMode      bool

	session *session.Session

	folders       *model.FoldersResult
	searchResults []model.SearchResult
	searchGen     uint64
	searchTimer   *time.Timer
	debounce      time.Duration
}

func New(repo repository.Repository, st store.Store, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	settings := st.GetSettings()
	return &App{
		repo:        repo,
		store:       st,
		logger:      logger,
		topics:      []model.Topic{},
		currentView: model.ViewDashboard,
		syncStatus:  model.SyncSynced,
		darkMode:    settings.DarkMode,
		debounce:    config.SearchDebounceMillis * time.Millisecond,
	}
}

// fail はエラースロットにメッセージを記録してエラーを返します
func (a *App) fail(err error, fallback string) error {
	a.errMsg = model.ErrorMessage(err, fallback)
	return err
}

// ok は直前のエラーをクリアします（成功したアクションの終端で呼ぶ）
func (a *App) ok() {
	a.errMsg = ""
}

// --- 参照系 ---

func (a *App) Topics() []model.Topic {
	a.mu.Lock()
	defer a.mu.Unlock()
	topics := make([]model.Topic, len(a.topics))
	copy(topics, a.topics)
	return topics
}

func (a *App) CurrentTopic() *model.Topic {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentTopic == nil {
		return nil
	}
	topic := *a.currentTopic
	return &topic
}

func (a *App) CurrentFolder() *model.Folder {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.currentFolder == nil {
		return nil
	}
	folder := *a.currentFolder
	return &folder
}

func (a *App) CurrentView() model.ViewType {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentView
}

func (a *App) SyncStatus() model.SyncStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.syncStatus
}

func (a *App) IsLoading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.isLoading
}

func (a *App) LastError() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errMsg
}

func (a *App) IsDarkMode() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.darkMode
}

func (a *App) Folders() *model.FoldersResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.folders
}

func (a *App) SearchResults() []model.SearchResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	results := make([]model.SearchResult, len(a.searchResults))
	copy(results, a.searchResults)
	return results
}

// --- トピックのアクション ---

// LoadTopics はキャッシュ優先でトピック一覧を読み込みます。
// キャッシュ分は即座に状態へ反映し、その後リモートと照合します。
func (a *App) LoadTopics(ctx context.Context) error {
	a.mu.Lock()
	a.isLoading = true
	a.syncStatus = model.SyncSyncing
	// 楽観表示: キャッシュがあれば先に見せる
	if cached := a.repo.GetCachedTopics(); len(cached) > 0 {
		a.topics = cached
	}
	a.mu.Unlock()

	topics, status, err := a.repo.LoadTopics(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.isLoading = false
	a.syncStatus = status
	a.topics = topics
	if err != nil {
		return a.fail(err, "Error loading topics")
	}
	a.ok()
	return nil
}

// SelectTopic は現在のトピックを切り替えます。カードの取得は行いません
// （学習・編集ビューに入るときに遅延取得されます）。
func (a *App) SelectTopic(topicID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if topicID == "" {
		a.currentTopic = nil
		a.ok()
		return nil
	}
	for i := range a.topics {
		if a.topics[i].ID == topicID {
			topic := a.topics[i]
			a.currentTopic = &topic
			a.ok()
			return nil
		}
	}
	return a.fail(
		model.NewAppError("NOT_FOUND", "Topic not found: "+topicID, "", model.ErrNotFound),
		"")
}

func (a *App) SetView(view model.ViewType) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentView = view
}

func (a *App) CreateTopic(ctx context.Context, req *model.CreateTopicRequest) error {
	a.mu.Lock()
	topics := a.topics
	a.isLoading = true
	a.mu.Unlock()

	updated, _, err := a.repo.CreateTopic(ctx, topics, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.isLoading = false
	if err != nil {
		return a.fail(err, "Error creating topic")
	}
	a.topics = updated
	a.ok()
	return nil
}

func (a *App) DeleteTopic(ctx context.Context, topicName string) error {
	a.mu.Lock()
	topics := a.topics
	a.isLoading = true
	a.mu.Unlock()

	updated, err := a.repo.DeleteTopic(ctx, topics, topicName)

	a.mu.Lock()
	defer a.mu.Unlock()
	a.isLoading = false
	if err != nil {
		return a.fail(err, "Error deleting topic")
	}
	a.topics = updated
	if a.currentTopic != nil && a.currentTopic.Name == topicName {
		a.currentTopic = nil
		a.session = nil
	}
	a.ok()
	return nil
}

// --- カードのアクション ---

func (a *App) AddCard(ctx context.Context, req *model.AddCardRequest) error {
	a.mu.Lock()
	topics := a.topics
	a.mu.Unlock()

	updated, _, err := a.repo.AddCard(ctx, topics, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		// 失敗時はトピック状態を変更しない
		return a.fail(err, "Error adding card")
	}
	a.topics = updated
	a.ok()
	return nil
}

func (a *App) UpdateCard(ctx context.Context, req *model.UpdateCardRequest) error {
	a.mu.Lock()
	topics := a.topics
	a.mu.Unlock()

	updated, err := a.repo.UpdateCard(ctx, topics, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return a.fail(err, "Error updating card")
	}
	a.topics = updated
	a.ok()
	return nil
}

func (a *App) DeleteCard(ctx context.Context, req *model.DeleteCardRequest) error {
	a.mu.Lock()
	topics := a.topics
	a.mu.Unlock()

	updated, err := a.repo.DeleteCard(ctx, topics, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return a.fail(err, "Error deleting card")
	}
	a.topics = updated
	a.ok()
	return nil
}

// UploadImage は画像をアップロードしてホスト済みURLを返します。
// オフライン時は一時的なdata URLを返します。
func (a *App) UploadImage(ctx context.Context, req *model.UploadImageRequest) (string, error) {
	url, err := a.repo.UploadImage(ctx, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return "", a.fail(err, "Error uploading image")
	}
	a.ok()
	return url, nil
}

// GetTopicCards はトピックのカード一覧とヘッダを取得します（遅延取得の入口）
func (a *App) GetTopicCards(ctx context.Context, topicName string) (*model.CardsResult, error) {
	a.mu.Lock()
	topics := a.topics
	a.mu.Unlock()

	result, err := a.repo.GetCards(ctx, topics, topicName)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return nil, a.fail(err, "Error loading cards")
	}
	a.ok()
	return result, nil
}

// GetTopicConfig はトピックのカラム設定マッピングを取得します
func (a *App) GetTopicConfig(ctx context.Context, topicName string) (map[string]string, error) {
	cfg, err := a.repo.GetTopicConfig(ctx, topicName)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return nil, a.fail(err, "Error loading topic config")
	}
	a.ok()
	return cfg, nil
}

// UpdateTopicConfig はトピックのカラム設定を更新します
func (a *App) UpdateTopicConfig(ctx context.Context, req *model.UpdateTopicConfigRequest) error {
	err := a.repo.UpdateTopicConfig(ctx, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return a.fail(err, "Error updating topic config")
	}
	a.ok()
	return nil
}

// SyncData は現在のトピック一覧をリモートへ一括同期します
func (a *App) SyncData(ctx context.Context) ([]model.SyncResult, error) {
	a.mu.Lock()
	topics := a.topics
	a.mu.Unlock()

	results, err := a.repo.SyncData(ctx, topics)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return nil, a.fail(err, "Error syncing data")
	}
	a.ok()
	return results, nil
}

// RefreshCurrentTopic は選択中トピックの cards / cardCount / columns を
// リモートの内容で置き換えます
func (a *App) RefreshCurrentTopic(ctx context.Context) error {
	a.mu.Lock()
	if a.currentTopic == nil || !a.repo.IsRemoteConfigured() {
		a.mu.Unlock()
		return nil
	}
	topicName := a.currentTopic.Name
	topics := a.topics
	a.mu.Unlock()

	result, err := a.repo.GetCards(ctx, topics, topicName)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return a.fail(err, "Error refreshing topic")
	}
	if a.currentTopic != nil && a.currentTopic.Name == topicName {
		a.currentTopic.Cards = result.Cards
		a.currentTopic.CardCount = result.TotalCards
		a.currentTopic.Columns = result.Headers
		for i := range a.topics {
			if a.topics[i].Name == topicName {
				a.topics[i] = *a.currentTopic
			}
		}
	}
	a.ok()
	return nil
}

// --- 学習セッション ---

// StartStudy は選択中トピックのカードを遅延取得し、学習セッションを開始します
func (a *App) StartStudy(ctx context.Context) error {
	a.mu.Lock()
	if a.currentTopic == nil {
		a.mu.Unlock()
		return a.failLocked(
			model.NewAppError("NO_TOPIC", "No topic selected", "", model.ErrInvalidInput))
	}
	topic := *a.currentTopic
	topics := a.topics
	a.mu.Unlock()

	result, err := a.repo.GetCards(ctx, topics, topic.Name)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return a.fail(err, "Error loading cards")
	}
	if len(result.Headers) > 0 {
		topic.Columns = result.Headers
	}
	topic.Cards = result.Cards
	topic.CardCount = result.TotalCards
	a.currentTopic = &topic
	a.session = session.New(topic, result.Cards, a.store, a.logger)
	a.currentView = model.ViewStudy
	a.ok()
	return nil
}

// failLocked はロックを取り直してエラースロットへ記録します
func (a *App) failLocked(err error) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fail(err, "")
}

// StudyState は現在のセッション状態のスナップショットです
type StudyState struct {
	TopicID            string      `json:"topicId"`
	CurrentIndex       int         `json:"currentIndex"`
	TotalCards         int         `json:"totalCards"`
	CurrentCard        *model.Card `json:"currentCard,omitempty"`
	RevealedCells      []string    `json:"revealedCells"`
	ViewedCards        []int       `json:"viewedCards"`
	IsComplete         bool        `json:"isComplete"`
	ProgressPercentage int         `json:"progressPercentage"`
	ViewedPercentage   int         `json:"viewedPercentage"`
}

var errNoSession = model.NewAppError("NO_SESSION", "No active study session", "", model.ErrNotFound)

// Study はアクティブなセッションに対して fn を直列化して適用し、
// 適用後の状態スナップショットを返します
func (a *App) Study(fn func(*session.Session)) (*StudyState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return nil, a.fail(errNoSession, "")
	}
	if fn != nil {
		fn(a.session)
	}
	s := a.session
	state := &StudyState{
		TopicID:            s.TopicID(),
		CurrentIndex:       s.CurrentIndex(),
		TotalCards:         s.TotalCards(),
		CurrentCard:        s.CurrentCard(),
		RevealedCells:      s.RevealedCells(),
		ViewedCards:        s.ViewedCards(),
		IsComplete:         s.IsComplete(),
		ProgressPercentage: s.ProgressPercentage(),
		ViewedPercentage:   s.ViewedPercentage(),
	}
	return state, nil
}

// --- フォルダのアクション ---

// LoadFolders はフォルダ一覧と未分類トピック一覧を取得して状態に保持します
func (a *App) LoadFolders(ctx context.Context) error {
	result, err := a.repo.ListFolders(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		return a.fail(err, "Error loading folders")
	}
	a.folders = result
	// 選択中フォルダの導出値 (topicCount等) はサーバ計算を信頼して差し替える
	if a.currentFolder != nil {
		a.currentFolder = findFolder(result.Folders, a.currentFolder.ID)
	}
	a.ok()
	return nil
}

func findFolder(folders []model.Folder, id string) *model.Folder {
	for i := range folders {
		if folders[i].ID == id {
			folder := folders[i]
			return &folder
		}
	}
	return nil
}

// SelectFolder は現在のフォルダを切り替え、検索結果をクリアします
func (a *App) SelectFolder(folderID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.searchResults = nil
	if folderID == "" {
		a.currentFolder = nil
		a.ok()
		return nil
	}
	if a.folders != nil {
		if folder := findFolder(a.folders.Folders, folderID); folder != nil {
			a.currentFolder = folder
			a.ok()
			return nil
		}
	}
	return a.fail(
		model.NewAppError("NOT_FOUND", "Folder not found: "+folderID, "", model.ErrNotFound),
		"")
}

// CreateFolder はフォルダを作成します。成功時はローカルでパッチせず
// フォルダ一覧を再読込します（サーバ導出値との整合のため）。
func (a *App) CreateFolder(ctx context.Context, name string) error {
	if _, err := a.repo.CreateFolder(ctx, name); err != nil {
		return a.failLocked(err)
	}
	return a.LoadFolders(ctx)
}

// DeleteFolder はフォルダを削除します。メンバーのトピックは未分類に戻ります。
func (a *App) DeleteFolder(ctx context.Context, folderID string) error {
	if err := a.repo.DeleteFolder(ctx, folderID); err != nil {
		return a.failLocked(err)
	}
	a.mu.Lock()
	if a.currentFolder != nil && a.currentFolder.ID == folderID {
		a.currentFolder = nil
	}
	a.mu.Unlock()
	return a.LoadFolders(ctx)
}

// AssignTopicToFolder はトピックをフォルダへ割り当てます。
// 既に別フォルダに属していた場合は暗黙に移動になります。
func (a *App) AssignTopicToFolder(ctx context.Context, req *model.AssignTopicRequest) error {
	if err := a.repo.AssignTopicToFolder(ctx, req); err != nil {
		return a.failLocked(err)
	}
	return a.LoadFolders(ctx)
}

func (a *App) RemoveTopicFromFolder(ctx context.Context, topicName string) error {
	if err := a.repo.RemoveTopicFromFolder(ctx, topicName); err != nil {
		return a.failLocked(err)
	}
	return a.LoadFolders(ctx)
}

// --- フォルダ内検索 ---

// SearchInFolder は選択中フォルダを対象にデバウンス付きで検索を予約します。
// 空クエリはリモート呼び出しなしで結果をクリアします。
//
// 世代カウンタにより、遅れて届いた古いレスポンスが新しい結果を
// 上書きすることはありません。
func (a *App) SearchInFolder(query string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.searchTimer != nil {
		a.searchTimer.Stop()
		a.searchTimer = nil
	}

	trimmed := strings.TrimSpace(query)
	a.searchGen++
	if trimmed == "" {
		a.searchResults = nil
		return
	}
	if a.currentFolder == nil {
		return
	}

	gen := a.searchGen
	folderID := a.currentFolder.ID
	a.searchTimer = time.AfterFunc(a.debounce, func() {
		a.runSearch(gen, folderID, trimmed)
	})
}

func (a *App) runSearch(gen uint64, folderID, query string) {
	results, err := a.repo.SearchInFolder(context.Background(), folderID, query)

	a.mu.Lock()
	defer a.mu.Unlock()
	if gen != a.searchGen {
		// 新しい検索が発行済み。古い応答は破棄する
		a.logger.Debug("Discarding stale search response", "query", query)
		return
	}
	if err != nil {
		a.fail(err, "Error searching")
		return
	}
	a.searchResults = results
	a.ok()
}

// --- 設定 ---

func (a *App) Settings() model.AppSettings {
	return a.store.GetSettings()
}

func (a *App) UpdateSettings(patch model.SettingsPatch) model.AppSettings {
	settings := a.store.SaveSettings(patch)
	a.mu.Lock()
	a.darkMode = settings.DarkMode
	a.mu.Unlock()
	return settings
}

// ToggleDarkMode はダークモードを反転して永続化し、新しい値を返します
func (a *App) ToggleDarkMode() bool {
	a.mu.Lock()
	a.darkMode = !a.darkMode
	darkMode := a.darkMode
	a.mu.Unlock()

	a.store.SaveSettings(model.SettingsPatch{DarkMode: &darkMode})
	return darkMode
}

// ClearError はエラースロットを明示的にクリアします
func (a *App) ClearError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.errMsg = ""
}

// Ping はリモートとローカルストアの疎通を確認します
func (a *App) Ping(ctx context.Context) (remoteOK bool, storeOK bool) {
	remoteOK = a.repo.Ping(ctx)
	storeOK = a.store.Ping(ctx) == nil
	return remoteOK, storeOK
}
