// internal/app/app_test.go
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"gridapp/internal/model"
	repomocks "gridapp/internal/repository/mocks"
	"gridapp/internal/session"
	storemocks "gridapp/internal/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- テストヘルパー関数 ---

func newTestApp(repo *repomocks.Repository, st *storemocks.Store) *App {
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(repo, st, testLogger)
	// テストではデバウンスを短縮する
	a.debounce = 5 * time.Millisecond
	return a
}

func newQuietStore() *storemocks.Store {
	st := new(storemocks.Store)
	st.On("GetSettings").Return(model.DefaultSettings()).Maybe()
	st.On("GetProgress", mock.Anything).Return(model.StudyProgress{}, false).Maybe()
	st.On("SaveProgress", mock.Anything).Maybe()
	st.On("ClearProgress", mock.Anything).Maybe()
	st.On("SaveSettings", mock.Anything).Return(model.DefaultSettings()).Maybe()
	return st
}

func sampleTopics() []model.Topic {
	return []model.Topic{
		{ID: "latin-sufijos", Name: "Latin - Sufijos", CardCount: 3},
		{ID: "latin-raices", Name: "Latin - Raices", CardCount: 3},
	}
}

// --- LoadTopics ---

func Test_App_LoadTopics(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 成功時は状態とsyncStatusを更新しエラースロットを空にする", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("GetCachedTopics").Return(sampleTopics())
		repo.On("LoadTopics", ctx).Return(sampleTopics(), model.SyncSynced, nil)

		a := newTestApp(repo, newQuietStore())
		err := a.LoadTopics(ctx)

		require.NoError(t, err)
		assert.Len(t, a.Topics(), 2)
		assert.Equal(t, model.SyncSynced, a.SyncStatus())
		assert.False(t, a.IsLoading())
		assert.Empty(t, a.LastError())
	})

	t.Run("異常系: 失敗時もキャッシュ分を保持しエラースロットに記録する", func(t *testing.T) {
		loadErr := model.NewAppError("NETWORK_ERROR", "Error de conexion", "", model.ErrRemoteUnavailable)
		repo := new(repomocks.Repository)
		repo.On("GetCachedTopics").Return(sampleTopics())
		repo.On("LoadTopics", ctx).Return(sampleTopics(), model.SyncError, loadErr)

		a := newTestApp(repo, newQuietStore())
		err := a.LoadTopics(ctx)

		require.Error(t, err)
		assert.Len(t, a.Topics(), 2)
		assert.Equal(t, model.SyncError, a.SyncStatus())
		assert.Equal(t, "Error de conexion", a.LastError())
	})
}

// --- エラースロット ---

func Test_App_ErrorSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 失敗したアクションは上書き、成功したアクションはクリア", func(t *testing.T) {
		addErr := model.NewAppError("TIMEOUT", "Request timed out after 30s", "", model.ErrTimeout)
		repo := new(repomocks.Repository)
		repo.On("AddCard", ctx, mock.Anything, mock.Anything).Return(nil, nil, addErr).Once()
		repo.On("GetCachedTopics").Return([]model.Topic{})
		repo.On("LoadTopics", ctx).Return(sampleTopics(), model.SyncSynced, nil)

		a := newTestApp(repo, newQuietStore())

		err := a.AddCard(ctx, &model.AddCardRequest{TopicName: "Latin - Sufijos"})
		require.Error(t, err)
		assert.Equal(t, "Request timed out after 30s", a.LastError())
		assert.Empty(t, a.Topics(), "failed action leaves topics unchanged")

		// 後続の成功アクションでスロットがクリアされる
		require.NoError(t, a.LoadTopics(ctx))
		assert.Empty(t, a.LastError())
	})

	t.Run("正常系: ClearErrorで明示的にクリアできる", func(t *testing.T) {
		repo := new(repomocks.Repository)
		a := newTestApp(repo, newQuietStore())
		a.mu.Lock()
		a.errMsg = "algo fallo"
		a.mu.Unlock()

		a.ClearError()
		assert.Empty(t, a.LastError())
	})
}

// --- トピック選択 ---

func Test_App_SelectTopic(t *testing.T) {
	repo := new(repomocks.Repository)
	a := newTestApp(repo, newQuietStore())
	a.mu.Lock()
	a.topics = sampleTopics()
	a.mu.Unlock()

	t.Run("正常系: IDで選択できる", func(t *testing.T) {
		require.NoError(t, a.SelectTopic("latin-raices"))
		require.NotNil(t, a.CurrentTopic())
		assert.Equal(t, "Latin - Raices", a.CurrentTopic().Name)
	})

	t.Run("正常系: 空IDは選択解除", func(t *testing.T) {
		require.NoError(t, a.SelectTopic(""))
		assert.Nil(t, a.CurrentTopic())
	})

	t.Run("異常系: 未知のIDはNOT_FOUND", func(t *testing.T) {
		err := a.SelectTopic("desconocido")
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
		assert.NotEmpty(t, a.LastError())
	})
}

// --- 学習セッション ---

func Test_App_StartStudy(t *testing.T) {
	ctx := context.Background()
	cards := []model.Card{
		{ID: 2, RowIndex: 0, Cells: model.CellData{"Sufijo": "-a"}},
		{ID: 3, RowIndex: 1, Cells: model.CellData{"Sufijo": "-alis"}},
	}
	headers := []model.ColumnConfig{{ID: "c1", Name: "Sufijo", Type: model.ColumnText, Order: 1}}

	t.Run("異常系: トピック未選択ではエラー", func(t *testing.T) {
		repo := new(repomocks.Repository)
		a := newTestApp(repo, newQuietStore())

		err := a.StartStudy(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})

	t.Run("正常系: カードを遅延取得してセッションと学習ビューに入る", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("GetCards", ctx, mock.Anything, "Latin - Sufijos").Return(&model.CardsResult{
			Topic:      "Latin - Sufijos",
			Headers:    headers,
			Cards:      cards,
			TotalCards: len(cards),
		}, nil)

		a := newTestApp(repo, newQuietStore())
		a.mu.Lock()
		a.topics = sampleTopics()
		a.mu.Unlock()
		require.NoError(t, a.SelectTopic("latin-sufijos"))

		require.NoError(t, a.StartStudy(ctx))

		assert.Equal(t, model.ViewStudy, a.CurrentView())
		state, err := a.Study(nil)
		require.NoError(t, err)
		assert.Equal(t, "latin-sufijos", state.TopicID)
		assert.Equal(t, 2, state.TotalCards)
		assert.Equal(t, 0, state.CurrentIndex)

		// 遷移はStudy経由で直列化される
		state, err = a.Study(func(s *session.Session) { s.GoToNext() })
		require.NoError(t, err)
		assert.Equal(t, 1, state.CurrentIndex)
		assert.True(t, state.IsComplete)
	})

	t.Run("異常系: セッション未開始のStudyはNO_SESSION", func(t *testing.T) {
		repo := new(repomocks.Repository)
		a := newTestApp(repo, newQuietStore())

		_, err := a.Study(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

// --- フォルダ内検索 ---

func setupFolderApp(t *testing.T, repo *repomocks.Repository) *App {
	t.Helper()
	folders := &model.FoldersResult{
		Folders:       []model.Folder{{ID: "folder-1", Name: "Idiomas", TopicCount: 2}},
		Uncategorized: []model.FolderTopic{},
	}
	repo.On("ListFolders", mock.Anything).Return(folders, nil)

	a := newTestApp(repo, newQuietStore())
	require.NoError(t, a.LoadFolders(context.Background()))
	require.NoError(t, a.SelectFolder("folder-1"))
	return a
}

func Test_App_SearchInFolder(t *testing.T) {
	results := []model.SearchResult{
		{TopicName: "Latin - Raices", CardIndex: 0, ColumnName: "Raiz", Value: "acer, acris"},
	}

	t.Run("正常系: デバウンス後に結果が反映される", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("SearchInFolder", mock.Anything, "folder-1", "acer").Return(results, nil).Once()

		a := setupFolderApp(t, repo)
		a.SearchInFolder("acer")

		require.Eventually(t, func() bool {
			return len(a.SearchResults()) == 1
		}, time.Second, 5*time.Millisecond)
		assert.Equal(t, "acer, acris", a.SearchResults()[0].Value)
		assert.Empty(t, a.LastError())
	})

	t.Run("正常系: 連続入力は最後のクエリだけ実行される", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("SearchInFolder", mock.Anything, "folder-1", "aedes").Return(results, nil).Once()

		a := setupFolderApp(t, repo)
		a.SearchInFolder("a")
		a.SearchInFolder("ae")
		a.SearchInFolder("aedes")

		require.Eventually(t, func() bool {
			return len(a.SearchResults()) == 1
		}, time.Second, 5*time.Millisecond)
		repo.AssertNotCalled(t, "SearchInFolder", mock.Anything, "folder-1", "a")
		repo.AssertNotCalled(t, "SearchInFolder", mock.Anything, "folder-1", "ae")
	})

	t.Run("正常系: 遅れて届いた古い応答は新しい結果を上書きしない", func(t *testing.T) {
		stale := []model.SearchResult{{TopicName: "Viejo", Value: "viejo"}}
		repo := new(repomocks.Repository)
		// 最初のクエリは遅い
		repo.On("SearchInFolder", mock.Anything, "folder-1", "lento").
			Return(stale, nil).After(100 * time.Millisecond).Maybe()
		repo.On("SearchInFolder", mock.Anything, "folder-1", "rapido").
			Return(results, nil).Once()

		a := setupFolderApp(t, repo)
		a.SearchInFolder("lento")
		// 最初のタイマーが発火して呼び出しが飛ぶまで待つ
		time.Sleep(20 * time.Millisecond)
		a.SearchInFolder("rapido")

		require.Eventually(t, func() bool {
			r := a.SearchResults()
			return len(r) == 1 && r[0].TopicName == "Latin - Raices"
		}, time.Second, 5*time.Millisecond)

		// 古い応答が到着しても結果は変わらない
		time.Sleep(150 * time.Millisecond)
		assert.Equal(t, "Latin - Raices", a.SearchResults()[0].TopicName)
	})

	t.Run("正常系: 空クエリはリモートを呼ばず結果をクリアする", func(t *testing.T) {
		repo := new(repomocks.Repository)
		a := setupFolderApp(t, repo)
		a.mu.Lock()
		a.searchResults = results
		a.mu.Unlock()

		a.SearchInFolder("   ")

		assert.Empty(t, a.SearchResults())
		time.Sleep(20 * time.Millisecond)
		repo.AssertNotCalled(t, "SearchInFolder", mock.Anything, mock.Anything, mock.Anything)
	})
}

// --- フォルダのミューテーション ---

func Test_App_CreateFolder(t *testing.T) {
	t.Run("正常系: 成功後にフォルダ一覧を再読込する", func(t *testing.T) {
		repo := new(repomocks.Repository)
		created := &model.Folder{ID: "folder-2", Name: "Ciencias"}
		repo.On("CreateFolder", mock.Anything, "Ciencias").Return(created, nil).Once()
		repo.On("ListFolders", mock.Anything).Return(&model.FoldersResult{
			Folders: []model.Folder{{ID: "folder-2", Name: "Ciencias"}},
		}, nil).Once()

		a := newTestApp(repo, newQuietStore())
		require.NoError(t, a.CreateFolder(context.Background(), "Ciencias"))

		require.NotNil(t, a.Folders())
		assert.Len(t, a.Folders().Folders, 1)
		repo.AssertExpectations(t)
	})

	t.Run("異常系: 失敗時は一覧を再読込しない", func(t *testing.T) {
		repo := new(repomocks.Repository)
		repo.On("CreateFolder", mock.Anything, "Ciencias").
			Return(nil, model.NewAppError("REMOTE_ERROR", "fallo", "", model.ErrRemoteUnavailable)).Once()

		a := newTestApp(repo, newQuietStore())
		err := a.CreateFolder(context.Background(), "Ciencias")

		require.Error(t, err)
		assert.Equal(t, "fallo", a.LastError())
		repo.AssertNotCalled(t, "ListFolders", mock.Anything)
	})
}

// --- 設定 ---

func Test_App_ToggleDarkMode(t *testing.T) {
	st := new(storemocks.Store)
	st.On("GetSettings").Return(model.DefaultSettings())
	st.On("SaveSettings", mock.MatchedBy(func(p model.SettingsPatch) bool {
		return p.DarkMode != nil && *p.DarkMode
	})).Return(model.AppSettings{DarkMode: true, FontSize: model.FontMedium, AutoSync: true, ShowKeyboardHints: true}).Once()

	a := newTestApp(new(repomocks.Repository), st)

	assert.False(t, a.IsDarkMode())
	assert.True(t, a.ToggleDarkMode())
	assert.True(t, a.IsDarkMode())
	st.AssertExpectations(t)
}

// --- ヘルスチェック ---

func Test_App_Ping(t *testing.T) {
	repo := new(repomocks.Repository)
	repo.On("Ping", mock.Anything).Return(false)
	st := newQuietStore()
	st.On("Ping", mock.Anything).Return(nil)

	a := newTestApp(repo, st)
	remoteOK, storeOK := a.Ping(context.Background())

	assert.False(t, remoteOK)
	assert.True(t, storeOK)
}
