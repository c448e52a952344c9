// internal/session/session_test.go
package session

import (
	"io"
	"log/slog"
	"testing"

	"gridapp/internal/model"
	"gridapp/internal/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- テストヘルパー関数 ---

func testTopic() (model.Topic, []model.Card) {
	cards := []model.Card{
		{ID: 2, RowIndex: 2, Cells: model.CellData{"Sufijo": "-ble", "Significado": "capaz de"}},
		{ID: 3, RowIndex: 3, Cells: model.CellData{"Sufijo": "-oso", "Significado": "lleno de"}},
		{ID: 4, RowIndex: 4, Cells: model.CellData{"Sufijo": "-dad", "Significado": "cualidad de"}},
	}
	topic := model.Topic{
		ID:        "latin-sufijos",
		Name:      "Latin - Sufijos",
		CardCount: len(cards),
		Columns: []model.ColumnConfig{
			{ID: "col-0", Name: "Sufijo", Type: model.ColumnText, Order: 1},
			{ID: "col-1", Name: "Significado", Type: model.ColumnText, Order: 2},
		},
	}
	return topic, cards
}

// newQuietStore は進捗なし・書き込み黙認のストアモックを返します
func newQuietStore() *mocks.Store {
	st := new(mocks.Store)
	st.On("GetProgress", mock.Anything).Return(model.StudyProgress{}, false).Maybe()
	st.On("SaveProgress", mock.Anything).Maybe()
	st.On("ClearProgress", mock.Anything).Maybe()
	return st
}

// newRecordingStore は保存された進捗をそのまま読み返せるストアモックを返します
func newRecordingStore() *mocks.Store {
	saved := map[string]model.StudyProgress{}
	st := new(mocks.Store)
	st.On("SaveProgress", mock.Anything).Run(func(args mock.Arguments) {
		p := args.Get(0).(model.StudyProgress)
		saved[p.TopicID] = p
	})
	st.On("GetProgress", mock.Anything).Return(func(topicID string) model.StudyProgress {
		return saved[topicID]
	}, func(topicID string) bool {
		_, ok := saved[topicID]
		return ok
	})
	return st
}

func newTestSession(st *mocks.Store) *Session {
	topic, cards := testTopic()
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(topic, cards, st, testLogger)
}

// --- 初期状態 ---

func Test_Session_InitialState(t *testing.T) {
	s := newTestSession(newQuietStore())

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Equal(t, 3, s.TotalCards())
	assert.Equal(t, []int{0}, s.ViewedCards(), "card 0 is visited on entry")
	assert.Empty(t, s.RevealedCells())
	assert.False(t, s.IsComplete())
	assert.Equal(t, 33, s.ProgressPercentage())
	assert.Equal(t, 33, s.ViewedPercentage())

	require.NotNil(t, s.CurrentCard())
	assert.Equal(t, int64(2), s.CurrentCard().ID)
}

// --- ナビゲーション ---

func Test_Session_Navigation(t *testing.T) {
	t.Run("正常系: N-1回のNextで完了になる", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.GoToNext()
		s.GoToNext()

		assert.Equal(t, 2, s.CurrentIndex())
		assert.Equal(t, []int{0, 1, 2}, s.ViewedCards())
		assert.True(t, s.IsComplete())
		assert.Equal(t, 100, s.ProgressPercentage())
	})

	t.Run("正常系: 最後のカードでNextはno-op", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.GoToNext()
		s.GoToNext()
		require.Equal(t, 2, s.CurrentIndex())

		s.GoToNext()

		assert.Equal(t, 2, s.CurrentIndex())
		// 完了状態は冪等
		assert.True(t, s.IsComplete())
		s.GoToNext()
		assert.True(t, s.IsComplete())
	})

	t.Run("正常系: ジャンプで飛ばしたカードは未訪問のまま", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.GoToCard(2)

		assert.Equal(t, 2, s.CurrentIndex())
		assert.Equal(t, []int{0, 2}, s.ViewedCards())
		assert.False(t, s.IsComplete(), "index 1 has not been visited")
	})

	t.Run("正常系: 先頭でPreviousはno-op", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.GoToPrevious()

		assert.Equal(t, 0, s.CurrentIndex())
		assert.Equal(t, []int{0}, s.ViewedCards())
	})

	t.Run("正常系: Previousは訪問済みに追加しない", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.GoToNext()
		s.GoToPrevious()

		assert.Equal(t, 0, s.CurrentIndex())
		assert.Equal(t, []int{0, 1}, s.ViewedCards())
	})

	t.Run("異常系: 範囲外のGoToCardはno-op", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.GoToCard(-1)
		assert.Equal(t, 0, s.CurrentIndex())

		s.GoToCard(3)
		assert.Equal(t, 0, s.CurrentIndex())
	})

	t.Run("正常系: インデックス変更前に進捗が永続化される", func(t *testing.T) {
		st := new(mocks.Store)
		st.On("GetProgress", "latin-sufijos").Return(model.StudyProgress{}, false)
		st.On("SaveProgress", mock.MatchedBy(func(p model.StudyProgress) bool {
			// 離脱するカード (ID=2) の公開状態だけがスナップショットされる
			names, ok := p.RevealedCells[2]
			return ok && len(names) == 1 && names[0] == "Sufijo" &&
				p.TopicID == "latin-sufijos" && p.TotalCards == 3
		})).Once()

		s := newTestSession(st)
		s.RevealCell("Sufijo")
		s.GoToNext()

		st.AssertExpectations(t)
	})
}

// --- 公開状態 ---

func Test_Session_Reveal(t *testing.T) {
	t.Run("正常系: RevealCellは冪等", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.RevealCell("Sufijo")
		s.RevealCell("Sufijo")

		assert.Equal(t, []string{"Sufijo"}, s.RevealedCells())
	})

	t.Run("正常系: RevealAllCellsは全カラムを公開する", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.RevealAllCells()

		assert.Equal(t, []string{"Significado", "Sufijo"}, s.RevealedCells())
	})

	t.Run("正常系: ResetCurrentCardは公開状態だけクリアする", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.GoToNext()
		s.RevealAllCells()
		s.ResetCurrentCard()

		assert.Empty(t, s.RevealedCells())
		assert.Equal(t, 1, s.CurrentIndex())
		assert.Equal(t, []int{0, 1}, s.ViewedCards())
	})

	t.Run("正常系: カード移動で公開状態はリセットされる", func(t *testing.T) {
		s := newTestSession(newQuietStore())

		s.RevealAllCells()
		s.GoToNext()

		assert.Empty(t, s.RevealedCells())
	})
}

// --- 復元 ---

func Test_Session_RestoreRevealed(t *testing.T) {
	t.Run("正常系: 保存済みカードIDが一致すれば復元する", func(t *testing.T) {
		st := new(mocks.Store)
		st.On("GetProgress", "latin-sufijos").Return(model.StudyProgress{
			TopicID:       "latin-sufijos",
			TotalCards:    3,
			ViewedCards:   []int{0},
			RevealedCells: map[int64][]string{2: {"Significado"}},
		}, true)

		s := newTestSession(st)

		assert.Equal(t, []string{"Significado"}, s.RevealedCells())
	})

	t.Run("正常系: カードIDが一致しなければ復元しない", func(t *testing.T) {
		st := new(mocks.Store)
		// ID=99 はこのトピックのカード列に存在しない
		st.On("GetProgress", "latin-sufijos").Return(model.StudyProgress{
			TopicID:       "latin-sufijos",
			RevealedCells: map[int64][]string{99: {"Significado"}},
		}, true)

		s := newTestSession(st)

		assert.Empty(t, s.RevealedCells())
	})

	t.Run("正常系: 再訪問で同じカードの公開状態が戻る", func(t *testing.T) {
		s := newTestSession(newRecordingStore())
		s.RevealCell("Sufijo")
		s.GoToNext()
		assert.Empty(t, s.RevealedCells())

		s.GoToPrevious()
		assert.Equal(t, []string{"Sufijo"}, s.RevealedCells())
	})

	t.Run("正常系: 公開なしで離脱してもスナップショットは潰れない", func(t *testing.T) {
		s := newTestSession(newRecordingStore())
		s.RevealCell("Sufijo")
		s.GoToNext()
		// カード1では何も公開せずに移動する
		s.GoToNext()

		s.GoToCard(0)
		assert.Equal(t, []string{"Sufijo"}, s.RevealedCells())
	})
}

// --- リセット ---

func Test_Session_ResetSession(t *testing.T) {
	st := new(mocks.Store)
	st.On("GetProgress", mock.Anything).Return(model.StudyProgress{}, false)
	st.On("SaveProgress", mock.Anything)
	st.On("ClearProgress", "latin-sufijos").Once()

	s := newTestSession(st)
	s.GoToNext()
	s.RevealAllCells()

	s.ResetSession()

	assert.Equal(t, 0, s.CurrentIndex())
	assert.Empty(t, s.RevealedCells())
	assert.Equal(t, []int{0}, s.ViewedCards())
	assert.False(t, s.IsComplete())
	st.AssertExpectations(t)
}

// --- 空のトピック ---

func Test_Session_EmptyTopic(t *testing.T) {
	st := newQuietStore()
	topic, _ := testTopic()
	topic.CardCount = 0
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := New(topic, nil, st, testLogger)

	// 全遷移が安全なno-op
	s.GoToNext()
	s.GoToPrevious()
	s.GoToCard(0)
	s.RevealCell("Sufijo")
	s.RevealAllCells()
	s.ResetCurrentCard()

	assert.Nil(t, s.CurrentCard())
	assert.Equal(t, 0, s.TotalCards())
	assert.Empty(t, s.RevealedCells())
	assert.False(t, s.IsComplete(), "empty topic is never complete")
	assert.Equal(t, 0, s.ProgressPercentage())
	assert.Equal(t, 0, s.ViewedPercentage())

	// 進捗の永続化は発生しない
	st.AssertNotCalled(t, "SaveProgress", mock.Anything)
}
