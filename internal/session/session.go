// internal/session/session.go
package session

import (
	"log/slog"
	"math"
	"sort"

	"gridapp/internal/model"
	"gridapp/internal/store"
)

// Session は1トピックに対する学習セッションの状態機械です。
//
// 状態は (currentIndex, revealedCells, viewedCards) の組で、カード列は固定長Nです。
// インデックスを変更する遷移は、移動前に「現在の」カードの公開状態を含む
// 進捗スナップショットをストアへ永続化します。スナップショットに保持される
// 公開セルは直近に離脱したカードの1枚分のみです（セッションをまたぐ全履歴は
// 保持しない設計）。
//
// N = 0 のトピックに対しては全遷移が安全なno-opになります。
// 並行アクセスに対して安全ではありません。呼び出し側で直列化してください。
type Session struct {
	topic  model.Topic
	cards  []model.Card
	store  store.Store
	logger *slog.Logger

	currentIndex  int
	revealedCells map[string]struct{}
	viewedCards   map[int]struct{}
}

// New はトピックとカード列から新しいセッションを作成します。
// カード0の公開状態は、永続化されたスナップショットのカードIDが一致する
// 場合に限り復元されます。
func New(topic model.Topic, cards []model.Card, st store.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		topic:         topic,
		cards:         cards,
		store:         st,
		logger:        logger,
		currentIndex:  0,
		revealedCells: map[string]struct{}{},
		viewedCards:   map[int]struct{}{0: {}},
	}
	s.restoreRevealed()
	return s
}

// --- 参照系 ---

func (s *Session) TopicID() string {
	return s.topic.ID
}

func (s *Session) TotalCards() int {
	return len(s.cards)
}

func (s *Session) CurrentIndex() int {
	return s.currentIndex
}

// CurrentCard は現在のカードを返します。カードが無い場合は nil です。
func (s *Session) CurrentCard() *model.Card {
	if s.currentIndex < 0 || s.currentIndex >= len(s.cards) {
		return nil
	}
	card := s.cards[s.currentIndex]
	return &card
}

// RevealedCells は現在のカードで公開済みのカラム名をソート済みで返します
func (s *Session) RevealedCells() []string {
	names := make([]string, 0, len(s.revealedCells))
	for name := range s.revealedCells {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ViewedCards は訪問済みカードのインデックスをソート済みで返します
func (s *Session) ViewedCards() []int {
	indices := make([]int, 0, len(s.viewedCards))
	for i := range s.viewedCards {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices
}

// IsComplete は全カードを少なくとも1回訪問したかを返します
func (s *Session) IsComplete() bool {
	return len(s.cards) > 0 && len(s.viewedCards) == len(s.cards)
}

// ProgressPercentage は現在位置ベースの進捗率 (0-100) を返します
func (s *Session) ProgressPercentage() int {
	if len(s.cards) == 0 {
		return 0
	}
	return int(math.Round(float64(s.currentIndex+1) / float64(len(s.cards)) * 100))
}

// ViewedPercentage は訪問済みカードの割合 (0-100) を返します
func (s *Session) ViewedPercentage() int {
	if len(s.cards) == 0 {
		return 0
	}
	return int(math.Round(float64(len(s.viewedCards)) / float64(len(s.cards)) * 100))
}

// --- 遷移系 ---

// GoToNext は次のカードに進みます。最後のカードでは何もしません。
func (s *Session) GoToNext() {
	if s.currentIndex >= len(s.cards)-1 {
		return
	}
	s.persistProgress()
	s.currentIndex++
	s.viewedCards[s.currentIndex] = struct{}{}
	s.revealedCells = map[string]struct{}{}
	s.restoreRevealed()
}

// GoToPrevious は前のカードに戻ります。先頭では何もしません。
func (s *Session) GoToPrevious() {
	if s.currentIndex <= 0 {
		return
	}
	s.persistProgress()
	s.currentIndex--
	s.revealedCells = map[string]struct{}{}
	s.restoreRevealed()
}

// GoToCard は指定インデックスのカードへジャンプします。範囲外は何もしません。
func (s *Session) GoToCard(index int) {
	if index < 0 || index >= len(s.cards) {
		return
	}
	s.persistProgress()
	s.currentIndex = index
	s.viewedCards[index] = struct{}{}
	s.revealedCells = map[string]struct{}{}
	s.restoreRevealed()
}

// RevealCell は現在のカードの1カラムを公開します。冪等です。
func (s *Session) RevealCell(columnName string) {
	if len(s.cards) == 0 {
		return
	}
	s.revealedCells[columnName] = struct{}{}
}

// RevealAllCells はトピックの全カラムを一度に公開します
func (s *Session) RevealAllCells() {
	if len(s.cards) == 0 {
		return
	}
	all := map[string]struct{}{}
	for _, name := range s.topic.ColumnNames() {
		all[name] = struct{}{}
	}
	s.revealedCells = all
}

// ResetCurrentCard は現在のカードの公開状態だけをクリアします。
// currentIndex と viewedCards には影響しません。
func (s *Session) ResetCurrentCard() {
	s.revealedCells = map[string]struct{}{}
}

// ResetSession は初期状態に戻し、このトピックの永続化済み進捗を消去します
func (s *Session) ResetSession() {
	s.currentIndex = 0
	s.revealedCells = map[string]struct{}{}
	s.viewedCards = map[int]struct{}{0: {}}
	s.store.ClearProgress(s.topic.ID)
}

// --- 永続化 ---

// persistProgress は現在のカードの公開状態を含むスナップショットを保存します。
// スナップショットが保持する公開セルは高々1エントリです。離脱するカードに
// 公開がない場合は、保存済みのエントリを空のもので潰さずそのまま残します
// （公開→移動→戻る、で復元できる必要がある）。
func (s *Session) persistProgress() {
	if len(s.cards) == 0 {
		return
	}

	revealed := map[int64][]string{}
	if card := s.CurrentCard(); card != nil && len(s.revealedCells) > 0 {
		revealed[card.ID] = s.RevealedCells()
	} else if prev, ok := s.store.GetProgress(s.topic.ID); ok {
		revealed = prev.RevealedCells
	}

	progress := model.StudyProgress{
		TopicID:              s.topic.ID,
		TotalCards:           len(s.cards),
		ViewedCards:          s.ViewedCards(),
		RevealedCells:        revealed,
		CompletionPercentage: float64(len(s.viewedCards)) / float64(len(s.cards)) * 100,
	}
	s.store.SaveProgress(progress)
}

// restoreRevealed は到着したカードの公開状態をスナップショットから復元します。
// 保存されているカードIDが現在のカードと一致する場合のみ適用されます。
func (s *Session) restoreRevealed() {
	card := s.CurrentCard()
	if card == nil {
		return
	}

	progress, ok := s.store.GetProgress(s.topic.ID)
	if !ok {
		return
	}
	names, ok := progress.RevealedCells[card.ID]
	if !ok {
		return
	}
	for _, name := range names {
		s.revealedCells[name] = struct{}{}
	}
}
