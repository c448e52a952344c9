// internal/model/topic.go
package model

// ColumnType はカラムの種別を表します
type ColumnType string

const (
	ColumnText    ColumnType = "text"
	ColumnImage   ColumnType = "image"
	ColumnFormula ColumnType = "formula"
)

// ColumnConfig はトピック内の1カラムの定義を表します。
// Order は 1 始まりで、表示順と公開(リビール)順を決定します。
type ColumnConfig struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Type  ColumnType `json:"type"`
	Order int        `json:"order"`
}

// CellData はカラム名からセル内容へのマッピングです。
// 存在しないキーは空文字列として扱います。
type CellData map[string]string

// Get はカラム名に対応するセル内容を返します。キーが無ければ空文字列です。
func (c CellData) Get(columnName string) string {
	if c == nil {
		return ""
	}
	return c[columnName]
}

// Card は1枚の学習カード（1行分のデータ）を表します。
// ローカル生成されたカードのIDはタイムスタンプ由来の大きな整数で、
// サーバ採番のID（小さい整数）と桁数で区別できます。
type Card struct {
	ID       int64    `json:"id"`
	RowIndex int      `json:"rowIndex"`
	Cells    CellData `json:"cells"`
}

// Topic は同一カラム構成を共有するカードの集合を表します。
// Cards は遅延ロードされるため nil の場合があります。
// CardCount は非正規化された値で、次の完全リフレッシュまで実数とずれることがあります。
type Topic struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	CardCount    int            `json:"cardCount"`
	Columns      []ColumnConfig `json:"columns"`
	LastModified string         `json:"lastModified,omitempty"`
	Cards        []Card         `json:"cards,omitempty"`
}

// ColumnNames はカラム名を Order 順に返します
func (t *Topic) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// --- リクエストDTO ---

// ColumnInput はトピック作成・カラム設定更新時の1カラム分の入力です
type ColumnInput struct {
	Name string     `json:"name" validate:"required,min=1"`
	Type ColumnType `json:"type" validate:"required,oneof=text image formula"`
}

// CreateTopicRequest はトピック作成リクエストDTO
type CreateTopicRequest struct {
	Title   string        `json:"title" validate:"required,min=1"`
	Columns []ColumnInput `json:"columns" validate:"required,min=1,max=6,dive"`
}

// AddCardRequest はカード追加リクエストDTO
type AddCardRequest struct {
	TopicName string   `json:"topicName" validate:"required"`
	Cells     CellData `json:"cells" validate:"required"`
}

// UpdateCardRequest はカード更新リクエストDTO
type UpdateCardRequest struct {
	TopicName string   `json:"topicName" validate:"required"`
	RowID     int64    `json:"rowId" validate:"required"`
	Cells     CellData `json:"cells" validate:"required"`
}

// DeleteCardRequest はカード削除リクエストDTO
type DeleteCardRequest struct {
	TopicName string `json:"topicName" validate:"required"`
	RowID     int64  `json:"rowId" validate:"required"`
}

// UploadImageRequest は画像アップロードリクエストDTO (imageData はBase64)
type UploadImageRequest struct {
	ImageData string `json:"imageData" validate:"required"`
	FileName  string `json:"fileName" validate:"required"`
	MimeType  string `json:"mimeType,omitempty"`
}

// UpdateTopicConfigRequest はカラム設定更新リクエストDTO
type UpdateTopicConfigRequest struct {
	TopicName string         `json:"topicName" validate:"required"`
	Columns   []ColumnConfig `json:"columns" validate:"required,min=1,max=6"`
}
