// internal/model/folder.go
package model

// FolderTopic はフォルダ一覧に表示する軽量なトピック参照です
type FolderTopic struct {
	Name      string `json:"name"`
	CardCount int    `json:"cardCount"`
}

// Folder はトピックの任意グルーピングを表します。
// トピックは高々1つのフォルダに属し、フォルダ削除時はメンバーが未分類に戻ります。
// TopicCount と Uncategorized の導出はサーバ側の責務です。
type Folder struct {
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	TopicCount int           `json:"topicCount"`
	Topics     []FolderTopic `json:"topics"`
}

// FoldersResult は getFolders アクションの結果です
type FoldersResult struct {
	Folders       []Folder      `json:"folders"`
	Uncategorized []FolderTopic `json:"uncategorized"`
}

// SearchResult はフォルダ内全文検索の1ヒット分です。永続化されません。
type SearchResult struct {
	TopicName  string `json:"topicName"`
	CardIndex  int    `json:"cardIndex"`
	ColumnName string `json:"columnName"`
	Value      string `json:"value"`
}

// CreateFolderRequest はフォルダ作成リクエストDTO
type CreateFolderRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// AssignTopicRequest はトピックのフォルダ割当リクエストDTO。
// 再割当は暗黙に元のフォルダから外れます。
type AssignTopicRequest struct {
	TopicName  string `json:"topicName" validate:"required"`
	FolderID   string `json:"folderId" validate:"required"`
	FolderName string `json:"folderName"`
}
