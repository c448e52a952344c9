// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "GridApp"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultRemoteTimeoutSeconds = 30
	DefaultCacheTTLMinutes      = 5
	DefaultStorePath            = "gridapp.db"
)

// 検索のデバウンス時間 (ミリ秒)
const SearchDebounceMillis = 300

// トピック作成時のカラム数の制限
const (
	MinColumns = 1
	MaxColumns = 6
)
