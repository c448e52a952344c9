// internal/model/error.go
package model

import (
	"errors"
	"fmt"
)

// アプリケーション固有のエラー
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInternalServer    = errors.New("internal server error")
	ErrConflict          = errors.New("resource conflict")
	ErrRemoteUnavailable = errors.New("remote endpoint unavailable")
	ErrTimeout           = errors.New("request timed out")
	ErrNotConfigured     = errors.New("remote endpoint not configured")
)

// ErrorDetail はAPIエラーレスポンスに載せる詳細情報です
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はエラーレスポンスの外側の構造体です
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はコード・メッセージ・対象フィールドを持つアプリケーションエラーです。
// リモート呼び出しの失敗もすべてこの型に正規化されるため、
// 呼び出し側は単一のエラー形状だけを扱えばよい。
type AppError struct {
	Detail ErrorDetail
	err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		err:    err,
	}
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.Detail.Code, e.Detail.Message)
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// Message はユーザ向けメッセージを返します
func (e *AppError) Message() string {
	return e.Detail.Message
}

// ErrorMessage はエラーからユーザ向けメッセージを取り出します。
// AppError 以外のエラーには fallback を返します。
func ErrorMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	if err != nil && fallback == "" {
		return err.Error()
	}
	return fallback
}
