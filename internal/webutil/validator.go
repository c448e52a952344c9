// internal/webutil/validator.go
package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/es" // スペイン語ロケール
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"

	"gridapp/internal/model"
)

// Validator はアプリケーション全体で共有されるバリデータインスタンスです。
var Validator *validator.Validate

// Trans はエラーメッセージを翻訳するためのトランスレータです。
// UIがスペイン語のため、バリデーションメッセージもスペイン語にします。
var Trans ut.Translator

var fieldNameTranslations = map[string]string{
	"title":     "titulo",
	"name":      "nombre",
	"columns":   "columnas",
	"topicName": "tema",
	"cells":     "celdas",
	"rowId":     "fila",
	"imageData": "imagen",
	"fileName":  "nombre de archivo",
	"query":     "busqueda",
}

func init() {
	Validator = validator.New()

	// JSONタグからフィールド名を取得するように設定
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	spanish := es.New()
	uni := ut.New(spanish, spanish)
	var found bool
	Trans, found = uni.GetTranslator("es")
	if !found {
		log.Fatal("translator not found")
	}

	if err := es_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}
}

// TranslateFieldError はバリデーションエラー1件をユーザ向けメッセージに変換します
func TranslateFieldError(fe validator.FieldError) string {
	msg := fe.Translate(Trans)
	if translated, ok := fieldNameTranslations[fe.Field()]; ok {
		msg = strings.Replace(msg, fe.Field(), translated, 1)
	}
	return msg
}

// ValidateStruct は構造体を検証し、最初の違反をフィールドスコープの
// AppError として返します。違反がなければ nil を返します。
func ValidateStruct(dst interface{}) *model.AppError {
	err := Validator.Struct(dst)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			TranslateFieldError(first),
			first.Field(),
			model.ErrInvalidInput,
		)
	}
	return model.NewAppError("VALIDATION_ERROR", err.Error(), "", model.ErrInvalidInput)
}
