// Package apperr uygulama genelinde kullanılan hata sınıflandırmasını tanımlar.
// Dört sınıf vardır: doğrulama (istemci hatası), yetkilendirme, konfigürasyon
// ve depolama. HTTP katmanı durum kodunu yalnızca bu sınıfa bakarak seçer.
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind hatanın sınıfını belirtir.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuth
	KindConfig
	KindStorage
)

// Error sınıflandırılmış uygulama hatası. Mesaj istemciye gösterilebilir;
// sarılan hata ise yalnızca loglanır, dışarı sızdırılmaz.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Kind hatanın sınıfını döner.
func (e *Error) Kind() Kind { return e.kind }

// Message istemciye gösterilebilecek mesajı döner (sarılan hata hariç).
func (e *Error) Message() string { return e.msg }

// Validation istemci kaynaklı doğrulama hatası üretir.
func Validation(msg string) error { return &Error{kind: KindValidation, msg: msg} }

// Auth eksik ya da yanlış kimlik bilgisi hatası üretir.
func Auth(msg string) error { return &Error{kind: KindAuth, msg: msg} }

// Config sunucu yapılandırma hatası üretir (örn. admin şifresi tanımsız).
func Config(msg string) error { return &Error{kind: KindConfig, msg: msg} }

// Storage kalıcı depolama hatasını sarar.
func Storage(msg string, err error) error {
	return &Error{kind: KindStorage, msg: msg, err: err}
}

// KindOf hatanın sınıfını çözer; sınıflandırılmamışsa KindUnknown döner.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.kind
	}
	return KindUnknown
}

// IsKind hatanın verilen sınıftan olup olmadığını söyler.
func IsKind(err error, kind Kind) bool { return KindOf(err) == kind }

// HTTPStatus hata sınıfını HTTP durum koduna çevirir.
// Sınıfsız hatalar sunucu hatası sayılır.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindAuth:
		return fiber.StatusUnauthorized
	case KindConfig, KindStorage:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// ClientMessage istemciye dönülecek mesajı çıkarır; sınıflandırılmamış
// hatalar için genel bir mesaj döner ki iç detaylar sızmasın.
func ClientMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.msg
	}
	return "Server error."
}
