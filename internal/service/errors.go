package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Sentinel errors let handlers pick the right HTTP status without parsing
// messages. Services wrap them with fmt.Errorf("%w: ...").
var (
	ErrNotFound = errors.New("introuvable")
	// ErrConflict covers uniqueness violations and FK-restrict rejections.
	ErrConflict = errors.New("conflit")
	// ErrSelfAction guards admins from deactivating, editing or deleting
	// their own account through the employee screens.
	ErrSelfAction = errors.New("action sur son propre compte refusée")
)

// isDuplicate reports whether err is a unique-constraint violation.
// gorm translates driver errors when TranslateError is enabled; the string
// checks cover drivers (sqlite in tests) that don't.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}
