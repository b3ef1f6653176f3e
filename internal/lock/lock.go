// Package lock - блокировки спина по пользователю.
// Пока блокировка взята, повторный спин того же пользователя отклоняется
package lock

import (
	"context"
	"errors"
	"strconv"
)

// ErrLocked - блокировка уже взята
var ErrLocked = errors.New("already locked")

// Locker берёт неблокирующую блокировку по ключу.
// Возвращаемая функция снимает блокировку
type Locker interface {
	TryLock(ctx context.Context, key string) (unlock func(), err error)
}

// SpinKey - ключ блокировки спина пользователя
func SpinKey(userID int) string {
	return "lucky_slots:spin:" + strconv.Itoa(userID)
}
