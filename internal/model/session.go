package model

import "time"

// Session - refresh-сессия игрока. RefreshToken хранит хеш, а не сам токен
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}

func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
