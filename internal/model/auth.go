package model

// AuthData - набор токенов, выдаваемых при входе
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
