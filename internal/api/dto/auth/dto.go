package auth

type RegisterRequest struct {
	Name     string `json:"name"`     // Имя игрока
	Phone    string `json:"phone"`    // Телефон, используется как логин
	Password string `json:"password"` // Пароль
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	SessionID   string `json:"session_id,omitempty"`
}
