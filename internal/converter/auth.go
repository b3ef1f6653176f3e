package converter

import (
	dto "lucky_slots/internal/api/dto/auth"
	"lucky_slots/internal/model"
)

func RegisterRequestToUserModel(req *dto.RegisterRequest) *model.User {
	return &model.User{
		Name:     req.Name,
		Phone:    req.Phone,
		Password: req.Password,
	}
}

func ToTokenResponse(data *model.AuthData) dto.TokenResponse {
	return dto.TokenResponse{
		AccessToken: data.AccessToken,
		SessionID:   data.SessionID,
	}
}
