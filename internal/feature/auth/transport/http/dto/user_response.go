package dto

import (
	"time"

	"wealth_backend/internal/feature/auth/domain/entity"
)

// UserResp はパスワードハッシュを含まない公開ユーザー情報です。
type UserResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   string    `json:"picture"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResp は/auth/loginの成功レスポンスです。
type TokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ToUserResp はエンティティを公開レスポンスに変換します。
func ToUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Picture:   u.Picture,
		CreatedAt: u.CreatedAt,
	}
}
