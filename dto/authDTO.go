package dto

type TokenRequest struct {
	UID   string `json:"uid" binding:"required"`
	Email string `json:"email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
