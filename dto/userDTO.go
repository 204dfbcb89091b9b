package dto

type UpsertUserRequest struct {
	UID   string `json:"uid" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
