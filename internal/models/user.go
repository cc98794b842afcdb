package models

// User is the profile of the signed-in account, from GET /user/current.
type User struct {
	ID             int    `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	ProfilePicture string `json:"profilePicture"`
	Gender         int    `json:"gender"`
	Dob            string `json:"dob"`
	Role           int    `json:"role"`
}

// ProfileUpdate is the payload for POST /user/profile.
type ProfileUpdate struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required,min=9,max=12"`
	ProfilePicture string `json:"profilePicture" validate:"omitempty,url"`
	Gender         int    `json:"gender" validate:"oneof=1 2 3"`
	Dob            string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
}

// PasswordChange is the payload for POST /user/password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8,nefield=CurrentPassword"`
}
