package dto

import "time"

// UserDTO is the public view of an account.
type UserDTO struct {
	ID        *uint64    `json:"id,omitempty"`
	Username  *string    `json:"username,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Headline  *string    `json:"headline,omitempty" validate:"omitempty,max=200"`
	Company   *string    `json:"company,omitempty"`
	Industry  *string    `json:"industry,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// RegisterDTO supports two registration modes.
type RegisterDTO struct {
	// Mode one: username & password.
	Username *string `json:"username" validate:"omitempty,min=3,max=20"`
	Password *string `json:"password" validate:"omitempty,min=6,max=20"`

	// Mode two: phone & the temporary token issued after code verification.
	Phone      *string `json:"phone" validate:"omitempty,min=11,max=11"`
	PhoneToken *string `json:"phone_token"`

	Headline *string `json:"headline,omitempty"`
	Company  *string `json:"company,omitempty"`
	Industry *string `json:"industry,omitempty"`
}

// CredentialDTO is a login request.
type CredentialDTO struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	SmsCode  *string `json:"sms_code,omitempty"`
}

// UpdateProfileDTO updates the professional profile fields.
type UpdateProfileDTO struct {
	Headline *string `json:"headline,omitempty" validate:"omitempty,max=200"`
	Company  *string `json:"company,omitempty" validate:"omitempty,max=100"`
	Industry *string `json:"industry,omitempty" validate:"omitempty,max=100"`
}

// SendSmsDTO requests a verification code.
type SendSmsDTO struct {
	Phone string `json:"phone" binding:"required" validate:"min=11,max=11"`
}

// CheckSmsDTO exchanges a verification code for a registration token.
type CheckSmsDTO struct {
	Phone string `json:"phone" binding:"required" validate:"min=11,max=11"`
	Code  string `json:"code" binding:"required" validate:"min=6,max=6"`
}
