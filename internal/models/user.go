package models

type User struct {
	ID                   string         `json:"user_id"`
	Email                string         `json:"email"`
	Name                 string         `json:"name"`
	PasswordHash         string         `json:"password_hash,omitempty"`
	Preferences          map[string]any `json:"preferences"`
	NotificationSettings map[string]any `json:"notification_settings"`
	CreatedAt            int64          `json:"created_at"`
	UpdatedAt            int64          `json:"updated_at"`
}

func (u *User) RecordID() string { return u.ID }
func (u *User) OwnerID() string  { return u.ID }

// Public returns a copy of u without credentials.
func (u *User) Public() User {
	out := *u
	out.PasswordHash = ""
	return out
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required|email"`
	Name     string `json:"name" validate:"maxLen:120"`
	Password string `json:"password" validate:"required|minLen:8"`
}

func (in *RegisterInput) Validate() error {
	return validateStruct(in).orNil()
}

type LoginInput struct {
	Email    string `json:"email" validate:"required|email"`
	Password string `json:"password" validate:"required"`
}

func (in *LoginInput) Validate() error {
	return validateStruct(in).orNil()
}

type ProfileUpdateInput struct {
	Name                 *string        `json:"name"`
	Preferences          map[string]any `json:"preferences"`
	NotificationSettings map[string]any `json:"notification_settings"`
}

func (in *ProfileUpdateInput) Validate() error {
	data := map[string]any{}
	if in.Name != nil {
		data["name"] = *in.Name
	}
	return validateMap(data, map[string]string{"name": "maxLen:120"}).orNil()
}

type PasswordChangeInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required|minLen:8"`
}

func (in *PasswordChangeInput) Validate() error {
	return validateStruct(in).orNil()
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
