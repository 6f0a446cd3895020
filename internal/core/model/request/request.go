package request

type SignUpRequest struct {
	Email     string `json:"email,omitempty" validate:"required,email,max=255"`
	Password  string `json:"password,omitempty" validate:"required,min=6,max=100"`
	FirstName string `json:"first_name,omitempty" validate:"max=100"`
	LastName  string `json:"last_name,omitempty" validate:"max=100"`
	Language  string `json:"language,omitempty" validate:"omitempty,oneof=en pt es fr"`
}

type LoginRequest struct {
	Email    string `json:"email,omitempty" validate:"required,email,max=255"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token,omitempty" validate:"required"`
}

type DeleteAccountRequest struct {
	Password string `json:"password,omitempty" validate:"required"`
}

type HeroRequest struct {
	Name  string `json:"name,omitempty" validate:"min=2,max=255"`
	Power string `json:"power,omitempty" validate:"max=255"`
}
