package model

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	// Optional requested access-token lifetime. Clamped server side to at
	// most one hour.
	ExpiresInSeconds int64 `json:"expires_in_seconds,omitempty" validate:"omitempty,gt=0"`
}

type CreateChirpRequest struct {
	Body string `json:"body" validate:"required"`
}

type PolkaWebhookRequest struct {
	Event string `json:"event" validate:"required"`
	Data  struct {
		UserID string `json:"user_id" validate:"required,uuid"`
	} `json:"data"`
}
