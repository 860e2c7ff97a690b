package dto

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	TokenType    string       `json:"tokenType"` // Always "Bearer"
	ExpiresIn    int64        `json:"expiresIn"` // Seconds until access token expiry
	User         UserResponse `json:"user"`
}

// RefreshTokenRequest asks for a new token pair using a refresh token.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// RefreshTokenResponse is returned after a successful token refresh. The
// refresh token is rotated on every use.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}
