// Package dto defines Data Transfer Objects for authentication.
package dto

// TokenRequest represents the JSON request body for the token endpoint.
//
// @Description Client credentials exchanged for an access token
// @Example {"client_id": "plant-a", "client_secret": "s3cret-value"}
type TokenRequest struct {
	// ClientID identifies the calling system.
	ClientID string `json:"client_id" binding:"required" example:"plant-a"`
	// ClientSecret is verified against the configured bcrypt hash.
	ClientSecret string `json:"client_secret" binding:"required" example:"s3cret-value"`
} // @name TokenRequest

// TokenResponse represents the JSON response body for the token endpoint.
//
// @Description Signed access token
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"3600"`
} // @name TokenResponse

// Claims represents the application claims carried by an access token.
type Claims struct {
	ClientID string `json:"client_id"`
}

// Validate performs custom validation on the token request.
func (r *TokenRequest) Validate() error {
	if r.ClientID == "" {
		return &ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		}
	}
	if r.ClientSecret == "" {
		return &ValidationError{
			Field:   "client_secret",
			Message: "client_secret is required",
		}
	}
	return nil
}
