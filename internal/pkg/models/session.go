package models

// Credentials is the access/refresh token pair of a session.
// Empty strings mean unauthenticated.
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Complete reports whether both tokens are present
func (c Credentials) Complete() bool {
	return c.AccessToken != "" && c.RefreshToken != ""
}
