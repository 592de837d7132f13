package constants

// Redis key formats
const (
	KeySessionTokens = "chatsync:session:%s:tokens" // Format: chatsync:session:{session_name}:tokens
)

// Redis hash fields
const (
	FieldAccessToken  = "access_token"
	FieldRefreshToken = "refresh_token"
)
