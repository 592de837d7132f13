package constants

// REST endpoints of the chat API
const (
	PathLoggedInUser           = "/auth/me"
	PathChats                  = "/chats"
	PathChat                   = "/chats/%d"             // Format: /chats/{chat_id}
	PathChatMessages           = "/chats/%d/messages"    // Format: /chats/{chat_id}/messages
	PathChatUpdateName         = "/chats/%d/update-name" // Format: /chats/{chat_id}/update-name
	PathFriendRequestNotifs    = "/notifications/friend-requests?seen=false&limit=%d"
	PathNewMessageNotifs       = "/notifications/new-messages?seen=false"
	PathFriendRequestsMarkSeen = "/notifications/friend-requests/mark-as-seen"
	PathNewMessagesMarkSeen    = "/notifications/new-messages/mark-as-seen"
)

// Cookie names the API reads the session tokens from
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// Defaults
const (
	DefaultFriendRequestLimit = 5
	DefaultNoticeCapacity     = 50
	// Consecutive messages from one author closer than this share a group
	MessageGroupWindowMinutes = 30
)
