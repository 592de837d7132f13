package constants

// Inbound frame types, the value of the "type" discriminant
const (
	FrameUpdateAccessToken = "update_access_token"
	FrameNewMessage        = "new_message"
	FrameChatNameUpdated   = "chat_name_updated"
	FrameFriendRequest     = "friend_request"
)

// Websocket paths, appended to the websocket origin
const (
	WSPathNotifications = "/notifications"
	WSPathChat          = "/chats/%d" // Format: /chats/{chat_id}
)

// Subscriber names, one live socket per subscriber
const (
	SubscriberNotifications = "notifications"
	SubscriberChat          = "chat:%d" // Format: chat:{chat_id}
)

// Query parameters carrying the session credentials on the socket URL
const (
	QueryAccessToken  = "accessToken"
	QueryRefreshToken = "refreshToken"
)

// Transient notices shown to the user
const (
	NoticeSocketConnect      = "Could not connect to websocket"
	NoticeNotificationSocket = "Could not connect to notifications socket"
	NoticeChatSocket         = "Could not connect to chat socket"
)

// Notices raised by user actions
const (
	NoticeSendFailed   = "Could not send message"
	NoticeRenameFailed = "Could not update chat name"
	NoticeMarkFailed   = "Could not mark notifications as seen"
	NoticeLoadFailed   = "Could not load notifications"
)
