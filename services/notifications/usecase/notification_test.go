package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/pkg/notice"
	chatmocks "github.com/piresc/chatsync/services/chat/mocks"
	"github.com/piresc/chatsync/services/notifications/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func friendRequest(id int64, seen bool) models.Notification {
	return models.Notification{
		ID:   id,
		Type: models.NotificationFriendRequest,
		Seen: seen,
		Data: json.RawMessage(`{"from":{"id":8,"username":"bob"}}`),
	}
}

func newMessage(id, chatID int64, seen bool) models.Notification {
	return models.Notification{
		ID:   id,
		Type: models.NotificationNewMessage,
		Seen: seen,
		Data: json.RawMessage(fmt.Sprintf(`{"chatId":%d}`, chatID)),
	}
}

func notificationIDs(list []models.Notification) []int64 {
	out := make([]int64, len(list))
	for i, n := range list {
		out[i] = n.ID
	}
	return out
}

type fixture struct {
	uc     *NotificationUC
	gw     *mocks.MockNotificationGW
	chats  *chatmocks.MockChatUC
	notice *notice.Board
}

func setup(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockNotificationGW(ctrl)
	chats := chatmocks.NewMockChatUC(ctrl)
	board := notice.NewBoard(10)
	return fixture{
		uc:     NewNotificationUC(gw, chats, board, 5),
		gw:     gw,
		chats:  chats,
		notice: board,
	}
}

func (f fixture) load(t *testing.T, friendRequests, newMessages []models.Notification) {
	t.Helper()
	f.gw.EXPECT().GetFriendRequestNotifications(gomock.Any(), 5).Return(friendRequests, nil)
	f.gw.EXPECT().GetNewMessageNotifications(gomock.Any()).Return(newMessages, nil)
	require.NoError(t, f.uc.Load(context.Background()))
}

func TestLoad(t *testing.T) {
	f := setup(t)
	f.load(t,
		[]models.Notification{friendRequest(2, false), friendRequest(1, true)},
		[]models.Notification{newMessage(10, 5, false)})

	assert.Equal(t, []int64{2, 1}, notificationIDs(f.uc.FriendRequests()))
	assert.Equal(t, []int64{10}, notificationIDs(f.uc.NewMessages()))
	assert.True(t, f.uc.HasUnseenFriendRequests())
	assert.True(t, f.uc.HasUnseenMessages())
}

func TestLoad_Error(t *testing.T) {
	f := setup(t)
	f.gw.EXPECT().GetFriendRequestNotifications(gomock.Any(), 5).Return(nil, errors.New("502 (Bad Gateway)"))

	err := f.uc.Load(context.Background())

	assert.ErrorContains(t, err, "failed to load friend request notifications")
	assert.Empty(t, f.uc.FriendRequests())
}

func TestNewNotificationUC_DefaultLimit(t *testing.T) {
	uc := NewNotificationUC(nil, nil, nil, 0)
	assert.Equal(t, constants.DefaultFriendRequestLimit, uc.friendRequestLimit)
}

func TestHandleFrame_FriendRequestPrepended(t *testing.T) {
	f := setup(t)
	f.load(t, []models.Notification{friendRequest(2, true), friendRequest(1, true)}, nil)
	assert.False(t, f.uc.HasUnseenFriendRequests())
	before := f.uc.FriendRequests()

	f.uc.HandleFrame(context.Background(), frames.Frame{
		Kind:         frames.FriendRequestNotification,
		Notification: friendRequest(3, false),
	})

	assert.Equal(t, []int64{3, 2, 1}, notificationIDs(f.uc.FriendRequests()))
	assert.True(t, f.uc.HasUnseenFriendRequests())
	assert.Equal(t, []int64{2, 1}, notificationIDs(before), "earlier snapshots stay untouched")
}

func TestHandleFrame_DuplicateIgnored(t *testing.T) {
	f := setup(t)
	f.load(t, []models.Notification{friendRequest(1, false)}, nil)

	f.uc.HandleFrame(context.Background(), frames.Frame{
		Kind:         frames.FriendRequestNotification,
		Notification: friendRequest(1, false),
	})

	assert.Len(t, f.uc.FriendRequests(), 1)
}

func TestHandleFrame_NewMessageKnownChat(t *testing.T) {
	f := setup(t)
	f.load(t, nil, []models.Notification{newMessage(10, 5, true)})
	f.chats.EXPECT().HasChat(int64(6)).Return(true)

	f.uc.HandleFrame(context.Background(), frames.Frame{
		Kind:         frames.NewMessageNotification,
		Notification: newMessage(11, 6, false),
	})
	f.uc.Wait()

	assert.Equal(t, []int64{11, 10}, notificationIDs(f.uc.NewMessages()))
	assert.True(t, f.uc.HasUnseenInChat(6))
	assert.False(t, f.uc.HasUnseenInChat(5))
	assert.False(t, f.uc.HasUnseenInChat(7))
}

func TestHandleFrame_NewMessageUnknownChatRefreshesChats(t *testing.T) {
	f := setup(t)
	f.load(t, nil, nil)
	f.chats.EXPECT().HasChat(int64(9)).Return(false)
	f.chats.EXPECT().RefreshChats(gomock.Any()).Return([]models.Chat{{ID: 9}}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.uc.HandleFrame(ctx, frames.Frame{
		Kind:         frames.NewMessageNotification,
		Notification: newMessage(12, 9, false),
	})
	f.uc.Wait()

	assert.Equal(t, []int64{12}, notificationIDs(f.uc.NewMessages()))
	assert.True(t, f.uc.HasUnseenMessages())
}

func TestHandleFrame_SeenPushSkipped(t *testing.T) {
	f := setup(t)
	f.load(t, nil, nil)

	f.uc.HandleFrame(context.Background(), frames.Frame{
		Kind:         frames.FriendRequestNotification,
		Notification: friendRequest(9, true),
	})
	// no HasChat or RefreshChats expected
	f.uc.HandleFrame(context.Background(), frames.Frame{
		Kind:         frames.NewMessageNotification,
		Notification: newMessage(13, 4, true),
	})
	f.uc.Wait()

	assert.Empty(t, f.uc.FriendRequests())
	assert.Empty(t, f.uc.NewMessages())
	assert.False(t, f.uc.HasUnseenFriendRequests())
	assert.False(t, f.uc.HasUnseenMessages())
}

func TestHandleFrame_OtherKindsIgnored(t *testing.T) {
	f := setup(t)
	f.load(t, nil, nil)

	f.uc.HandleFrame(context.Background(), frames.Frame{Kind: frames.NewMessage})
	f.uc.HandleFrame(context.Background(), frames.Frame{Kind: frames.UnknownType, Type: "typing"})
	f.uc.HandleFrame(context.Background(), frames.Frame{Kind: frames.Ignored})

	assert.Empty(t, f.uc.FriendRequests())
	assert.Empty(t, f.uc.NewMessages())
}

func TestMarkFriendRequestsSeen(t *testing.T) {
	f := setup(t)
	f.load(t, []models.Notification{friendRequest(1, false)}, nil)
	gomock.InOrder(
		f.gw.EXPECT().MarkFriendRequestsSeen(gomock.Any()).Return(nil),
		f.gw.EXPECT().GetFriendRequestNotifications(gomock.Any(), 5).Return([]models.Notification{}, nil),
	)

	require.NoError(t, f.uc.MarkFriendRequestsSeen(context.Background()))

	assert.False(t, f.uc.HasUnseenFriendRequests())
	assert.Empty(t, f.notice.List())
}

func TestMarkChatSeen(t *testing.T) {
	f := setup(t)
	f.load(t, nil, []models.Notification{newMessage(10, 5, false), newMessage(11, 6, false)})
	gomock.InOrder(
		f.gw.EXPECT().MarkChatSeen(gomock.Any(), int64(5)).Return(nil),
		f.gw.EXPECT().GetNewMessageNotifications(gomock.Any()).Return([]models.Notification{newMessage(11, 6, false)}, nil),
	)

	require.NoError(t, f.uc.MarkChatSeen(context.Background(), 5))

	assert.False(t, f.uc.HasUnseenInChat(5))
	assert.True(t, f.uc.HasUnseenInChat(6))
}

func TestMarkSeen_Failures(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(f fixture)
		call       func(f fixture) error
		wantNotice string
	}{
		{
			name: "mark friend requests rejected",
			mockSetup: func(f fixture) {
				f.gw.EXPECT().MarkFriendRequestsSeen(gomock.Any()).Return(errors.New("500"))
			},
			call:       func(f fixture) error { return f.uc.MarkFriendRequestsSeen(context.Background()) },
			wantNotice: constants.NoticeMarkFailed,
		},
		{
			name: "refetch after mark chat fails",
			mockSetup: func(f fixture) {
				f.gw.EXPECT().MarkChatSeen(gomock.Any(), int64(5)).Return(nil)
				f.gw.EXPECT().GetNewMessageNotifications(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			call:       func(f fixture) error { return f.uc.MarkChatSeen(context.Background(), 5) },
			wantNotice: constants.NoticeLoadFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)
			f.load(t, []models.Notification{friendRequest(1, false)}, []models.Notification{newMessage(10, 5, false)})
			tt.mockSetup(f)

			err := tt.call(f)

			assert.Error(t, err)
			notices := f.notice.List()
			require.Len(t, notices, 1)
			assert.Equal(t, tt.wantNotice, notices[0].Message)
			assert.True(t, f.uc.HasUnseenFriendRequests(), "cache kept on failure")
			assert.True(t, f.uc.HasUnseenInChat(5))
		})
	}
}
