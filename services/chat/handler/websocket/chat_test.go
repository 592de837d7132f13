package websocket

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/frames"
	"github.com/piresc/chatsync/internal/pkg/models"
	"github.com/piresc/chatsync/internal/pkg/notice"
	"github.com/piresc/chatsync/services/chat/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatHandler_Frames(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockChatUC(ctrl)
	handler := NewChatHandler(mockUC, notice.NewBoard(5))

	message := frames.Frame{Kind: frames.NewMessage, Message: models.Message{ID: 9, Text: "hi"}}
	renamed := frames.Frame{Kind: frames.ChatRenamed, NewName: "the crew"}
	mockUC.EXPECT().HandleFrame(int64(5), message)
	mockUC.EXPECT().HandleFrame(int64(5), renamed)

	frameHandler := handler.Frames(5)
	frameHandler(message)
	frameHandler(renamed)
	frameHandler(frames.Frame{Kind: frames.UnknownType, Type: "typing"})
	frameHandler(frames.Frame{Kind: frames.FriendRequestNotification})
	frameHandler(frames.Frame{Kind: frames.Ignored})
}

func TestChatHandler_ListenersRaiseNoticeOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	board := notice.NewBoard(5)
	handler := NewChatHandler(mocks.NewMockChatUC(ctrl), board)

	l := handler.Listeners(5)
	l.OnOpen()
	l.OnClose(errors.New("going away"))
	assert.Empty(t, board.List())

	l.OnError(errors.New("dial tcp: connection refused"))

	notices := board.List()
	require.Len(t, notices, 1)
	assert.Equal(t, constants.NoticeChatSocket, notices[0].Message)
}
