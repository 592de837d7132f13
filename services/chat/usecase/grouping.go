package usecase

import (
	"time"

	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/piresc/chatsync/internal/pkg/models"
)

// AuthorGroup is a run of consecutive messages from one sender
type AuthorGroup struct {
	Sender   models.User      `json:"sender"`
	Messages []models.Message `json:"messages"`
}

// DayGroup holds the author groups of one calendar day
type DayGroup struct {
	Date   time.Time     `json:"date"`
	Groups []AuthorGroup `json:"groups"`
}

// GroupMessages groups a newest-first message list for display. Days
// keep the list order; inside a day messages run oldest first and a
// sender's consecutive messages less than 30 minutes apart share a group.
func GroupMessages(messages []models.Message, loc *time.Location) []DayGroup {
	if loc == nil {
		loc = time.Local
	}

	type day struct {
		date     time.Time
		messages []models.Message
	}
	var days []day
	for _, m := range messages {
		date := models.DayAtMidnight(m.CreatedAt.In(loc))
		if n := len(days); n > 0 && days[n-1].date.Equal(date) {
			days[n-1].messages = append([]models.Message{m}, days[n-1].messages...)
			continue
		}
		days = append(days, day{date: date, messages: []models.Message{m}})
	}

	groups := make([]DayGroup, 0, len(days))
	for _, d := range days {
		groups = append(groups, DayGroup{Date: d.date, Groups: groupByAuthor(d.messages)})
	}
	return groups
}

func groupByAuthor(messages []models.Message) []AuthorGroup {
	window := time.Duration(constants.MessageGroupWindowMinutes) * time.Minute

	var groups []AuthorGroup
	for _, m := range messages {
		if n := len(groups); n > 0 {
			last := &groups[n-1]
			prev := last.Messages[len(last.Messages)-1]
			if last.Sender.ID == m.User.ID && models.DurationBetween(prev.CreatedAt, m.CreatedAt) < window {
				last.Messages = append(last.Messages, m)
				continue
			}
		}
		groups = append(groups, AuthorGroup{Sender: m.User, Messages: []models.Message{m}})
	}
	return groups
}
