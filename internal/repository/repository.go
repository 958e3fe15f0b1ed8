package repository

import (
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User         UserRepository
	Event        EventRepository
	Notification NotificationRepository
	Knowledge    KnowledgeRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Event:        NewEventRepository(db),
		Notification: NewNotificationRepository(db),
		Knowledge:    NewKnowledgeRepository(db),
	}
}
