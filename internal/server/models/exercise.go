package models

import "time"

// Exercise — одна запись журнала упражнений.
//
// UserID ссылается на владельца (User.ID). Date — дата выполнения:
// либо переданная клиентом, либо серверное время на момент создания.
type Exercise struct {
	ID          string
	UserID      string
	Description string
	Duration    int
	Date        time.Time
	CreatedAt   time.Time
}

// PopulatedUser — пользователь с развёрнутым (populate) списком
// его упражнений. Возвращается после добавления упражнения.
type PopulatedUser struct {
	User      User
	Exercises []Exercise
}
