// Серверные модели предметной области
package models

import "time"

// User — пользователь трекера упражнений.
//
// ID — короткий URL-safe идентификатор, выдаётся один раз при создании
// и больше не меняется. Уникальность username хранилищем не гарантируется.
type User struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

// UserListItem — элемент списка пользователей:
// сам пользователь и идентификаторы его упражнений.
// Список идентификаторов собирается из таблицы exercises при чтении,
// плотно на пользователе он не хранится.
type UserListItem struct {
	User        User
	ExerciseIDs []string
}
