// Package errors содержит общие доменные ошибки приложения
// и типы ошибок для терминальной нормализации.
//
// Сентинельные ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое. Тексты пользовательских
// ошибок зафиксированы историческим контрактом API.
package errors

import "errors"

var (
	// username обязателен при создании пользователя
	ErrUsernameRequired = errors.New("Username is required.")
	// Обязательные поля упражнения отсутствуют, пустые или не парсятся
	ErrInvalidInput = errors.New("Invalid input.")
	// Пользователь с таким id не найден
	ErrUserNotFound = errors.New("User not found.")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Непредвиденная ошибка хранилища или сервера
	ErrInternal = errors.New("Internal Server Error")
	// Ресурс не найден (запрос мимо всех маршрутов)
	ErrNotFound = errors.New("not found")
)

// FieldError — ошибка валидации одного поля.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError агрегирует ошибки валидации по нескольким полям.
//
// Порядок элементов Fields фиксирован порядком добавления (порядок
// объявления полей). Нормализатор ошибок отдаёт клиенту сообщение
// только первого поля.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return e.Fields[0].Message
}

// StatusError — ошибка с явным HTTP-статусом.
// Используется, например, терминальным 404 fallback.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}
