// Package idgen генерирует короткие URL-safe идентификаторы документов.
//
// Идентификатор — это uuid v4, закодированный алфавитом base57 (shortuuid),
// например "mSjFsDkWKxSPst5eRZTSGK". Генерация выполняется явным вызовом
// на слое service в момент создания сущности, а не дефолтом схемы БД.
package idgen

import (
	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
)

// New возвращает новый короткий уникальный идентификатор.
func New() string {
	return shortuuid.DefaultEncoder.Encode(uuid.New())
}
