package constants

// Базовый путь REST API хранилища (PostgREST)
const (
	BasePathREST = "/rest/v1"
)

// Таблица и ключ конфликта для upsert
const (
	TableUsers       = "users"
	ConflictKeyEmail = "email"
)
