package constants

// HTTP методы
const (
	MethodPost = "POST"
)

// Заголовки
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAPIKey        = "apikey"
	HeaderPrefer        = "Prefer"
)

const (
	ContentTypeJSON = "application/json"
)

// PreferUpsert — merge по on_conflict и возврат записанной строки (PostgREST)
const PreferUpsert = "resolution=merge-duplicates,return=representation"
