package constants

// Роли пользователей (поле users.role — открытая строка, это значения из сидов)
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleStudent    = "student"
)

// Драйверы хранилища
const (
	StoreDriverREST     = "rest"
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)
