package seeder

import (
	"strings"

	"github.com/psds-microservice/seeder/pkg/constants"
)

// UserSeed — определение сидируемой учётки
type UserSeed struct {
	Email    string
	FullName string
	Role     string
	IsActive bool
}

// DefaultUsers — фиксированный набор административных и тестовых учёток
func DefaultUsers() []UserSeed {
	return []UserSeed{
		{Email: "superadmin@sh.com", FullName: "Super Admin", Role: constants.RoleSuperAdmin, IsActive: true},
		{Email: "admin@sh.com", FullName: "Admin", Role: constants.RoleAdmin, IsActive: true},
		{Email: "learner@sh.com", FullName: "Learner", Role: constants.RoleStudent, IsActive: true},
	}
}

// NormalizeEmail приводит email к ключу upsert'а
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
