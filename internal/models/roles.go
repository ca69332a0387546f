package models

// UserRole - роль пользователя на платформе
type UserRole string

// Закрытое перечисление ролей. Строки совпадают с тем, что
// присылает фронтенд при регистрации.
const (
	UserRoleStudentClient   UserRole = "Student Client"
	UserRoleServiceProvider UserRole = "Service Provider"
)

// ValidRole проверяет, что роль входит в перечисление.
// Вызывается на каждом пути создания пользователя, включая обычный
// signup, а не только завершение Google-регистрации.
func ValidRole(role UserRole) bool {
	switch role {
	case UserRoleStudentClient, UserRoleServiceProvider:
		return true
	default:
		return false
	}
}
