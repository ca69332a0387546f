package contextkeys

// Ключи, под которыми middleware аутентификации кладет
// данные проверенного токена в gin.Context
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)
