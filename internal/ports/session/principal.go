package session

// Roles conocidos, ordenados por privilegio.
const (
	RoleGuest = "guest"
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Principal es la identidad autenticada que viaja con la sesión.
type Principal struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// Level mapea un rol a su nivel numérico: guest=0 < user=1 < admin=2.
// Un rol desconocido o corrupto cae al nivel de user (1), no a guest ni
// admin; ver DESIGN.md.
func Level(role string) int {
	switch role {
	case RoleGuest:
		return 0
	case RoleAdmin:
		return 2
	default:
		return 1
	}
}

// Allowed responde si un rol alcanza el mínimo exigido.
func Allowed(role, minRole string) bool {
	return Level(role) >= Level(minRole)
}
