package auth

// User es una fila de la tabla users (credenciales).
// Password es el hash bcrypt; nunca se serializa.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}
