package owners

// Owner es una fila de la tabla Owner.
// La clave owner_id la trae el caller (no la genera el store):
// un insert duplicado revienta como error de constraint y se
// responde como error genérico de base, sin ruta de conflicto propia.
type Owner struct {
	OwnerID   int64  `json:"owner_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
}
