package pets

// Pet es una fila de la tabla Pet. La clave pet_id la trae el caller.
// owner_id referencia a Owner pero no se valida contra ella: un
// owner_id colgado se acepta.
type Pet struct {
	PetID   int64  `json:"pet_id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Gender  string `json:"gender"`
	OwnerID int64  `json:"owner_id"`
}
