package appointments

// Appointment es una fila de la tabla Appointment.
// pet_id y vet_id no se validan contra otras tablas.
// Fecha y hora se guardan como strings opacos.
type Appointment struct {
	AppointmentID   int64  `json:"appointment_id"`
	PetID           int64  `json:"pet_id"`
	VetID           int64  `json:"vet_id"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Reason          string `json:"reason"`
	Status          string `json:"status"`
}
