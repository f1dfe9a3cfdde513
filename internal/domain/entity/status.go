package entity

// Status es el estado de vida de una orden de compra o requisición.
// El único estado inicial es Pending; Approved y Rejected son terminales:
// una vez finalizada, la solicitud no vuelve a transicionar.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid indica si el valor corresponde a un estado conocido.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Final indica si el estado es terminal (no admite más transiciones).
func (s Status) Final() bool {
	return s == StatusApproved || s == StatusRejected
}
