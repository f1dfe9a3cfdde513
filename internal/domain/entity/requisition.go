package entity

import "time"

// RequestedProduct es el detalle de producto de una requisición. Se crea de
// forma atómica junto con su Requisition y referencia al Product solicitado.
type RequestedProduct struct {
	ID          string
	ProductID   string
	ProductName string // denormalizado al momento de la solicitud
	Quantity    int64
	CreatedAt   time.Time
}

// Requisition es una solicitud de salida de stock hecha por un empleado.
// Al crearse, la cantidad solicitada se descuenta del stock como reserva
// especulativa; la aprobación no vuelve a tocar el inventario y el rechazo
// restaura la cantidad reservada.
type Requisition struct {
	ID          string
	Name        string
	Quantity    int64
	Description string
	EmployeeID  string
	Status      Status
	Requested   RequestedProduct
	CreatedAt   time.Time
}
