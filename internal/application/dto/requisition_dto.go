package dto

import "time"

// RequisitionResponse representación de una requisición con su detalle.
type RequisitionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Quantity    int64     `json:"quantity"`
	Description string    `json:"description"`
	EmployeeID  string    `json:"employee_id"`
	Status      string    `json:"status"`
	ProductID   string    `json:"product_id"`
	CreatedAt   time.Time `json:"created_at"`
}
