package dto

// CustomerRequest entrada de creación/actualización de cliente.
type CustomerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}
