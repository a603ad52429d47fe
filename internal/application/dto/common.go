package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta de actualización/borrado.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse respuesta de creación: mensaje + id asignado.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
