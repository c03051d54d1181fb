package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de respuesta para operaciones sin entidad de salida.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse estado del servicio y de la base de datos.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
