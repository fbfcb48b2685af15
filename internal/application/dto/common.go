package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Redirect se rellena en respuestas 401 con la ruta de login y el
	// destino original (?next=) para el redirect posterior al login.
	Redirect string `json:"redirect,omitempty"`
}

// ResultResponse resultado estructurado de acciones de borrado.
type ResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
