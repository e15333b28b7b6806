package dto

// ErrorResponse envoltorio estándar de error de la API.
// Campo y Errores solo se incluyen cuando aplican (errores de longitud de
// columna y validación agregada de request, respectivamente).
type ErrorResponse struct {
	Codigo  string            `json:"codigo"`
	Mensaje string            `json:"mensaje"`
	Campo   string            `json:"campo,omitempty"`
	Errores map[string]string `json:"errores,omitempty"`
}
