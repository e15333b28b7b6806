package entity

// Nombres de rol válidos. ADMINISTRADOR solo lo usa la capa de autorización;
// las operaciones de creación asignan PROPIETARIO o EMPLEADO.
const (
	RolAdministrador = "ADMINISTRADOR"
	RolPropietario   = "PROPIETARIO"
	RolEmpleado      = "EMPLEADO"
)

// Rol categoría nombrada que determina el nivel de autoridad de un usuario.
// La identidad es el nombre; el ID numérico lo asigna la base de datos y el
// dominio nunca lo codifica a mano.
type Rol struct {
	ID     int
	Nombre string
}
