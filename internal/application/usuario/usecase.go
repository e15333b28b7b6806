package usuario

import (
	"context"
	"regexp"
	"time"

	"github.com/plazoleta/usuarios-api/internal/domain"
	"github.com/plazoleta/usuarios-api/internal/domain/entity"
	"github.com/plazoleta/usuarios-api/internal/domain/repository"
	"github.com/plazoleta/usuarios-api/pkg/password"
)

// Reglas de formato de los datos de creación.
var (
	regexDocumento = regexp.MustCompile(`^\d+$`)
	regexCorreo    = regexp.MustCompile(`^[\w\-.]+@[\w\-]+\.[a-zA-Z]{2,}$`)
	regexCelular   = regexp.MustCompile(`^\+?\d{1,13}$`)
)

// UseCase casos de uso del ciclo de vida de usuarios: crear propietario,
// crear empleado y consultar por ID.
type UseCase struct {
	repo repository.UsuarioRepository
}

// NewUseCase construye el caso de uso de usuarios.
func NewUseCase(repo repository.UsuarioRepository) *UseCase {
	return &UseCase{repo: repo}
}

// CrearPropietario valida los datos, encripta la clave y persiste el usuario
// con rol PROPIETARIO. El restauranteID de los datos se descarta: no aplica a
// propietarios.
func (uc *UseCase) CrearPropietario(ctx context.Context, datos entity.DatosCreacionUsuario) error {
	return uc.crear(ctx, datos, entity.RolPropietario, nil)
}

// CrearEmpleado valida los datos, encripta la clave y persiste el usuario con
// rol EMPLEADO asociado al restaurante del propietario que lo crea.
func (uc *UseCase) CrearEmpleado(ctx context.Context, datos entity.DatosCreacionUsuario) error {
	return uc.crear(ctx, datos, entity.RolEmpleado, datos.RestauranteID)
}

// ObtenerPorID devuelve el usuario o (nil, nil) si no existe.
func (uc *UseCase) ObtenerPorID(ctx context.Context, id int) (*entity.Usuario, error) {
	return uc.repo.BuscarPorID(ctx, id)
}

func (uc *UseCase) crear(ctx context.Context, datos entity.DatosCreacionUsuario, rolNombre string, restauranteID *int) error {
	if err := uc.validar(ctx, datos); err != nil {
		return err
	}
	claveEncriptada, err := password.Encriptar(datos.Clave)
	if err != nil {
		return err
	}
	usuario := &entity.Usuario{
		Nombre:          datos.Nombre,
		Apellido:        datos.Apellido,
		Documento:       datos.Documento,
		Celular:         datos.Celular,
		FechaNacimiento: datos.FechaNacimiento,
		Correo:          datos.Correo,
		Clave:           claveEncriptada,
		Rol:             entity.Rol{Nombre: rolNombre},
		RestauranteID:   restauranteID,
	}
	_, err = uc.repo.Guardar(ctx, usuario)
	return err
}

// validar aplica las reglas de negocio en orden, cortando en el primer fallo:
// los chequeos sintácticos baratos van antes del chequeo de unicidad (I/O).
// El pre-chequeo de correo puede perder una carrera contra un insert
// concurrente; el constraint único de la base de datos es la garantía real y
// ese fallo llega traducido desde el adaptador de persistencia.
func (uc *UseCase) validar(ctx context.Context, datos entity.DatosCreacionUsuario) error {
	if !regexDocumento.MatchString(datos.Documento) {
		return domain.NuevoCampoInvalido("documento", "Documento inválido")
	}
	if !regexCorreo.MatchString(datos.Correo) {
		return domain.ErrEmailInvalido
	}
	if !regexCelular.MatchString(datos.Celular) {
		return domain.NuevoCampoInvalido("celular", "Celular inválido")
	}
	if !entity.EsMayorDeEdad(datos.FechaNacimiento, time.Now()) {
		return domain.ErrUsuarioMenorDeEdad
	}
	existe, err := uc.repo.ExisteCorreo(ctx, datos.Correo)
	if err != nil {
		return err
	}
	if existe {
		return domain.NuevoCampoInvalido("correo", "Correo ya registrado")
	}
	return nil
}
