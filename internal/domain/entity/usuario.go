package entity

import "time"

// Permisos válidos para Usuario.
const (
	PermisoAdmin    = "admin"
	PermisoVendedor = "vendedor"
	PermisoUsuario  = "usuario"
	PermisoEmpleado = "empleado"
)

// Usuario representa un usuario del sistema (app móvil o back-office).
type Usuario struct {
	ID                int64
	Nombre            string
	CorreoElectronico string // único
	Telefono          string
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	Permiso           string // admin, vendedor, usuario, empleado
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AccessToken es la contraparte persistida de un JWT emitido: el ID es el
// claim jti. Borrar la fila revoca el token aunque la firma siga vigente.
type AccessToken struct {
	ID        string // uuid
	UsuarioID int64
	CreatedAt time.Time
}
