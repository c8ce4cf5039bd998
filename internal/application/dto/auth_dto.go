package dto

import "strings"

// LoginRequest body para POST /api/login. Se acepta tanto password como
// contrasena, la app móvil envía uno u otro según la versión.
type LoginRequest struct {
	CorreoElectronico string `json:"correoElectronico"`
	Password          string `json:"password"`
	Contrasena        string `json:"contrasena"`
}

// Plain devuelve la contraseña enviada, venga en el campo que venga.
func (r *LoginRequest) Plain() string {
	if r.Password != "" {
		return r.Password
	}
	return r.Contrasena
}

func (r *LoginRequest) Validate() ValidationMessages {
	msgs := ValidationMessages{}
	correo := strings.TrimSpace(r.CorreoElectronico)
	if correo == "" {
		msgs.Add("correoElectronico", "El campo correoElectronico es obligatorio.")
	} else if !strings.Contains(correo, "@") {
		msgs.Add("correoElectronico", "El campo correoElectronico debe ser un correo válido.")
	}
	if r.Plain() == "" {
		msgs.Add("password", "El campo password es obligatorio.")
	}
	return msgs
}

// LoginResponse respuesta de login exitoso.
type LoginResponse struct {
	Data        UsuarioDTO `json:"data"`
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
}

// RegisterResponse respuesta de registro exitoso.
type RegisterResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        UsuarioDTO `json:"user"`
}
