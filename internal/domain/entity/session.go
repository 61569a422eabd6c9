package entity

// Session identidad autenticada que guarda el cliente para reanudar sin volver a loguearse.
type Session struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}
