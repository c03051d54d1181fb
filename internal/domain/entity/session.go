package entity

import "time"

// Session sesión emitida tras una autenticación exitosa.
// SubjectID es opaco y nuevo en cada login; nunca deriva del email.
type Session struct {
	SubjectID string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
	Token     string
}
