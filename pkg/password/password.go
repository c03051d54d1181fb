// Package password encapsula la política de hashing de contraseñas (bcrypt).
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost costo bcrypt por defecto.
const DefaultCost = bcrypt.DefaultCost

// MaxBytes longitud máxima que bcrypt acepta.
const MaxBytes = 72

// ErrTooLong la contraseña supera MaxBytes.
var ErrTooLong = bcrypt.ErrPasswordTooLong

const dummySecret = "componentes-api/dummy"

// Hash genera el hash bcrypt de password. cost fuera de rango usa DefaultCost.
func Hash(password string, cost int) (string, error) {
	if len(password) > MaxBytes {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), normalizeCost(cost))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify compara password con hash en tiempo constante.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Dummy hash ficticio al mismo costo que los hashes reales. Se compara cuando el
// usuario no existe, para que ambos fallos cuesten lo mismo.
type Dummy struct {
	hash []byte
	cost int
}

// NewDummy genera el hash ficticio con el costo de Hash(_, cost).
func NewDummy(cost int) *Dummy {
	cost = normalizeCost(cost)
	h, err := bcrypt.GenerateFromPassword([]byte(dummySecret), cost)
	if err != nil {
		// solo falla con costo inválido, ya normalizado
		panic("password: hash ficticio: " + err.Error())
	}
	return &Dummy{hash: h, cost: cost}
}

// Verify consume el mismo tiempo que Verify contra un hash real. Siempre false.
func (d *Dummy) Verify(password string) bool {
	_ = bcrypt.CompareHashAndPassword(d.hash, []byte(password))
	return false
}

// Cost costo bcrypt del hash ficticio.
func (d *Dummy) Cost() int { return d.cost }

func normalizeCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return DefaultCost
	}
	return cost
}
