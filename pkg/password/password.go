// Package password hashea y verifica contraseñas con bcrypt.
package password

import "golang.org/x/crypto/bcrypt"

// Bcrypt hashea con sal aleatoria por llamada; dos hashes del mismo texto difieren.
type Bcrypt struct {
	cost int
}

// NewBcrypt construye el hasher. Un costo fuera de los límites de bcrypt usa bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash devuelve el hash bcrypt de plain.
func (b *Bcrypt) Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara plain contra el hash almacenado. Un hash malformado devuelve false.
func (b *Bcrypt) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
