// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher turns registration passwords into stored credentials and
// verifies login attempts against them. Only the salted hash ever reaches
// the user store; the algorithm behind it stays out of the domain.
type PasswordHasher interface {
	// Hash derives a salted credential hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether a login password matches the stored hash.
	Check(password, hash string) bool
}
