package models

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// AdminLoginInput is the body of POST /v1/admin/login.
type AdminLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// Password wraps the bcrypt hash of the shop's admin password.
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

// Matches reports whether plaintextPassword hashes to p.Hash.
// An empty hash never matches.
func (p *Password) Matches(plaintextPassword string) (bool, error) {
	if p.Hash == "" {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
