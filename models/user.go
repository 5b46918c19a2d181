package models

// User is the record built at sign-in. The gate is a demo: any
// non-empty credentials pass, so the hash is stored and never checked.
type User struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
