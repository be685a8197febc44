package domain

import "github.com/google/uuid"

// User is the user record owned by the repository. PasswordHash never leaves
// the service; handlers map User to response shapes without it.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Albums       []Album
}

// Album is a related item fetched from the albums collaborator.
type Album struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
