package domain

// User is a registered account. Email is stored trimmed and lowercased and
// is unique across the users collection. PasswordHash is a bcrypt hash —
// the clear-text password never reaches the store.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

// Session is an active sign-in. Token is the opaque bearer token handed to
// the client; UserID identifies the owner all trip operations are scoped to.
// Name and Email are denormalized for the /auth/me response.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}
