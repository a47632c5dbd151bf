package models

// Profile is the public identity record of the signed-in account.
// ID is the canonical owner id used to key profile-scoped reads.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// Credentials carries the email/password pair for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by the login endpoint: the signed-in profile and
// the bearer token for subsequent requests.
type AuthResponse struct {
	User  Profile `json:"user"`
	Token string  `json:"token"`
}
