package chatsdk

// Both credential variants serialize to the same login request shape; they
// differ only in which identity the caller supplies for the "user" field.
// No client-side validation is performed: credential shape is a server-side
// concern and strings pass through unmodified.

// loginRequest is the wire payload for POST /api/v1/login.
type loginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// usernameCredentials builds the login payload for the username variant.
func usernameCredentials(username, password string) loginRequest {
	return loginRequest{User: username, Password: password}
}

// emailCredentials builds the login payload for the email variant.
func emailCredentials(email, password string) loginRequest {
	return loginRequest{User: email, Password: password}
}

// RegistrationRequest contains the data needed to register a new user
// via POST /api/v1/users.register.
type RegistrationRequest struct {
	// Email is the email address for the new account
	Email string `json:"email"`

	// Name is the display name for the new account
	Name string `json:"name"`

	// Username is the login username for the new account
	Username string `json:"username"`

	// Password is the plaintext password (sent as "pass" on the wire)
	Password string `json:"pass"`
}
