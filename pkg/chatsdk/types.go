package chatsdk

// ============================================================================
// Domain Types
// ============================================================================

// Token is the session token issued by a successful login exchange.
// It is an immutable value: created once from the decoded success payload
// and handed to both the caller and the configured TokenStore.
type Token struct {
	// UserID identifies the authenticated user
	UserID string `json:"userId"`

	// AuthToken is the opaque access token. The SDK never interprets its
	// contents; it is only attached to authenticated requests as-is.
	AuthToken string `json:"authToken"`
}

// User is the minimal user record returned by registration and profile
// lookups. Only ID is guaranteed to be populated by every endpoint.
type User struct {
	// ID is the unique identifier for the user
	ID string `json:"id"`

	// Username is the user's login username
	Username string `json:"username,omitempty"`

	// Name is the user's display name
	Name string `json:"name,omitempty"`

	// Email is the user's email address
	Email string `json:"email,omitempty"`
}

// ============================================================================
// Internal Response Types (used for JSON unmarshaling)
// ============================================================================

// apiErrorBody is the error envelope the server attaches to non-200
// responses. ErrorType is optional: when present it names a specific
// failure reason (e.g. "error-field-unavailable") distinct from the
// generic HTTP status.
type apiErrorBody struct {
	// Error is the human-readable error message
	Error string `json:"error"`

	// ErrorType is the optional machine-readable error identifier
	ErrorType string `json:"errorType"`
}

// logoutResponse is the body returned by POST /api/v1/logout.
type logoutResponse struct {
	Status string `json:"status,omitempty"`
}
