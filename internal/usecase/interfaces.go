package usecase

// TokenIssuer defines the interface for session token operations.
type TokenIssuer interface {
	// Sign issues a token for the given user id.
	Sign(userID string) (string, error)
	// Parse verifies a token's signature and reports whether it has expired.
	// An expired token is not an error; session extension and logout accept
	// expired tokens on purpose.
	Parse(token string) (userID string, expired bool, err error)
}
