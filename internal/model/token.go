package model

// ResetTokenManager issues and verifies password-reset tokens. Tokens are
// bound to the user's current password hash so a token stops verifying as
// soon as the password changes.
type ResetTokenManager interface {
	Generate(user User) (string, error)
	Verify(token string, user User) error
}
