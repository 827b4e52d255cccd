package service

import "errors"

// Failure categories for the external boundaries. Handlers translate these
// into user-facing responses; nothing retries and nothing crashes the
// session.
var (
	// ErrValidation marks an external response whose shape does not match
	// the declared contract. The whole call fails; partial results are
	// never surfaced.
	ErrValidation = errors.New("response failed contract validation")

	// ErrIdentification marks a network or provider failure during
	// ingredient identification.
	ErrIdentification = errors.New("ingredient identification failed")

	// ErrSuggestion marks a network or provider failure during recipe
	// suggestion.
	ErrSuggestion = errors.New("recipe suggestion failed")

	// ErrPersistence marks a failed read or write against recipe history.
	ErrPersistence = errors.New("recipe history operation failed")

	// ErrBadCredentials is returned for any login failure that is not a
	// rate limit, so the response never reveals which part was wrong.
	ErrBadCredentials = errors.New("invalid email or password")

	// ErrUserExists is returned when registering an email that is taken.
	ErrUserExists = errors.New("user already exists")

	// ErrNoIngredients is returned when a suggestion is requested with an
	// empty ingredient union. The adapter is never called in that case.
	ErrNoIngredients = errors.New("need at least one ingredient")
)
