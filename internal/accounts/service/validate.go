package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
	"github.com/aussiebroadwan/barkeep/internal/accounts/store"

	"github.com/go-playground/validator/v10"
)

// Registration field limits.
const (
	minUsernameLen = 3
	maxUsernameLen = 30
	minPasswordLen = 8
	maxPasswordLen = 50
)

// ValidationErrors is the ordered list of human-readable registration
// problems. It is data, not a system fault: a non-empty list means the
// registration is rejected and every message is shown to the user at once.
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return strings.Join(e, "; ")
}

// checks wraps the go-playground validator for single-field checks.
var checks = validator.New()

func isAlphanumeric(s string) bool {
	return checks.Var(s, "required,alphanum") == nil
}

func isEmail(s string) bool {
	return checks.Var(s, "required,email") == nil
}

// Validate applies every registration rule to an already-normalized input
// and collects all violations in declaration order; it never stops at the
// first failure. Uniqueness lookups only run when the field's format is
// valid, so malformed inputs cost no lookups and leak no existence
// information. A lookup transport failure aborts the whole operation with a
// non-nil error.
func Validate(ctx context.Context, in domain.NormalizedInput, accounts store.Accounts) (ValidationErrors, error) {
	var errs ValidationErrors

	usernameLen := utf8.RuneCountInString(in.Username)
	passwordLen := utf8.RuneCountInString(in.Password)
	usernameOK := usernameLen >= minUsernameLen && usernameLen <= maxUsernameLen && isAlphanumeric(in.Username)
	emailOK := isEmail(in.Email)

	if in.Username == "" {
		errs = append(errs, "You must provide a username.")
	}
	if in.Username != "" && !isAlphanumeric(in.Username) {
		errs = append(errs, "Username can only contain letters and numbers.")
	}
	if !emailOK {
		errs = append(errs, "You must provide a valid email address.")
	}
	if in.Password == "" {
		errs = append(errs, "You must provide a password.")
	}
	if passwordLen > 0 && passwordLen < minPasswordLen {
		errs = append(errs, "Password must be at least 8 characters.")
	}
	if passwordLen > maxPasswordLen {
		errs = append(errs, "Password cannot exceed 50 characters.")
	}
	if usernameLen > 0 && usernameLen < minUsernameLen {
		errs = append(errs, "Username must be at least 3 characters.")
	}
	if usernameLen > maxUsernameLen {
		errs = append(errs, "Username cannot exceed 30 characters.")
	}

	// Only a well-formed username is worth a lookup.
	if usernameOK {
		_, err := accounts.GetByUsername(ctx, in.Username)
		switch {
		case err == nil:
			errs = append(errs, "That username is already taken.")
		case !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("username uniqueness check failed: %w", err)
		}
	}

	// Likewise for the email.
	if emailOK {
		_, err := accounts.GetByEmail(ctx, in.Email)
		switch {
		case err == nil:
			errs = append(errs, "That email is already being used.")
		case !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("email uniqueness check failed: %w", err)
		}
	}

	return errs, nil
}
