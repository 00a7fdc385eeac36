package domain

import (
	"encoding/json"
	"time"
)

// AccountInput is the raw, untrusted registration or login payload as the
// caller supplied it. Fields may be absent or carry the wrong JSON type;
// decoding coerces anything that is not a string to "".
type AccountInput struct {
	Username string
	Email    string
	Password string
}

// UnmarshalJSON is deliberately lossy: a missing field, a number, a bool or
// an object all decode to the empty string so the pipeline downstream only
// ever sees strings.
func (in *AccountInput) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	in.Username = coerceString(raw["username"])
	in.Email = coerceString(raw["email"])
	in.Password = coerceString(raw["password"])
	return nil
}

func coerceString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// NormalizedInput is the canonical form of an AccountInput: username and
// email lowercased with all whitespace removed, password stripped of markup.
// All three fields are always plain strings.
type NormalizedInput struct {
	Username string
	Email    string
	Password string
}

// Account is a persisted account record. Username and Email are unique
// across all records; PasswordHash is a bcrypt encoding and the plaintext is
// never stored. Records are immutable once created.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
