package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/barkeep/internal/accounts/domain"
)

// decodeAccountInput reads credentials from either a JSON body or an
// URL-encoded form. JSON fields with the wrong type coerce to empty strings
// rather than failing the request; the validator reports them properly.
func decodeAccountInput(r *http.Request) (domain.AccountInput, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var in domain.AccountInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return domain.AccountInput{}, err
		}
		return in, nil
	}

	if err := r.ParseForm(); err != nil {
		return domain.AccountInput{}, err
	}
	return domain.AccountInput{
		Username: r.FormValue("username"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}, nil
}
