package address

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"namedup-service/internal/config"
)

type validateBody struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// ValidateHandler exposes the USPS client as POST /address/validate.
func ValidateHandler(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	client := NewClient(cfg.USPSBaseURL, cfg.USPSUserID)

	return func(w http.ResponseWriter, r *http.Request) {
		var body validateBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(body.Street) == "" {
			http.Error(w, "street is required", http.StatusBadRequest)
			return
		}

		corrected, err := client.Validate(r.Context(), Address{
			Address2: body.Street,
			City:     body.City,
			State:    body.State,
			Zip5:     body.Zip,
		})
		if err != nil {
			var apiErr *APIError
			switch {
			case errors.Is(err, ErrNoUserID):
				http.Error(w, err.Error(), http.StatusServiceUnavailable)
			case errors.As(err, &apiErr):
				logger.Warn().Str("number", apiErr.Number).Str("desc", apiErr.Description).Msg("usps rejected address")
				http.Error(w, apiErr.Description, http.StatusUnprocessableEntity)
			default:
				logger.Error().Err(err).Msg("usps lookup failed")
				http.Error(w, "address validation failed", http.StatusBadGateway)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(corrected)
	}
}
