package handler

import (
	"net/http"
	"strconv"

	"namedup-service/internal/dedup/ingest"
)

// mappingFromForm overlays caller-supplied column names on the defaults.
// Every field accepts "|" alternatives, e.g. first=first_name|given.
func mappingFromForm(r *http.Request) ingest.Mapping {
	m := ingest.DefaultMapping()
	if v := r.FormValue("id_column"); v != "" {
		m.IDKey = v
	}
	if v := r.FormValue("first_column"); v != "" {
		m.FirstKey = v
	}
	if v := r.FormValue("middle_column"); v != "" {
		m.MiddleKey = v
	}
	if v := r.FormValue("last_column"); v != "" {
		m.LastKey = v
	}
	if v := r.FormValue("full_column"); v != "" {
		m.FullKey = v
	}
	return m
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
