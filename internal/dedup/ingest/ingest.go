// Package ingest turns parsed table rows into engine records. Which columns
// hold the name parts is a caller concern; the engine only ever sees one
// assembled full-name string per record.
package ingest

import (
	"fmt"
	"regexp"
	"strings"

	"namedup-service/internal/dedup/model"
)

// Mapping names the columns of interest. Each key accepts alternatives
// separated by "|" (e.g. "first_name|first|given name"); matching is
// case-insensitive and tolerant of extra punctuation in headers.
type Mapping struct {
	IDKey     string
	FirstKey  string
	MiddleKey string
	LastKey   string
	FullKey   string // when set, wins over the part columns
}

func DefaultMapping() Mapping {
	return Mapping{
		IDKey:     "id|record_id",
		FirstKey:  "first_name|first|given_name",
		MiddleKey: "middle_name|middle",
		LastKey:   "last_name|last|surname|family_name",
		FullKey:   "full_name|name",
	}
}

// ToRecords assembles one record per row. Rows get a stable "row N" ID
// (1-based data row) unless an ID column is mapped and non-empty. Rows whose
// assembled name is blank are kept: the engine reports them as skipped.
func ToRecords(rows []map[string]string, m Mapping) []model.Record {
	recs := make([]model.Record, 0, len(rows))
	for i, row := range rows {
		id := ""
		if k := resolveKey(row, m.IDKey); k != "" {
			id = strings.TrimSpace(row[k])
		}
		if id == "" {
			id = fmt.Sprintf("row %d", i+1)
		}
		recs = append(recs, model.Record{ID: id, Name: assembleName(row, m), Seq: i})
	}
	return recs
}

func assembleName(row map[string]string, m Mapping) string {
	if k := resolveKey(row, m.FullKey); k != "" {
		if v := strings.TrimSpace(row[k]); v != "" {
			return v
		}
	}
	parts := make([]string, 0, 3)
	for _, key := range []string{m.FirstKey, m.MiddleKey, m.LastKey} {
		k := resolveKey(row, key)
		if k == "" {
			continue
		}
		if v := strings.TrimSpace(row[k]); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

var headerJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func normHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = headerJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the actual map key for a wanted column name. Exact match
// first, then normalized match, then substring containment for composite
// headers ("last name (family)" still resolves for "last name").
func resolveKey(row map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for _, a := range alts {
		if _, ok := row[strings.TrimSpace(a)]; ok {
			return strings.TrimSpace(a)
		}
	}

	norms := make([]string, 0, len(alts))
	for _, a := range alts {
		norms = append(norms, normHeader(a))
	}
	bestKey, bestLen := "", 0
	for k := range row {
		nk := normHeader(k)
		for _, n := range norms {
			if n == "" {
				continue
			}
			if nk == n {
				return k
			}
			if strings.Contains(nk, n) {
				// tie-break on key so map order never leaks into the result
				if len(n) > bestLen || (len(n) == bestLen && (bestKey == "" || k < bestKey)) {
					bestKey, bestLen = k, len(n)
				}
			}
		}
	}
	return bestKey
}
