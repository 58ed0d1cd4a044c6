package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"namedup-service/internal/config"
	"namedup-service/internal/dedup/ingest"
	"namedup-service/internal/dedup/model"
	"namedup-service/internal/dedup/service"
	"namedup-service/internal/fileio"
	"namedup-service/internal/report"
)

// Detect handles POST /dedupe: one uploaded table in, duplicate groups out.
// Column mapping and threshold come from form fields; the format field picks
// json (default), text, csv or xlsx output.
func Detect(cfg config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := logger
		if rid := r.Header.Get("X-Request-ID"); rid != "" {
			log = logger.With().Str("rid", rid).Logger()
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		rows, err := fileio.ReadTable(file, header.Filename, atoi(r.FormValue("header_row"), 1))
		if err != nil {
			http.Error(w, "failed to read table: "+err.Error(), http.StatusBadRequest)
			return
		}

		mapping := mappingFromForm(r)
		records := ingest.ToRecords(rows, mapping)

		opt := model.Options{Threshold: atoi(r.FormValue("threshold"), cfg.DefaultThreshold)}
		res, err := service.FindDuplicates(records, opt)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, service.ErrThreshold) || errors.Is(err, service.ErrDuplicateID) {
				status = http.StatusBadRequest
			}
			http.Error(w, err.Error(), status)
			return
		}

		names := report.NameIndex(records)
		switch r.FormValue("format") {
		case "", "json":
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Cache-Control", "no-store")
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				log.Error().Err(err).Msg("write json")
				return
			}
		case "text":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte(report.Text(res, names)))
		case "csv":
			w.Header().Set("Content-Type", "text/csv; charset=utf-8")
			w.Header().Set("Content-Disposition", `attachment; filename="duplicates.csv"`)
			if err := report.WriteCSV(w, res, names); err != nil {
				log.Error().Err(err).Msg("write csv")
				return
			}
		case "xlsx":
			w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			w.Header().Set("Content-Disposition", `attachment; filename="duplicates.xlsx"`)
			if err := report.WriteXLSX(w, res, names); err != nil {
				log.Error().Err(err).Msg("write xlsx")
				return
			}
		default:
			http.Error(w, "unknown format: "+r.FormValue("format"), http.StatusBadRequest)
			return
		}

		log.Info().
			Int("rows", len(records)).
			Int("groups", len(res.Groups)).
			Int("pairs", len(res.Pairs)).
			Int("skipped", len(res.Skipped)).
			Int("threshold", opt.Threshold).
			Dur("elapsed", time.Since(start)).
			Msg("dedupe done")
	}
}
