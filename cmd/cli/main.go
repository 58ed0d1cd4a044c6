// One-shot batch mode: read a table of person records, print the duplicate
// group report. Mirrors what POST /dedupe does, without the server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"namedup-service/internal/config"
	"namedup-service/internal/dedup/ingest"
	"namedup-service/internal/dedup/model"
	"namedup-service/internal/dedup/service"
	"namedup-service/internal/fileio"
	"namedup-service/internal/report"
)

func main() {
	cfg := config.Load()

	input := flag.String("input", "", "input CSV/XLSX/XLS file with name columns")
	threshold := flag.Int("threshold", cfg.DefaultThreshold, "similarity threshold, 0..100")
	headerRow := flag.Int("header-row", 1, "1-based header row")
	idCol := flag.String("id-column", "", "record id column (default: row number)")
	firstCol := flag.String("first-column", "", "first name column")
	middleCol := flag.String("middle-column", "", "middle name column")
	lastCol := flag.String("last-column", "", "last name column")
	fullCol := flag.String("full-column", "", "full name column (overrides part columns)")
	format := flag.String("format", "text", "output format: text or csv")
	output := flag.String("output", "", "output file (default: stdout)")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *input == "" {
		logger.Fatal().Msg("--input is required")
	}

	f, err := os.Open(*input)
	if err != nil {
		logger.Fatal().Err(err).Msg("open input")
	}
	defer f.Close()

	rows, err := fileio.ReadTable(f, *input, *headerRow)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *input).Msg("read input")
	}
	logger.Info().Int("rows", len(rows)).Str("file", *input).Msg("input loaded")

	mapping := ingest.DefaultMapping()
	if *idCol != "" {
		mapping.IDKey = *idCol
	}
	if *firstCol != "" {
		mapping.FirstKey = *firstCol
	}
	if *middleCol != "" {
		mapping.MiddleKey = *middleCol
	}
	if *lastCol != "" {
		mapping.LastKey = *lastCol
	}
	if *fullCol != "" {
		mapping.FullKey = *fullCol
	}

	records := ingest.ToRecords(rows, mapping)
	res, err := service.FindDuplicates(records, model.Options{Threshold: *threshold})
	if err != nil {
		logger.Fatal().Err(err).Msg("dedupe")
	}

	if len(res.Groups) > 0 {
		logger.Info().Int("groups", len(res.Groups)).Msg("duplicate/misspelled name groups found")
	} else {
		logger.Info().Msg("no duplicate or misspelled names detected")
	}

	out := os.Stdout
	if *output != "" {
		out, err = os.Create(*output)
		if err != nil {
			logger.Fatal().Err(err).Msg("create output")
		}
		defer out.Close()
	}

	names := report.NameIndex(records)
	switch *format {
	case "text":
		fmt.Fprint(out, report.Text(res, names))
	case "csv":
		if err := report.WriteCSV(out, res, names); err != nil {
			logger.Fatal().Err(err).Msg("write csv")
		}
	default:
		logger.Fatal().Str("format", *format).Msg("unknown format")
	}
}
