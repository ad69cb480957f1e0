// Package ics converts EWS recurrence rules to their iCalendar counterparts:
// RRULE recurrence options and VEVENT components. It translates formats only
// and never expands a rule into occurrence dates.
package ics

import (
	"io"
	"log/slog"
)

// Options configures a Converter.
type Options struct {
	// Logger receives debug output during conversion. Defaults to a discard
	// handler.
	Logger *slog.Logger
	// ProdID is the PRODID written into generated calendars.
	ProdID string
}

const defaultProdID = "-//github.com/avld/libewscal//NONSGML v1.0//EN"

// Converter maps recurrence rules to iCalendar form.
type Converter struct {
	logger *slog.Logger
	prodID string
}

// New creates a Converter with the given options.
func New(opts Options) *Converter {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.ProdID == "" {
		opts.ProdID = defaultProdID
	}
	return &Converter{
		logger: opts.Logger,
		prodID: opts.ProdID,
	}
}
