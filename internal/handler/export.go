package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/big-trip/internal/api"
	"github.com/pkordes/big-trip/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"point_id", "type", "destination", "date_from", "date_to",
	"base_price", "offers", "offers_price", "total", "is_favorite",
}

// GetExport handles GET /export.
// It returns the whole itinerary as a flat table in day order.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("invalid format: "+err.Error()))
		return
	}
	if format != "" && format != "json" && format != "csv" {
		writeJSON(w, http.StatusBadRequest, requestBody("format must be json or csv"))
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err, "")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]api.ExportRow, len(rows))
	for i, row := range rows {
		out[i] = api.FromExportRow(row)
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows as CSV. Offer titles within a row are pipe-separated
// ("|") to keep each point on a single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	_ = cw.Write(csvHeaders)
	for _, r := range rows {
		_ = cw.Write(csvRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="itinerary.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.PointID,
		string(r.Type),
		r.Destination,
		r.DateFrom.UTC().Format(time.RFC3339),
		r.DateTo.UTC().Format(time.RFC3339),
		strconv.Itoa(r.BasePrice),
		strings.Join(r.Offers, "|"),
		strconv.Itoa(r.OffersPrice),
		strconv.Itoa(r.Total()),
		strconv.FormatBool(r.IsFavorite),
	}
}
