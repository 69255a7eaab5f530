// Package migrations holds the goose SQL migrations for the itinerary schema
// and the starter destination/offer catalog.
package migrations

import "embed"

// FS is handed to goose.NewProvider by cmd/api (MIGRATE=1) and by the
// integration tests.
//
//go:embed *.sql
var FS embed.FS
