// Package main is the terminal client for the Big Trip API. It loads the
// itinerary through the stores, lets the presenters lay it out and prints the
// resulting page once.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload" // load .env before config is read

	"github.com/pkordes/big-trip/internal/config"
	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/model"
	"github.com/pkordes/big-trip/internal/presenter"
	"github.com/pkordes/big-trip/internal/remote"
	"github.com/pkordes/big-trip/internal/render"
)

func main() {
	filter := flag.String("filter", string(domain.FilterEverything), "filter: everything, future, present, past")
	sort := flag.String("sort", string(domain.DefaultSort), "sort: day, time, price")
	flag.Parse()

	if err := run(context.Background(), domain.FilterType(*filter), domain.SortType(*sort)); err != nil {
		fmt.Fprintln(os.Stderr, "trip:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, filter domain.FilterType, sort domain.SortType) error {
	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelWarn
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	client, err := remote.New(cfg.APIURL, remote.Options{
		Authorization: cfg.Authorization,
		Timeout:       cfg.Timeout,
		Log:           logger,
	})
	if err != nil {
		return err
	}

	// --- Stores -----------------------------------------------------------
	points := model.NewPointsModel(client.Points(), logger)
	destinations := model.NewDestinationsModel(client.Destinations(), logger)
	offers := model.NewOffersModel(client.Offers(), logger)
	filters := model.NewFilterModel()

	// --- Presenters -------------------------------------------------------
	page := render.NewText(os.Stdout)
	trip := presenter.NewTripPresenter(presenter.TripPresenterParams{
		Points:       points,
		Destinations: destinations,
		Offers:       offers,
		Filter:       filters,
		Surface:      page,
		Log:          logger,
	})
	defer trip.Close()
	defer presenter.NewFilterPresenter(points, filters, page, nil, logger).Close()
	defer presenter.NewSummaryPresenter(points, destinations, offers, page).Close()

	// Catalogs first so the list never renders a point it cannot resolve.
	for _, load := range []func(context.Context) error{offers.Init, destinations.Init, points.Init} {
		if err := load(ctx); err != nil {
			logger.WarnContext(ctx, "initial load incomplete", "error", err)
		}
	}

	if err := applyView(trip, filters, filter, sort); err != nil {
		return err
	}

	fmt.Print(page.String())
	return nil
}

// applyView switches to the requested filter and sort. A filter with no
// matching points is still applied so the page shows its empty message.
func applyView(trip *presenter.TripPresenter, filters *model.FilterModel, filter domain.FilterType, sort domain.SortType) error {
	if !filter.Valid() {
		return fmt.Errorf("filter %q: %w", filter, domain.ErrValidation)
	}
	if filter != filters.Filter() {
		filters.SetFilter(domain.UpdateMajor, filter)
	}
	if err := trip.SetSort(sort); err != nil {
		return fmt.Errorf("sort %q: %w", sort, err)
	}
	return nil
}
