package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"linechart/chart"
	"linechart/config"
	"linechart/events"
	"linechart/middlewares"
	"linechart/models"
	"linechart/snapshot"
	"linechart/store"
	"linechart/utils"
	"linechart/web/handlers"
)

const EXPORT_NAME = "linechart"

func main() {
	flags, exportFlags := config.GetFlags()

	// Logging
	var logOut io.Writer = os.Stderr
	if flags.LogFile != "" {
		rotating := middlewares.RotatingWriter(flags.LogFile)
		defer func() { _ = rotating.Close() }()
		logOut = rotating
	}
	log.SetOutput(logOut)

	dataset, err := loadDataset(flags.DataPath)
	if err != nil {
		log.Fatalf("couldn't load dataset: %v", err)
	}

	opts := chart.DefaultOptions()
	opts.DateLayout = flags.DateLayout

	if exportFlags.Dir != "" {
		if err := export(exportFlags.Dir, chart.New(chart.Props{Data: dataset}, opts)); err != nil {
			log.Fatalf("couldn't export chart: %v", err)
		}
		return
	}

	current := store.NewCurrent(dataset)
	hub := events.NewHub()

	if flags.DataPath != "" {
		go reloadOnHangup(flags.DataPath, current, hub)
	}

	// Initialise UI
	dashboard, err := handlers.NewDashboard(current, opts)
	if err != nil {
		log.Fatalf("couldn't create dashboard: %v", err)
	}

	// Initialise Server
	server := handlers.NewServer(dashboard, hub, log.New(logOut, "http ", log.LstdFlags))
	err = server.Start(flags.Addr)
	if err != nil {
		log.Fatalf("couldn't start server: %v", err)
	}
}

func loadDataset(path string) (*models.Dataset, error) {
	if path == "" {
		log.Printf("no dataset file given, serving the sample dataset")
		return store.SampleDataset(), nil
	}
	return config.LoadDataset(path)
}

// reloadOnHangup re-reads the dataset file on every SIGHUP.
func reloadOnHangup(path string, current *store.Current, hub *events.Hub) {
	hangups := make(chan os.Signal, 1)
	signal.Notify(hangups, syscall.SIGHUP)
	for range hangups {
		if _, err := reload(path, current, hub); err != nil {
			log.Printf("couldn't reload dataset, keeping the current one: %s", err)
		}
	}
}

// reload publishes the dataset file as the new current dataset and returns its version. A broken file leaves the
// current dataset alone and publishes nothing.
func reload(path string, current *store.Current, hub *events.Hub) (int, error) {
	dataset, err := config.LoadDataset(path)
	if err != nil {
		return current.Version(), err
	}
	version := current.Set(dataset)
	log.Printf("reloaded dataset %s, version %d", path, version)
	hub.Broadcast(&events.Event{Version: version, Source: path})
	return version, nil
}

// export writes the chart to dir as svg and png. Data too degenerate for a png still gets its svg.
func export(dir string, lc *chart.LineChart) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	svgPath := utils.NextAvailableFilename(dir, EXPORT_NAME, ".svg")
	if err := writeFile(svgPath, func(w io.Writer) error { return lc.WriteSVG(w, chart.State{}) }); err != nil {
		return err
	}
	log.Printf("wrote %s", svgPath)

	pngPath := utils.NextAvailableFilename(dir, EXPORT_NAME, ".png")
	err := writeFile(pngPath, func(w io.Writer) error { return snapshot.PNG(w, lc) })
	if errors.Is(err, snapshot.ErrNotEnoughData) {
		log.Printf("skipping png: %s", err)
		_ = os.Remove(pngPath)
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("wrote %s", pngPath)
	return nil
}

func writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
