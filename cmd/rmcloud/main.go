package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-rm-cloud/internal/adapter"
	"github.com/MKhiriev/go-rm-cloud/internal/client"
	"github.com/MKhiriev/go-rm-cloud/internal/config"
	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/service"
	"github.com/MKhiriev/go-rm-cloud/internal/store"
	"github.com/MKhiriev/go-rm-cloud/internal/tui"
	"github.com/MKhiriev/go-rm-cloud/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const globalFlags = `global flags:
  -c, -config path        JSON or YAML config file
  -d dsn                  local state database
  -storage-host url       document storage endpoint, skips discovery
  -register-url url       device pairing endpoint
  -token-url url          user token endpoint
  -discovery-url url      service discovery endpoint
  -request-timeout dur    request timeout, e.g. 30s
  -user-agent string      user agent sent with every request
  -device-desc string     device class reported during pairing
  -log-file path          log file
  -log-level level        log level, e.g. debug

run "rmcloud help" for the list of commands.
`

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Print(globalFlags)
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rmcloud: configuration: %v\n", err)
		return 2
	}

	log := logger.NewClientLogger("rmcloud", cfg.Log.File, cfg.Log.Level)

	cloudAdapter, err := adapter.NewHTTPCloudAdapter(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create cloud adapter")
		fmt.Fprintf(os.Stderr, "rmcloud: %v\n", err)
		return 1
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Error().Err(err).Msg("create local storage")
		fmt.Fprintf(os.Stderr, "rmcloud: %v\n", err)
		return 1
	}
	defer func() {
		if err := localStorage.Close(); err != nil {
			log.Error().Err(err).Msg("close local storage")
		}
	}()

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services := service.NewClientServices(localStorage, cloudAdapter, cfg.App, log)

	ui, err := tui.New(services.DocumentService, info, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating ui")
		fmt.Fprintf(os.Stderr, "rmcloud: %v\n", err)
		return 1
	}

	app, err := client.NewApp(services, ui, info, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "rmcloud: %v\n", err)
		return 1
	}

	if err = app.Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrUsage) {
			fmt.Fprintf(os.Stderr, "rmcloud: %v\n", err)
			return 2
		}
		log.Error().Err(err).Strs("args", args).Msg("command failed")
		fmt.Fprintf(os.Stderr, "rmcloud: %v\n", err)
		return 1
	}
	return 0
}
