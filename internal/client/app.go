// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-rm-cloud/internal/logger"
	"github.com/MKhiriev/go-rm-cloud/internal/service"
	"github.com/MKhiriev/go-rm-cloud/models"
)

// ErrUsage is returned when the command line cannot be understood.
var ErrUsage = errors.New("usage error")

const usage = `usage: rmcloud [global flags] <command> [arguments]

commands:
  register [code]             pair this computer with a reMarkable account
  logout                      forget the stored session
  ls [-r] [path...]           list a folder ("/" is the root)
  info path...                describe documents
  pull [-o dir] path...       download documents as <name>.zip
  push archive.zip dest/path  upload a notebook archive
  mkdir path                  create a folder
  browse                      browse the cloud interactively
  version                     print build information

global flags come before the command, see rmcloud -h.
`

var _ Client = (*App)(nil)

type App struct {
	auth    service.ClientAuthService
	docs    service.ClientDocumentService
	browser Browser
	info    models.AppBuildInfo

	in  io.Reader
	out io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, browser Browser, info models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are nil")
	}

	return &App{
		auth:    services.AuthService,
		docs:    services.DocumentService,
		browser: browser,
		info:    info,
		in:      os.Stdin,
		out:     os.Stdout,
		logger:  logger,
	}, nil
}

// Run implements [Client]. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrUsage
	}

	command, rest := args[0], args[1:]
	cmdLogger := a.logger.GetChildLogger()
	cmdLogger.Logger = cmdLogger.With().Str("command", command).Logger()
	ctx = cmdLogger.WithContext(ctx)

	cmdLogger.Debug().
		Str("func", "App.Run").
		Strs("args", rest).
		Msg("running command")

	switch command {
	case "register":
		return a.register(ctx, rest)
	case "logout":
		return a.auth.Logout(ctx)
	case "version":
		a.printBuildInfo()
		return nil
	case "help", "-h", "--help":
		a.printUsage()
		return nil
	}

	run, ok := map[string]func(context.Context, []string) error{
		"ls":     a.ls,
		"info":   a.describe,
		"pull":   a.pull,
		"push":   a.push,
		"mkdir":  a.mkdir,
		"browse": a.browse,
	}[command]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}

	if err := a.auth.Authenticate(ctx); err != nil {
		if errors.Is(err, service.ErrNotRegistered) {
			return fmt.Errorf("%w; run \"rmcloud register\" first", err)
		}
		return fmt.Errorf("authenticate: %w", err)
	}
	return run(ctx, rest)
}

func (a *App) printUsage() {
	fmt.Fprint(a.out, usage)
}

func (a *App) printBuildInfo() {
	fmt.Fprintf(a.out, "Build version: %s\n", valueOrNA(a.info.BuildVersion()))
	fmt.Fprintf(a.out, "Build date: %s\n", valueOrNA(a.info.BuildDate()))
	fmt.Fprintf(a.out, "Build commit: %s\n", valueOrNA(a.info.BuildCommit()))
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
