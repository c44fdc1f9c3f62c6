package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kbukum/bukku-go"
	"github.com/kbukum/bukku-go/bootstrap"
	"github.com/kbukum/bukku-go/bukkutest"
	"github.com/kbukum/bukku-go/files"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/lists"
	"github.com/kbukum/bukku-go/logger"
	"github.com/kbukum/bukku-go/observability"
	"github.com/kbukum/bukku-go/server"
	"github.com/kbukum/bukku-go/util"
	"github.com/kbukum/bukku-go/validation"
	"github.com/kbukum/bukku-go/version"
)

func newClient(app *bootstrap.App[*Config]) (*bukku.Client, error) {
	opts := []httpclient.Option{httpclient.WithLogger(app.Logger)}
	if app.Cfg.Telemetry.Enabled {
		metrics, err := observability.NewClientMetrics(observability.Meter(observability.InstrumentationName))
		if err != nil {
			return nil, err
		}
		opts = append(opts, httpclient.WithMetrics(metrics))
	}

	app.Logger.Debug("creating client", logger.Fields("settings", app.Cfg.Bukku.String()))
	return bukku.New(app.Cfg.Bukku, opts...)
}

func runLists(ctx context.Context, client *bukku.Client, opts *options, names []string, stdout io.Writer) error {
	types, err := lists.ParseTypes(names...)
	if err != nil {
		return err
	}
	resp, err := client.Lists.Get(ctx, &lists.Request{Lists: types})
	if err != nil {
		return err
	}
	return writeJSON(stdout, resp, opts.compact)
}

func runFiles(ctx context.Context, client *bukku.Client, opts *options, args []string, stdout io.Writer) error {
	op := argAt(args, 0)
	if err := validation.New().Required("operation", op).OneOf("operation", op, []string{"upload", "list", "get"}).Validate(); err != nil {
		return err
	}

	switch op {
	case "upload":
		path := argAt(args, 1)
		if err := validation.New().Required("path", path).Validate(); err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		resp, err := client.Files.Upload(ctx, content, filepath.Base(path))
		if err != nil {
			return err
		}
		return writeJSON(stdout, resp, opts.compact)

	case "get":
		id, err := strconv.Atoi(argAt(args, 1))
		if err != nil || id <= 0 {
			return invalid("id", "must be a positive integer")
		}
		file, err := client.Files.Get(ctx, id)
		if err != nil {
			return err
		}
		return writeJSON(stdout, file, opts.compact)
	}

	q, err := parseQuery(opts.query)
	if err != nil {
		return err
	}
	params := &files.ListParams{Extra: make(httpclient.Params, len(q))}
	for _, p := range q {
		params.Extra[p.Key] = p.Value
	}
	list, err := client.Files.List(ctx, params)
	if err != nil {
		return err
	}
	return writeJSON(stdout, list, opts.compact)
}

// runMockServer serves the fake API until interrupted. Configured
// credentials, when present, are the ones the fake accepts.
func runMockServer(ctx context.Context, app *bootstrap.App[*Config]) error {
	token := app.Cfg.Bukku.AccessToken
	if token == "" {
		token = bukkutest.DefaultToken
	}
	subdomain := app.Cfg.Bukku.CompanySubdomain
	if subdomain == "" {
		subdomain = bukkutest.DefaultSubdomain
	}

	srv := server.New(app.Cfg.Server, app.Logger)
	srv.ApplyMiddleware()
	srv.RegisterDefaultEndpoints(app.Name)
	bukkutest.New(bukkutest.WithCredentials(token, subdomain)).Register(srv.Engine())

	app.OnStart(func(ctx context.Context) error {
		if err := srv.Start(ctx); err != nil {
			return err
		}
		app.Logger.Info("mock server ready", logger.Fields(
			"url", srv.URL(),
			"token", util.MaskSecret(token),
			logger.FieldSubdomain, subdomain,
		))
		return nil
	})
	app.OnStop(srv.Stop)
	return app.Run(ctx)
}

func printVersion(w io.Writer, compact bool) error {
	if compact {
		_, err := fmt.Fprintln(w, version.UserAgent())
		return err
	}
	return writeJSON(w, version.Get(), false)
}
