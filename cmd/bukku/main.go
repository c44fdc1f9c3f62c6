// Command bukku calls the Bukku accounting API from the shell and serves a
// local fake of it.
//
//	bukku [flags] <group> <resource> <op> [id]
//	bukku sales invoices list -q status=draft -q page_size=5
//	bukku contacts contacts create -d @contact.json
//	bukku sales invoices status 42 --status void
//	bukku lists countries tax_codes
//	bukku files upload receipt.pdf
//	bukku mock-server -p 8080
//	bukku version
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/kbukum/bukku-go/bootstrap"
	"github.com/kbukum/bukku-go/errors"
	"github.com/kbukum/bukku-go/httpclient"
	"github.com/kbukum/bukku-go/observability"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, opts := newFlagSet()
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr, fs) }

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	rest := fs.Args()
	if len(rest) == 0 {
		usage(stderr, fs)
		return exitUsage
	}
	if rest[0] == "version" {
		if err := printVersion(stdout, opts.compact); err != nil {
			printError(stderr, err)
			return exitError
		}
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		printError(stderr, err)
		return exitUsage
	}
	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		printError(stderr, err)
		return exitUsage
	}

	if rest[0] == "mock-server" {
		err = runMockServer(ctx, app)
	} else {
		err = runTask(ctx, app, opts, rest, stdin, stdout)
	}
	if err != nil {
		printError(stderr, err)
		return exitCode(err)
	}
	return exitOK
}

func runTask(ctx context.Context, app *bootstrap.App[*Config], opts *options, args []string, stdin io.Reader, stdout io.Writer) error {
	shutdown, err := observability.Setup(ctx, app.Cfg.Telemetry)
	if err != nil {
		return err
	}
	app.OnStop(shutdown)

	client, err := newClient(app)
	if err != nil {
		return err
	}

	return app.RunTask(ctx, func(ctx context.Context) error {
		switch args[0] {
		case "lists":
			return runLists(ctx, client, opts, args[1:], stdout)
		case "files":
			return runFiles(ctx, client, opts, args[1:], stdout)
		default:
			return runResource(ctx, client.HTTP(), opts, args, stdin, stdout)
		}
	})
}

func exitCode(err error) int {
	if _, ok := httpclient.AsAPIError(err); ok {
		return exitError
	}
	for _, code := range []errors.ErrorCode{errors.ErrCodeInvalidInput, errors.ErrCodeMissingField, errors.ErrCodeInvalidFormat} {
		if errors.HasCode(err, code) {
			return exitUsage
		}
	}
	return exitError
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprint(w, `Usage:
  bukku [flags] <group> <resource> <op> [id]
  bukku [flags] lists <type>...
  bukku [flags] files upload <path> | files list | files get <id>
  bukku [flags] mock-server
  bukku version

Groups and resources:
`)
	for _, group := range sortedKeys(routes) {
		fmt.Fprintf(w, "  %-14s", group)
		for i, name := range sortedKeys(routes[group]) {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, name)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprint(w, "\nFlags:\n")
	fmt.Fprint(w, fs.FlagUsages())
}
