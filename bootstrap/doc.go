// Package bootstrap runs the lifecycle of the bukku command.
//
// An App applies defaults to a typed config, validates it, builds the logger
// and then runs either a finite task (RunTask) or blocks until a shutdown
// signal (Run). Start hooks run before the task, stop hooks after it.
//
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    return err
//	}
//	app.OnStop(shutdownTelemetry)
//	return app.RunTask(ctx, func(ctx context.Context) error {
//	    return listInvoices(ctx)
//	})
package bootstrap
