// Package server hosts HTTP handlers on a gin engine with HTTP/2 cleartext
// support. The bukku command uses it to serve the fake API:
//
//	srv := server.New(cfg, log)
//	srv.ApplyMiddleware()
//	srv.RegisterDefaultEndpoints("bukku")
//	fake.Register(srv.Engine())
//	if err := srv.Start(ctx); err != nil {
//		return err
//	}
//	defer srv.Stop(context.Background())
//
// # Middleware
//
// server/middleware provides recovery, request ids, body size limits and
// request logging.
package server
