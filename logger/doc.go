// Package logger provides structured logging for bukku-go using zerolog.
//
// The client packages never log unless a *Logger is handed to them; the CLI
// builds one from its configuration.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg, "bukku").WithComponent("httpclient")
//	log.Debug("request completed", logger.Fields("status", 200))
package logger
