// Package errors defines the structured error type used for configuration and
// local guard failures in bukku-go.
//
// Runtime failures of an API call are reported as *httpclient.APIError; that
// type converts to an AppError through APIError.ToAppError when callers want a
// single taxonomy.
package errors
