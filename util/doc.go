// Package util holds small helpers shared by the client packages: pointer
// constructors for optional request fields and secret masking for logs.
package util
