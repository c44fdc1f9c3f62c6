// Package version carries the library build version.
//
// Version and commit are set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/bukku-go/version.Version=1.2.0" ./cmd/bukku
package version
