// Package resource maps Bukku REST collections onto typed Go methods.
//
// A Collection is determined by its path and the envelope key its single
// objects are wrapped in. Documents specializes it for sales and purchase
// transactions, which all share the "transaction" key and the same six
// operations.
package resource
