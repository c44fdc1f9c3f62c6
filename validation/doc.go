// Package validation checks configuration structs and CLI input.
//
// Struct tag validation is backed by go-playground/validator and reports field
// names by their json tag:
//
//	type Settings struct {
//	    AccessToken string `json:"access_token" validate:"required"`
//	}
//	err := validation.Validate(s)
//
// The fluent Validator collects programmatic checks:
//
//	err := validation.New().Required("group", group).OneOf("op", op, ops).Validate()
package validation
