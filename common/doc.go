// Package common holds the shapes shared by several Bukku resources: paging,
// line items, deposit and link items, file attachments, e-mail options and
// the enumerations used across sales and purchases.
package common
