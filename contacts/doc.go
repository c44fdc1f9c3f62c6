// Package contacts manages customers, suppliers and employees (/contacts)
// and their groups (/contacts/groups).
package contacts
