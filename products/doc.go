// Package products manages the product catalogue (/products) and product
// groups (/products/groups).
package products
