// Package api implements the HTTP request handlers for the taskboard
// service. Handlers translate requests into store calls and shape the
// JSON responses; business rules live in the validation package and are
// enforced by the store itself.
package api
