// Package domain defines the core business entities of the taskboard
// service: users, tasks, and the aggregate statistics computed over them.
// Entities are plain data; all mutation goes through the store.
package domain
