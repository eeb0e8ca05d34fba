// Package models defines the records exchanged with the goalline backend.
//
// Entities are plain data: they are decoded from the backend's JSON and handed
// to views unchanged. Filters know how to encode themselves as query
// parameters and drop every key whose value is empty.
package models
