// Package client is the API-access layer of the goalline client.
//
// # Overview
//
// Client is the contract the views depend on; HTTPClient implements it on
// top of the shared rest transport. Every method maps to exactly one HTTP
// request against the configured base URL: there is no retry, caching or
// batching here.
//
// # Authentication
//
// Notes endpoints require a bearer token. HTTPClient asks its TokenSource
// for the current token on every call, so a login or logout is picked up
// immediately. *services.Session satisfies TokenSource.
//
// # Error Handling
//
// Failures are matched with errors.Is against the sentinels in package
// common: ErrNotFound, ErrUnauthorized, ErrValidation, ErrUnavailable.
// Backend messages reach the caller verbatim through *common.APIError.
// Input the backend would reject anyway (blank note text, missing ids) fails
// with common.ErrValidation before any request is made.
package client
