// Package stubapi serves the goalline backend's REST contract from
// in-memory fixtures. It backs local development and the client's
// end-to-end tests; nothing is persisted.
//
// Routes live under /api/v1 and follow the production backend: paginated
// listings use the {items, page, page_size, total_items, total_pages}
// envelope and failures use {"error": {"code", "message"}}. Notes require a
// bearer token issued by /auth/register or /auth/login.
package stubapi
