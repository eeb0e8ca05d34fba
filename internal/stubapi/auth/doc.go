// Package auth issues and verifies the stub backend's access tokens. Tokens
// are HS256 JWTs carrying the account id as subject, its role and an expiry.
package auth
