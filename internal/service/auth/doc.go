// Package auth provides the authentication primitives of the API:
// JWT issuance and validation, and bcrypt password hashing/verification.
package auth
