// Package common contains shared constants and helpers used across
// the storefront client components.
package common

import "strings"

// AdminUserName is the reserved account name of the store administrator.
// The literal is case-sensitive where the server checks it (registration,
// login-status derivation); everywhere else comparisons are case-insensitive
// through IsAdmin.
const AdminUserName = "Admin"

// SessionTokenKey is the fixed key under which the signed-in username is
// persisted in local client storage.
const SessionTokenKey = "user"

// IsAdmin reports whether userName refers to the administrator account.
// All role checks in the client go through this predicate rather than
// comparing against the literal directly.
func IsAdmin(userName string) bool {
	return strings.EqualFold(userName, AdminUserName)
}
