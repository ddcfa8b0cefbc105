// Package cli implements the interactive storefront client: a REPL over
// the course catalog, the shopping cart, account management, and the admin
// moderation surface. It is a thin driver; all state and policy live in the
// session store and the services layer.
package cli
