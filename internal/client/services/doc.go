// Package services contains the application services of the storefront
// client: the user gateway with its uniform failure policy, the
// cart/enrollment reconciler, the lesson access policy, admin moderation,
// and the course catalog.
//
// Failure policy (shared by all gateway-backed services): transport and
// server errors are logged and degrade to an empty or nil result so they
// never crash the caller; an authorization/not-found failure that arrives
// while the session believes it is signed in additionally forces a logout,
// because the persisted token evidently no longer resolves server-side.
package services
