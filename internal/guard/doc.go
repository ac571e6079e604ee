// Package guard decides whether a navigation may proceed.
//
// A Guard checks route metadata against the current session: routes that need
// authentication send anonymous visitors to the login page, and admin routes
// send everyone else to the book list. Page navigations wait for a configurable
// delay first, with a LoadingIndicator bracketing the wait.
//
// The package also carries the HTTP hardening middleware used by the local
// server: CSRF protection, security headers and a login attempt limiter.
package guard
