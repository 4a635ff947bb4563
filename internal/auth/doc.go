// Package auth implements credential-based authentication for Postboard:
// account signup, login with bearer-token issuance, and token verification
// for protected routes.
//
// Tokens are stateless HS256-signed JWTs. Expiry is the only invalidation
// mechanism; there is no server-side session table or revocation list.
//
// # Usage
//
// Initialize in the entrypoint:
//
//	svc, err := auth.NewService(accountStore, cfg.Auth)
//	controller := auth.NewController(svc, auditor)
//	middleware := auth.NewMiddleware(svc, auditor)
//	controller.RegisterRoutes(router, middleware)
//
// Extract the authenticated caller in handlers:
//
//	accountID := auth.GetAccountID(c)
package auth
