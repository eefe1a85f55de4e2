// Copyright (c) 2026 Jihoon Park.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth handles the two credential kinds the API accepts.

Admin tokens are HMAC-derived from a configured salt, deterministic and
verified in constant time; POST /auth/admin/login exchanges the admin
password for one.

Voter tokens are HS256 JWTs carrying the identity-provider claims
(subject, email, name). The server only validates them; issuing is the
job of the surrounding auth layer (or tests).
*/
package auth
