// Package catalog is the client for the remote candidate catalog.
//
// The catalog answers two questions, each with a single blocking GET:
//
//	GET {base}/candidates/default/{candidate}                    -> version
//	GET {base}/candidates/validate/{candidate}/{version}/{platform} -> "valid" | other
//
// Bodies are returned trimmed. The validation answer is parsed once into a
// Validity so callers never compare raw strings. Requests are not retried;
// any transport, TLS or non-2xx failure is a CATALOG_UNAVAILABLE error.
package catalog
