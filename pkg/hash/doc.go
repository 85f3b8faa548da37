// Package hash provides short, stable fingerprints of secrets.
//
// Tokens are never written to logs or terminal output. Where a token has to
// be identified (debug logs, "apify info") its fingerprint is shown instead:
// the first 8 hex characters of SHA1(token).
//
// Example usage:
//
//	fp := hash.Fingerprint(creds.Token)
//	// Returns: "a94a8fe5"
package hash
