// Package auth stores platform credentials and verifies them against the API.
//
// Credentials live in <configDir>/auth.json (configDir defaults to ~/.apify)
// and are written by "apify login". Verification makes one authenticated list
// call and reports a tagged Result instead of a bare boolean, so callers can
// tell a rejected token apart from an unreachable service:
//
//	creds, err := auth.Load(fs, s.ConfigDir)
//	if err != nil {
//	    return err
//	}
//
//	res := auth.GetLoggedClient(ctx, creds, apify.WithBaseURL(s.APIBaseURL))
//	switch res.Status {
//	case auth.StatusAuthenticated:
//	    defer res.Client.Close()
//	case auth.StatusUnauthenticated:
//	    // ask the user to log in again
//	case auth.StatusUnavailable:
//	    // retry later; res.Err holds the cause
//	}
//
// Commands that only need "logged in or not" use GetLoggedClientOrError,
// which prints the not-logged-in message itself and returns nil.
package auth
