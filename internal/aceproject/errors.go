package aceproject

import "fmt"

// AuthError means login did not yield a session token, whether through bad
// credentials, a network failure, or a service error. It is fatal to the run.
type AuthError struct {
	Account string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed for account %q: %v", e.Account, e.Err)
	}
	return fmt.Sprintf("authentication failed for account %q: response contained no session token", e.Account)
}

func (e *AuthError) Unwrap() error { return e.Err }

// TransportError wraps a network or HTTP-level failure. Every remote error
// is fatal to the run; there is no retry policy.
type TransportError struct {
	Fct string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.Fct, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// NotFoundError means a lookup that requires exactly one row matched none.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found matching %q", e.Kind, e.Key)
}

// RemoteError carries an error description the service embedded in an
// otherwise successful HTTP response.
type RemoteError struct {
	Fct         string
	Description string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("service rejected %s: %s", e.Fct, e.Description)
}
