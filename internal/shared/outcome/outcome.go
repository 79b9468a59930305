// Package outcome defines the result type returned by action-layer operations.
// Navigation is an explicit value, not a thrown signal: callers branch on the
// kind instead of recovering a redirect from a panic or error chain.
package outcome

// Navigation targets used across the action layer.
const (
	// TargetLanding is the public landing page.
	TargetLanding = "/"
	// TargetLogin is the login entry point for unauthenticated callers.
	TargetLogin = "/login"
	// TargetDashboard is the authenticated area reached after sign-in.
	TargetDashboard = "/app/dashboard"
)

// Kind discriminates the three possible results of an action.
type Kind int

const (
	// KindSuccess means the operation completed and mutated state as requested.
	KindSuccess Kind = iota
	// KindRedirect means the caller must navigate elsewhere (e.g. to the login
	// page when no session is present). It is not an error.
	KindRedirect
	// KindFailure means the operation was rejected or failed; Message carries
	// the user-facing explanation.
	KindFailure
)

// Outcome is the structured result of an action-layer operation.
type Outcome struct {
	Kind    Kind
	Target  string // redirect target, set only for KindRedirect
	Message string // user-facing message, set only for KindFailure
}

// Success returns a successful outcome.
func Success() Outcome {
	return Outcome{Kind: KindSuccess}
}

// Redirect returns an outcome instructing the caller to navigate to target.
func Redirect(target string) Outcome {
	return Outcome{Kind: KindRedirect, Target: target}
}

// Failure returns a failed outcome with a user-facing message.
func Failure(message string) Outcome {
	return Outcome{Kind: KindFailure, Message: message}
}

// IsSuccess reports whether the outcome is a success.
func (o Outcome) IsSuccess() bool { return o.Kind == KindSuccess }

// IsRedirect reports whether the outcome requests navigation.
func (o Outcome) IsRedirect() bool { return o.Kind == KindRedirect }

// IsFailure reports whether the outcome carries a user-facing failure.
func (o Outcome) IsFailure() bool { return o.Kind == KindFailure }
