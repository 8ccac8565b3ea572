// Package secrets resolves named credentials to their secret payloads.
// Providers never propagate transport errors: any failure is logged and
// reported as "absent", leaving the policy decision to the caller.
package secrets

import "context"

// Provider fetches the raw secret payload (a JSON string) for a secret id.
// The second return value reports whether the secret was resolved.
type Provider interface {
	Fetch(ctx context.Context, id string) (string, bool)
}
