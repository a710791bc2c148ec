package cli

import (
	"context"
	"fmt"
	"time"
)

// VerifyAccount is the notice screen shown after registration: it asks the
// user to check their inbox, counts down, and redirects to sign-in. The
// countdown is released on every exit path, including cancellation.
func (a *App) VerifyAccount(ctx context.Context) error {
	printlnTo(a.out, "Please check your email to verify your account")

	countdown := NewCooldown(verifyAccountRedirects)
	countdown.Start()
	defer countdown.Stop()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-countdown.Done():
			a.nav.Replace(RouteLogin)
			return nil
		case <-ticker.C:
			printlnTo(a.out, fmt.Sprintf("Redirecting to login page in %d seconds...", countdown.Remaining()))
		}
	}
}
