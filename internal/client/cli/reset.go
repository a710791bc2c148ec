package cli

import (
	"context"

	"github.com/mlevkov/authbox/internal/client/client"
)

// ResetPassword drives the reset screen for the code carried in the current
// route. The two password fields must match locally before any round trip
// is issued; a mismatch never leaves the machine.
func (a *App) ResetPassword(ctx context.Context) error {
	otp, ok := resetPasswordOTP(a.nav.Current())
	if !ok {
		a.nav.Replace(RouteLogin)
		return nil
	}

	for {
		current := a.nav.Current()
		if got, ok := resetPasswordOTP(current); !ok || got != otp {
			return nil
		}

		newPassword, err := getPassword("Enter your new password (empty to cancel)", a.out)
		if err != nil {
			return err
		}
		if newPassword == "" {
			a.nav.Navigate(RouteLogin)
			return nil
		}
		confirm, err := getPassword("Confirm your password", a.out)
		if err != nil {
			return err
		}

		if fields := checkForm(resetForm{NewPassword: newPassword, ConfirmPassword: confirm}); fields != nil {
			a.showFieldErrors(fields)
			continue
		}

		if a.submitting {
			continue
		}
		a.submitting = true
		outcome := a.client.ResetPassword(ctx, otp, newPassword)
		a.submitting = false

		if a.nav.Current() != current {
			return nil
		}

		switch outcome.Kind {
		case client.KindSuccess:
			a.notifier.Notify("Success", messageOr(outcome, "Your password has been reset."), SeveritySuccess)
			a.nav.Navigate(RouteLogin)
		default:
			a.notifier.Notify("Error", "The reset link is invalid or expired. Please try again.", SeverityDestructive)
		}
	}
}
