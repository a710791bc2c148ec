package cli

import (
	"context"

	"github.com/mlevkov/authbox/internal/client/client"
)

// SendReset drives the forgot-password screen: it asks the server to email
// a reset OTP to the given address.
func (a *App) SendReset(ctx context.Context) error {
	for a.nav.Current() == RouteForgotPassword {
		email, err := getSimpleText(a.reader, "Send Reset Password OTP: enter your email ('back' or 'exit' to leave)", a.out)
		if err != nil {
			return err
		}
		switch email {
		case "", "back", "b":
			a.nav.Navigate(RouteLogin)
			continue
		case "exit", "quit":
			return errQuit
		}

		if fields := checkForm(emailForm{Email: email}); fields != nil {
			a.showFieldErrors(fields)
			continue
		}

		if a.submitting {
			continue
		}
		a.submitting = true
		outcome := a.client.SendResetOTP(ctx, email)
		a.submitting = false

		if a.nav.Current() != RouteForgotPassword {
			return nil
		}

		switch outcome.Kind {
		case client.KindSuccess:
			a.notifier.Notify("Success", messageOr(outcome, "A reset OTP has been sent to your email."), SeveritySuccess)
			a.nav.Navigate(RouteVerifyPassword)
		case client.KindForbidden:
			a.notifier.Notify("Error", "This email address is not registered.", SeverityDestructive)
		default:
			a.notifier.Notify("Error", messageOr(outcome, "Error sending OTP"), SeverityDestructive)
		}
	}
	return nil
}
