package cli

import "context"

// VerifyPassword is the notice screen between requesting a reset OTP and
// resetting the password: the emailed message carries the code, and typing
// it here opens the reset screen for that code.
func (a *App) VerifyPassword(ctx context.Context) error {
	printlnTo(a.out, "A reset code was sent to your email.")

	for a.nav.Current() == RouteVerifyPassword {
		code, err := getSimpleText(a.reader, "Enter the 6-digit code from the email ('back' or 'exit' to leave)", a.out)
		if err != nil {
			return err
		}
		switch code {
		case "", "back", "b":
			a.nav.Navigate(RouteLogin)
			continue
		case "exit", "quit":
			return errQuit
		}

		if fields := checkForm(otpForm{Code: code}); fields != nil {
			a.showFieldErrors(fields)
			continue
		}

		a.nav.Navigate(ResetPasswordRoute(code))
	}
	return nil
}
