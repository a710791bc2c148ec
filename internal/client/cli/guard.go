package cli

import "context"

// ensureAuthenticated is the guard every protected screen calls on mount.
// It reads the session store; when no live token is present it replaces the
// current history entry with the sign-in route and reports false, and the
// calling screen must render nothing further. Calling it repeatedly within
// one screen lifetime is safe: Replace never stacks duplicate entries.
func (a *App) ensureAuthenticated(ctx context.Context) bool {
	token, err := a.store.Token(ctx)
	if err != nil {
		a.log.Error(ctx, "session read failed", "error", err)
	}
	if token == "" {
		a.nav.Replace(RouteLogin)
		return false
	}
	return true
}
