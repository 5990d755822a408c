package cli

import (
	"context"
	"fmt"

	"recipekeeper/internal/common"
)

// Login prompts for credentials and authenticates. Auth failures carry the
// user-facing message and are printed verbatim by the REPL.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.manager.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s\n", s.Email)
	return nil
}

// Signup prompts for credentials and creates an account.
func (a *App) Signup(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	s, err := a.manager.Signup(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Account created, logged in as %s\n", s.Email)
	return nil
}

// Logout runs the full logout sequence.
func (a *App) Logout(ctx context.Context) error {
	if err := a.manager.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the current identity and its expiry.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.currentSession()
	if !s.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (id %s), session expires %s\n", s.Email, s.UserID, s.ExpiresAt.Format("2006-01-02 15:04:05"))
	return nil
}
