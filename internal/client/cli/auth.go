package cli

import (
	"context"
	"fmt"
)

// Register prompts for an email and password and creates an account. On
// success the new account is signed in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	id, err := a.auth.Register(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Registered and logged in as %s\n", id.Email)
	return nil
}

// Login prompts for credentials and signs in. On failure the previous
// session, if any, stays in place.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	id, err := a.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Logged in as %s (%s)\n", id.Email, id.Role)
	return nil
}

// Logout ends the session. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(_ context.Context) error {
	id := a.auth.Current()
	if id == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (%s) id=%s\n", id.Email, id.Role, id.ID)
	return nil
}
