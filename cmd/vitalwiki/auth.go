package main

import (
	"fmt"

	"github.com/pwalen/vitalwiki"
)

// Run executes the register command.
func (c *RegisterCmd) Run(deps *Dependencies) error {
	if err := deps.Session.Register(deps.Ctx, c.Username, c.Password); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Registered %s. Use 'vitalwiki login' to start a session.\n", c.Username)
	return nil
}

// Run executes the login command.
func (c *LoginCmd) Run(deps *Dependencies) error {
	token, err := deps.Session.Login(deps.Ctx, c.Username, c.Password)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}
	if err := deps.Sessions.Write(token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Logged in as %s\n", c.Username)
	return nil
}

// Run executes the logout command.
func (c *LogoutCmd) Run(deps *Dependencies) error {
	if deps.Token != "" {
		if err := deps.Session.Logout(deps.Ctx, deps.Token); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
			return err
		}
	}
	if err := deps.Sessions.Clear(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	fmt.Fprintln(deps.Stdout, "Logged out")
	return nil
}

// Run executes the whoami command.
func (c *WhoamiCmd) Run(deps *Dependencies) error {
	if deps.Token == "" {
		fmt.Fprintln(deps.Stdout, "Not logged in")
		return nil
	}
	username, err := deps.Session.CurrentUser(deps.Ctx, deps.Token)
	if err != nil {
		if vitalwiki.ErrorCode(err) == vitalwiki.EUNAUTHORIZED {
			fmt.Fprintln(deps.Stdout, "Not logged in")
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", vitalwiki.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, username)
	return nil
}
