package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coursestore/internal/client/services"
)

// getSimpleText is an indirection used to facilitate testing.
var getSimpleText = GetSimpleText

// Register prompts for the sign-up fields and creates the account. The new
// account is not signed in automatically; the user logs in afterwards, as
// in the browser flow.
func (a *App) Register(ctx context.Context) error {
	input := services.RegisterInput{}
	var err error

	if input.UserName, err = getSimpleText(a.reader, "Choose a username (letters then digits, 4-10 chars)", os.Stdout); err != nil {
		return err
	}
	if input.Name, err = getSimpleText(a.reader, "Full name", os.Stdout); err != nil {
		return err
	}
	if input.Email, err = getSimpleText(a.reader, "Email", os.Stdout); err != nil {
		return err
	}
	if input.Address, err = getSimpleText(a.reader, "Address", os.Stdout); err != nil {
		return err
	}

	created, err := a.users.Register(ctx, input)
	if err != nil {
		fmt.Println("Registration failed:", err)
		return err
	}
	fmt.Printf("Account %s created. Use 'login' to sign in.\n", created.UserName)
	return nil
}

// Login prompts for the username and signs in.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	account, err := a.users.Login(ctx, userName)
	if err != nil {
		fmt.Println("Login failed:", err)
		return err
	}
	if account.Banned {
		fmt.Println("Note: this account is banned; purchases are disabled.")
	}
	fmt.Printf("Welcome back, %s!\n", account.Name)
	return nil
}

// Logout clears the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}
