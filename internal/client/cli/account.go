package cli

import (
	"context"
	"fmt"
	"os"
)

// Profile shows the signed-in user's account record.
func (a *App) Profile(ctx context.Context) error {
	user := a.users.Refresh(ctx)
	if user == nil {
		fmt.Println("Please sign in first.")
		return nil
	}

	fmt.Printf("Username: %s\nName:     %s\nEmail:    %s\nAddress:  %s\n",
		user.UserName, user.Name, user.Email, user.Address)
	fmt.Printf("Owned courses: %d, in cart: %d\n", len(user.Courses), len(user.ShoppingCart))
	for _, c := range a.users.Courses(ctx, user.UserName) {
		fmt.Printf("  #%d %s\n", c.ID, c.Title)
	}
	if user.Banned {
		fmt.Println("This account is banned.")
	}
	return nil
}

// EditProfile updates the mutable profile fields through the full-record
// round-trip. Empty input keeps the current value.
func (a *App) EditProfile(ctx context.Context) error {
	user := a.session.Current()
	if user == nil {
		fmt.Println("Please sign in first.")
		return nil
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Full name [%s]", user.Name), os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", user.Email), os.Stdout)
	if err != nil {
		return err
	}
	address, err := getSimpleText(a.reader, fmt.Sprintf("Address [%s]", user.Address), os.Stdout)
	if err != nil {
		return err
	}

	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	if address != "" {
		user.Address = address
	}

	updated, err := a.users.Update(ctx, *user)
	if err != nil {
		fmt.Println("Could not update the profile.")
		return err
	}
	fmt.Printf("Profile updated, %s.\n", updated.Name)
	return nil
}
