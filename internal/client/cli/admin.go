package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coursestore/internal/client/models"
)

// Users lists all non-admin accounts with their ban state.
func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}

	users := a.admin.ListUsers(ctx)
	if len(users) == 0 {
		fmt.Println("No users.")
		return nil
	}
	for _, u := range users {
		state := ""
		if u.Banned {
			state = " [banned]"
		}
		fmt.Printf("  %s (%s)%s — %d courses, %d in cart\n",
			u.UserName, u.Name, state, len(u.Courses), len(u.ShoppingCart))
	}
	return nil
}

// Ban bans an account.
func (a *App) Ban(ctx context.Context, userName string) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}

	banned, err := a.admin.Ban(ctx, userName)
	if err != nil {
		fmt.Println("Ban failed:", err)
		return err
	}
	fmt.Printf("%s is banned.\n", banned.UserName)
	return nil
}

// Unban lifts a ban.
func (a *App) Unban(ctx context.Context, userName string) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}

	unbanned, err := a.admin.Unban(ctx, userName)
	if err != nil {
		fmt.Println("Unban failed:", err)
		return err
	}
	fmt.Printf("%s is no longer banned.\n", unbanned.UserName)
	return nil
}

// AddCourse creates a catalog entry from prompted fields.
func (a *App) AddCourse(ctx context.Context) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}

	title, err := getSimpleText(a.reader, "Course title", os.Stdout)
	if err != nil {
		return err
	}
	price, err := GetFloat(a.reader, "Price", os.Stdout)
	if err != nil {
		fmt.Println(err)
		return nil
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	course := models.Course{Title: title, Price: price, Description: description}
	created, err := a.catalog.Create(ctx, course, a.session.Token())
	if err != nil {
		fmt.Println("Could not create the course:", err)
		return err
	}
	fmt.Printf("Course #%d created.\n", created.ID)
	return nil
}

// EditCourse updates a catalog entry. Empty input keeps the current value.
func (a *App) EditCourse(ctx context.Context, id int) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}

	course := a.catalog.Get(ctx, id)
	if course == nil {
		fmt.Println("Course not found.")
		return nil
	}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", course.Title), os.Stdout)
	if err != nil {
		return err
	}
	priceText, err := getSimpleText(a.reader, fmt.Sprintf("Price [%.2f]", course.Price), os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}

	if title != "" {
		course.Title = title
	}
	if priceText != "" {
		if _, err := fmt.Sscanf(priceText, "%g", &course.Price); err != nil {
			fmt.Printf("Not a price: %q\n", priceText)
			return nil
		}
	}
	if description != "" {
		course.Description = description
	}

	updated, err := a.catalog.Update(ctx, *course, a.session.Token())
	if err != nil {
		fmt.Println("Could not update the course:", err)
		return err
	}
	fmt.Printf("Course #%d updated.\n", updated.ID)
	return nil
}

// DeleteCourse removes a catalog entry.
func (a *App) DeleteCourse(ctx context.Context, id int) error {
	if !a.isAdmin() {
		fmt.Println("Admin only.")
		return nil
	}

	if err := a.catalog.Delete(ctx, id); err != nil {
		fmt.Println("Could not delete the course:", err)
		return err
	}
	fmt.Printf("Course #%d deleted.\n", id)
	return nil
}
