package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/coursestore/internal/client/services"
)

// Cart shows the current cart with its running total.
func (a *App) Cart(ctx context.Context) error {
	user := a.session.Current()
	if user == nil {
		fmt.Println("Please sign in to view your cart.")
		return nil
	}

	courses := a.users.Cart(ctx, user.UserName)
	if len(courses) == 0 {
		fmt.Println("Your cart is empty.")
		return nil
	}
	printCourses(courses)
	fmt.Printf("Total: $%.2f\n", services.CartTotal(courses))
	return nil
}

// Add puts a course into the cart.
func (a *App) Add(ctx context.Context, courseID int) error {
	course := a.catalog.Get(ctx, courseID)
	if course == nil {
		fmt.Println("Course not found.")
		return nil
	}

	updated, err := a.cart.AddToCart(ctx, *course)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			fmt.Println("Please sign in to shop.")
			return nil
		}
		fmt.Println("Could not update the cart.")
		return err
	}
	fmt.Printf("%s is in your cart (%d items).\n", course.Title, len(updated.ShoppingCart))
	return nil
}

// Remove takes a course out of the cart.
func (a *App) Remove(ctx context.Context, courseID int) error {
	updated, err := a.cart.RemoveFromCart(ctx, courseID)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			fmt.Println("Please sign in to shop.")
			return nil
		}
		fmt.Println("Could not update the cart.")
		return err
	}
	fmt.Printf("Cart now has %d items.\n", len(updated.ShoppingCart))
	return nil
}

// Checkout commits the cart. The command returns only after the server has
// confirmed the enrollment, so leaving the page cannot outrun the purchase.
func (a *App) Checkout(ctx context.Context) error {
	updated, total, err := a.cart.Checkout(ctx)
	if err != nil {
		if errors.Is(err, services.ErrLoginRequired) {
			fmt.Println("Please sign in to shop.")
			return nil
		}
		if errors.Is(err, services.ErrEmptyCart) {
			fmt.Println("Your cart is empty.")
			return nil
		}
		fmt.Println("Checkout failed, your cart is unchanged.")
		return err
	}
	fmt.Printf("Thank you for your purchase! $%.2f charged, %d courses owned.\n", total, len(updated.Courses))
	return nil
}
