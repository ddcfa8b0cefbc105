// Package models defines the wire-level entities exchanged with the
// course store API.
package models

import "slices"

// User is the storefront account record. UserName is unique and immutable
// after registration; ShoppingCart holds course ids pending purchase and
// Courses holds owned course ids. The two lists are kept disjoint: a course
// id never appears in both at the same time.
type User struct {
	UserName     string `json:"userName"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Courses      []int  `json:"courses"`
	ShoppingCart []int  `json:"shoppingCart"`
	Banned       bool   `json:"banned"`
}

// Owns reports whether the user is enrolled in the course.
func (u *User) Owns(courseID int) bool {
	return slices.Contains(u.Courses, courseID)
}

// InCart reports whether the course is already in the shopping cart.
func (u *User) InCart(courseID int) bool {
	return slices.Contains(u.ShoppingCart, courseID)
}

// Clone returns a deep copy. Components treat session snapshots as
// disposable, so mutations always happen on a copy and the authoritative
// record is only replaced via the session store.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Courses = slices.Clone(u.Courses)
	c.ShoppingCart = slices.Clone(u.ShoppingCart)
	return &c
}
