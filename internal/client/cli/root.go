package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printFn / printlnFn are test seams for user-facing output. The prompt
// goes through printFn so input is typed on the same line.
var (
	printFn   = fmt.Print
	printlnFn = fmt.Println
)

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error

	Courses(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Course(ctx context.Context, id int) error
	Recommended(ctx context.Context) error
	Lesson(ctx context.Context, courseID, lessonNum int) error

	Cart(ctx context.Context) error
	Add(ctx context.Context, courseID int) error
	Remove(ctx context.Context, courseID int) error
	Checkout(ctx context.Context) error

	Users(ctx context.Context) error
	Ban(ctx context.Context, userName string) error
	Unban(ctx context.Context, userName string) error
	AddCourse(ctx context.Context) error
	EditCourse(ctx context.Context, id int) error
	DeleteCourse(ctx context.Context, id int) error
}

// runREPL reads commands line by line and dispatches them. It exits on EOF
// or "exit"/"quit". Handlers log their own errors; the loop stays resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printFn(fmt.Sprintf("store %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printHelp(a)

		case "courses":
			_ = a.Courses(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <term>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "course":
			if id, ok := intArg(args, 0, "Usage: course <id>"); ok {
				_ = a.Course(ctx, id)
			}

		case "recommended":
			_ = a.Recommended(ctx)

		case "lesson":
			courseID, ok := intArg(args, 0, "Usage: lesson <courseID> <lesson#>")
			if !ok {
				continue
			}
			lessonNum, ok := intArg(args, 1, "Usage: lesson <courseID> <lesson#>")
			if !ok {
				continue
			}
			_ = a.Lesson(ctx, courseID, lessonNum)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "cart":
			_ = a.Cart(ctx)

		case "add":
			if id, ok := intArg(args, 0, "Usage: add <courseID>"); ok {
				_ = a.Add(ctx, id)
			}

		case "remove":
			if id, ok := intArg(args, 0, "Usage: remove <courseID>"); ok {
				_ = a.Remove(ctx, id)
			}

		case "checkout":
			_ = a.Checkout(ctx)

		case "users":
			_ = a.Users(ctx)

		case "ban":
			if len(args) == 0 {
				printlnFn("Usage: ban <userName>")
				continue
			}
			_ = a.Ban(ctx, args[0])

		case "unban":
			if len(args) == 0 {
				printlnFn("Usage: unban <userName>")
				continue
			}
			_ = a.Unban(ctx, args[0])

		case "addcourse":
			_ = a.AddCourse(ctx)

		case "editcourse":
			if id, ok := intArg(args, 0, "Usage: editcourse <courseID>"); ok {
				_ = a.EditCourse(ctx, id)
			}

		case "delcourse":
			if id, ok := intArg(args, 0, "Usage: delcourse <courseID>"); ok {
				_ = a.DeleteCourse(ctx, id)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func intArg(args []string, n int, usage string) (int, bool) {
	if len(args) <= n {
		printlnFn(usage)
		return 0, false
	}
	v, err := strconv.Atoi(args[n])
	if err != nil {
		printlnFn(usage)
		return 0, false
	}
	return v, true
}

func printHelp(a execIface) {
	printlnFn("Browse: courses, search <term>, course <id>, recommended, lesson <courseID> <lesson#>")
	if !a.isLoggedIn() {
		printlnFn("Account: register, login, exit")
		return
	}
	printlnFn("Account: profile, edit, logout, exit")
	printlnFn("Cart: cart, add <courseID>, remove <courseID>, checkout")
	if a.isAdmin() {
		printlnFn("Admin: users, ban <userName>, unban <userName>, addcourse, editcourse <courseID>, delcourse <courseID>")
	}
}
