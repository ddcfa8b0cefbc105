package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	admin    bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }
func (s *stubExec) isAdmin() bool    { return s.admin }

func (s *stubExec) Register(ctx context.Context) error { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error { return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error { return s.record("logout") }
func (s *stubExec) Profile(ctx context.Context) error { return s.record("profile") }
func (s *stubExec) EditProfile(ctx context.Context) error { return s.record("edit") }

func (s *stubExec) Courses(ctx context.Context) error { return s.record("courses") }

func (s *stubExec) Search(ctx context.Context, term string) error {
	return s.record("search:" + term)
}

func (s *stubExec) Course(ctx context.Context, id int) error {
	s.calls = append(s.calls, "course")
	return nil
}

func (s *stubExec) Recommended(ctx context.Context) error { return s.record("recommended") }

func (s *stubExec) Lesson(ctx context.Context, courseID, lessonNum int) error {
	return s.record("lesson")
}

func (s *stubExec) Cart(ctx context.Context) error { return s.record("cart") }
func (s *stubExec) Add(ctx context.Context, courseID int) error { return s.record("add") }
func (s *stubExec) Remove(ctx context.Context, courseID int) error { return s.record("remove") }
func (s *stubExec) Checkout(ctx context.Context) error { return s.record("checkout") }

func (s *stubExec) Users(ctx context.Context) error { return s.record("users") }

func (s *stubExec) Ban(ctx context.Context, userName string) error {
	return s.record("ban:" + userName)
}

func (s *stubExec) Unban(ctx context.Context, userName string) error {
	return s.record("unban:" + userName)
}

func (s *stubExec) AddCourse(ctx context.Context) error { return s.record("addcourse") }
func (s *stubExec) EditCourse(ctx context.Context, id int) error { return s.record("editcourse") }
func (s *stubExec) DeleteCourse(ctx context.Context, id int) error { return s.record("delcourse") }

func runScript(t *testing.T, stub *stubExec, script string) (out, prompts []string) {
	t.Helper()

	oldPrintln, oldPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
		return 0, nil
	}
	printFn = func(a ...any) (int, error) {
		for _, v := range a {
			if s, ok := v.(string); ok {
				prompts = append(prompts, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn, printFn = oldPrintln, oldPrint }()

	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), stub, func() string { return "" }, scanner)
	return out, prompts
}

func TestREPL_DispatchesCommands(t *testing.T) {
	stub := &stubExec{loggedIn: true}
	runScript(t, stub, "courses\nsearch go basics\nadd 5\nremove 5\ncheckout\nban bob42\nexit\n")

	require.Equal(t,
		[]string{"courses", "search:go basics", "add", "remove", "checkout", "ban:bob42"},
		stub.calls)
}

func TestREPL_PromptStaysOnInputLine(t *testing.T) {
	stub := &stubExec{}
	_, prompts := runScript(t, stub, "exit\n")

	require.Equal(t, []string{"store > "}, prompts)
	for _, p := range prompts {
		require.False(t, strings.HasSuffix(p, "\n"))
	}
}

func TestREPL_RejectsMalformedArgs(t *testing.T) {
	stub := &stubExec{}
	out, _ := runScript(t, stub, "add five\nlesson 3\nsearch\nexit\n")

	require.Empty(t, stub.calls)
	require.Contains(t, out, "Usage: add <courseID>")
	require.Contains(t, out, "Usage: lesson <courseID> <lesson#>")
	require.Contains(t, out, "Usage: search <term>")
}

func TestREPL_UnknownCommand(t *testing.T) {
	stub := &stubExec{}
	out, _ := runScript(t, stub, "frobnicate\nexit\n")
	require.Contains(t, out, "Unknown command:")
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	stub := &stubExec{}
	runScript(t, stub, "courses\n")
	require.Equal(t, []string{"courses"}, stub.calls)
}
