package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coursestore/internal/client/client"
	"github.com/dmitrijs2005/coursestore/internal/client/config"
	"github.com/dmitrijs2005/coursestore/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/coursestore/internal/client/services"
	"github.com/dmitrijs2005/coursestore/internal/client/session"
	"github.com/dmitrijs2005/coursestore/internal/common"
	"github.com/dmitrijs2005/coursestore/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the storefront client together: config, session store,
// transport, services, and the REPL reader.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	users   services.UserService
	cart    services.CartService
	admin   services.AdminService
	catalog services.CatalogService
	reader  *bufio.Reader
}

// NewApp builds the application from config: opens the local state
// database, restores the persisted session, and connects the API client.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := tokens.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	sess := session.NewStore(tokens.NewSQLiteRepository(db), log)
	if err := sess.Init(ctx); err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}

	api := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, cfg.RequestRate, cfg.RequestBurst, log)

	users := services.NewUserService(api, sess, log)
	app := &App{
		config:  cfg,
		log:     log,
		session: sess,
		users:   users,
		cart:    services.NewCartService(users, sess, log),
		admin:   services.NewAdminService(api, sess, log),
		catalog: services.NewCatalogService(api, log),
		reader:  bufio.NewReader(os.Stdin),
	}
	return app, nil
}

// Run loads the signed-in user (if any) and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if a.session.LoginStatus() {
		// the fetch may force a logout if the token went stale server-side
		a.users.Refresh(ctx)
	}

	go a.watchSession(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Welcome to the course store (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, scanner)
}

// watchSession observes session republications, standing in for the UI
// re-render every update would trigger in the browser client.
func (a *App) watchSession(ctx context.Context) {
	ch, cancel := a.session.Subscribe()
	defer cancel()

	for {
		select {
		case user := <-ch:
			a.log.Debug(ctx, "session user updated",
				"userName", user.UserName, "cartSize", len(user.ShoppingCart), "courses", len(user.Courses))
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.LoginStatus()
}

func (a *App) isAdmin() bool {
	return a.session.LoginStatus() && common.IsAdmin(a.session.Token())
}

// getStatus renders the prompt status: username plus cart size.
func (a *App) getStatus() string {
	if !a.session.LoginStatus() {
		return ""
	}
	s := a.session.Token()
	if user := a.session.Current(); user != nil && len(user.ShoppingCart) > 0 {
		s = fmt.Sprintf("%s cart:%d", s, len(user.ShoppingCart))
	}
	return "(" + s + ")"
}
