// cmd/easyboard/main.go
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/easyboard/easyboard-go/internal/adapters/rest"
	"github.com/easyboard/easyboard-go/internal/adapters/session"
	"github.com/easyboard/easyboard-go/internal/core/ports"
	"github.com/easyboard/easyboard-go/internal/core/services"
	"github.com/easyboard/easyboard-go/internal/pkg/config"
	"github.com/easyboard/easyboard-go/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const usage = `easyboard - classifieds marketplace client

Usage:
  easyboard <command> [flags]

Commands:
  browse               interactive listing search
  search               one-shot listing search
  show <id>            show a single listing
  create               publish a new listing
  edit <id>            edit one of your listings
  delete <id>          delete one of your listings
  register             create an account
  login                log in and store the token
  logout               discard the stored token
  profile              show or update your profile
`

func main() {
	slogger := logger.SetupLogger(getEnvDefault("LOG_LEVEL", "info"), getEnvDefault("LOG_FORMAT", "text"))

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app, err := newApp(cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.close()

	ctx := context.Background()
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app wires the adapters and services behind the commands.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	client  *rest.Client
	store   ports.TokenStore
	session *services.Session
	closers []func()
}

func newApp(cfg *config.Config, slogger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: slogger}

	switch cfg.Session.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.RedisAddr(),
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
			ReadTimeout: cfg.Redis.ReadTimeout,
		})
		store := session.NewRedisStore(rdb, cfg.Session.TokenKey, slogger)
		a.store = store
		a.closers = append(a.closers, func() {
			_ = store.Close()
			_ = rdb.Close()
		})
	default:
		a.store = session.NewMemoryStore()
	}

	client, err := rest.NewClient(rest.Options{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Burst:             cfg.API.Burst,
	}, a.store, slogger)
	if err != nil {
		return nil, err
	}
	a.client = client

	a.session = services.NewSession(context.Background(), a.store, slogger)
	a.closers = append(a.closers, a.session.Close)
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "browse":
		return a.runBrowse(ctx)
	case "search":
		return a.runSearch(ctx, args)
	case "show":
		return a.runShow(ctx, args)
	case "create":
		return a.runCreate(ctx, args)
	case "edit":
		return a.runEdit(ctx, args)
	case "delete":
		return a.runDelete(ctx, args)
	case "register":
		return a.runRegister(ctx, args)
	case "login":
		return a.runLogin(ctx, args)
	case "logout":
		return a.session.Logout(ctx)
	case "profile":
		return a.runProfile(ctx, args)
	case "version":
		fmt.Printf("easyboard %s (built %s)\n", Version, BuildTime)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

// navigator prints route changes; the individual commands render the
// destination view themselves when it matters.
func (a *app) navigator() ports.Navigator {
	return ports.NavigatorFunc(func(path string) {
		a.logger.Debug("navigate", slog.String("path", path))
	})
}

// confirmer prompts on stdin; assumeYes skips the prompt.
func (a *app) confirmer(assumeYes bool) ports.Confirmer {
	return ports.ConfirmerFunc(func(prompt string) bool {
		if assumeYes {
			return true
		}
		fmt.Printf("%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	})
}

func (a *app) requireAuth() error {
	if !a.session.Authenticated() {
		return fmt.Errorf("login required: run `easyboard login` first")
	}
	return nil
}

func (a *app) runRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "username (required)")
	email := fs.String("email", "", "email (optional)")
	phone := fs.String("phone", "", "phone (optional)")
	password := fs.String("password", "", "password (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth := services.NewAuthService(a.client, a.session, a.navigator(), a.logger)
	err := auth.Register(ctx, ports.RegisterRequest{
		Username: *username,
		Email:    *email,
		Phone:    *phone,
		Password: *password,
	})
	if err != nil {
		printRequestError(err)
		return fmt.Errorf("registration failed")
	}
	fmt.Println("account created, you can log in now")
	return nil
}

func (a *app) runLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	auth := services.NewAuthService(a.client, a.session, a.navigator(), a.logger)
	if err := auth.Login(ctx, *username, *password); err != nil {
		printRequestError(err)
		return fmt.Errorf("login failed")
	}
	fmt.Println("logged in")
	return nil
}

func (a *app) runProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	email := fs.String("email", "", "new email")
	phone := fs.String("phone", "", "new phone")
	password := fs.String("password", "", "new password")
	update := fs.Bool("update", false, "apply the given fields")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	ctrl := services.NewProfileController(a.client, a.client, a.confirmer(false), a.session, a.logger)
	ctrl.Load(ctx)
	if ctrl.Phase() == services.PhaseError {
		return fmt.Errorf("%s", ctrl.ErrorMessage())
	}

	if *update {
		form := ctrl.Form()
		if *email != "" {
			form.Email = *email
		}
		if *phone != "" {
			form.Phone = *phone
		}
		form.Password = *password
		ctrl.SetForm(form)
		if !ctrl.Save(ctx) {
			return fmt.Errorf("%s", ctrl.ErrorMessage())
		}
		fmt.Println(ctrl.SuccessMessage())
	}

	renderProfile(ctrl)
	return nil
}

func parseListingID(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("listing id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, nil, fmt.Errorf("invalid listing id %q", args[0])
	}
	return id, args[1:], nil
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
