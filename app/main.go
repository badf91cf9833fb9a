package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/linkshort/app/content"
	"github.com/umputun/linkshort/app/server"
)

type options struct {
	Server struct {
		Address         string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout     time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		WriteTimeout    time.Duration `long:"write-timeout" env:"WRITE_TIMEOUT" default:"10s" description:"write timeout"`
		IdleTimeout     time.Duration `long:"idle-timeout" env:"IDLE_TIMEOUT" default:"60s" description:"idle timeout"`
		ShutdownTimeout time.Duration `long:"shutdown-timeout" env:"SHUTDOWN_TIMEOUT" default:"5s" description:"graceful shutdown timeout"`
		BaseURL         string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /links)"`
		SecureCookies   bool          `long:"secure-cookies" env:"SECURE_COOKIES" description:"set Secure flag on cookies (HTTPS only)"`
	} `group:"server" namespace:"server" env-namespace:"LINKSHORT_SERVER"`

	Theme struct {
		Hints bool `long:"hints" env:"HINTS" description:"request Sec-CH-Prefers-Color-Scheme client hint"`
	} `group:"theme" namespace:"theme" env-namespace:"LINKSHORT_THEME"`

	Auth struct {
		UserHeader   string `long:"user-header" env:"USER_HEADER" description:"trusted header with signed-in user id, set by auth proxy"`
		SignInURL    string `long:"sign-in-url" env:"SIGN_IN_URL" description:"identity provider sign-in page"`
		SignUpURL    string `long:"sign-up-url" env:"SIGN_UP_URL" description:"identity provider sign-up page"`
		DashboardURL string `long:"dashboard-url" env:"DASHBOARD_URL" description:"dashboard URL for signed-in users (default: <base-url>/dashboard)"`
	} `group:"auth" namespace:"auth" env-namespace:"LINKSHORT_AUTH"`

	Content string `long:"content" env:"LINKSHORT_CONTENT" description:"landing page content file (yaml), embedded copy if empty"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("linkshort %s\n", revision)

	var opts options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	if _, err := p.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(os.Stderr)
			os.Exit(2)
		}
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	if opts.Version {
		os.Exit(0)
	}

	setupLogs(opts.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	signals(cancel)

	if err := run(ctx, opts); err != nil {
		log.Printf("[ERROR] failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	baseURL, err := validateBaseURL(opts.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	log.Printf("[INFO] starting linkshort server on %s", opts.Server.Address)
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}
	if opts.Auth.UserHeader != "" {
		log.Printf("[INFO] signed-in user from header %s", opts.Auth.UserHeader)
	}

	pageContent, err := content.Load(opts.Content)
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	srv, err := server.New(server.Config{
		Address:         opts.Server.Address,
		ReadTimeout:     opts.Server.ReadTimeout,
		WriteTimeout:    opts.Server.WriteTimeout,
		IdleTimeout:     opts.Server.IdleTimeout,
		ShutdownTimeout: opts.Server.ShutdownTimeout,
		Version:         revision,
		BaseURL:         baseURL,
		SecureCookies:   opts.Server.SecureCookies,
		ThemeHints:      opts.Theme.Hints,
		UserHeader:      opts.Auth.UserHeader,
		DashboardURL:    opts.Auth.DashboardURL,
		SignInURL:       opts.Auth.SignInURL,
		SignUpURL:       opts.Auth.SignUpURL,
		Content:         pageContent,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// validateBaseURL checks the base URL starts with a slash and drops the trailing one.
func validateBaseURL(baseURL string) (string, error) {
	if baseURL == "" {
		return "", nil
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", baseURL)
	}
	return strings.TrimRight(baseURL, "/"), nil
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
