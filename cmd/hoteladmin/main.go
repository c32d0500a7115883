package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strconv"
	"syscall"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jrsteele09/go-hotel-admin/apiclient"
	"github.com/jrsteele09/go-hotel-admin/hotel"
	"github.com/jrsteele09/go-hotel-admin/internal/config"
	"github.com/jrsteele09/go-hotel-admin/session/boltstore"
)

const usage = `usage: hoteladmin [-config file] <command> [args]

commands:
  login <email-or-phone> <password>
  logout
  profile
  refresh
  branches [page]
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Error().Err(err).Msg("hoteladmin failed")
		os.Exit(1)
	}
}

func run(args []string, out, errOut io.Writer) (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Bytes("stack", debug.Stack()).Msg("recovered from panic")
			returnError = errors.New("panic recovered")
		}
	}()

	fs := flag.NewFlagSet("hoteladmin", flag.ContinueOnError)
	configPath := fs.String("config", config.GetEnv(config.ConfigFileVar, ""), "optional YAML config file")
	quiet := fs.Bool("q", false, "do not print the banner")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no command given")
	}

	c, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	setupLogging(c.GetEnv())
	if !*quiet {
		displayAppname(c.GetAppName())
	}

	client, err := newClient(c, errOut)
	if err != nil {
		return err
	}
	// let a pending login redirect print its hint before the process exits
	defer client.Wait()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runCommand(ctx, hotel.New(client), fs.Args(), out)
}

func newClient(c config.Config, errOut io.Writer) (*apiclient.Client, error) {
	if err := os.MkdirAll(filepath.Dir(c.GetSessionDB()), 0700); err != nil {
		return nil, fmt.Errorf("create session folder: %w", err)
	}
	store, err := boltstore.New(c.GetSessionDB(), c.GetStorageKey())
	if err != nil {
		return nil, err
	}

	options := []apiclient.Option{
		apiclient.WithLogger(log.Logger),
		apiclient.WithTimeout(c.GetRequestTimeout()),
		apiclient.WithRedirectDelay(c.GetRedirectDelay()),
		apiclient.WithLoginPath(c.GetLoginPath()),
		apiclient.WithRefreshPath(c.GetRefreshPath()),
		apiclient.WithNavigator(&cliNavigator{loginPath: c.GetLoginPath(), out: errOut}),
	}
	if c.GetEnv() == "DEV" {
		options = append(options, apiclient.WithTransportMiddleware(apiclient.LoggingMiddleware(log.Logger)))
	}

	return apiclient.New(c.GetAPIURL(), store, options...)
}

func runCommand(ctx context.Context, s *hotel.Services, args []string, out io.Writer) error {
	switch args[0] {
	case "login":
		if len(args) != 3 {
			return errors.New(usage)
		}
		if _, err := s.Auth.Login(ctx, hotel.LoginRequest{EmailOrPhone: args[1], Password: args[2]}); err != nil {
			return fmt.Errorf("login: %w", err)
		}
		log.Info().Str("user", args[1]).Msg("logged in")
		return nil
	case "logout":
		return s.Auth.Logout(ctx)
	case "profile":
		user, err := s.Auth.Profile(ctx)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		return printJSON(out, user)
	case "refresh":
		if _, err := s.Auth.Refresh(ctx); err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
		log.Info().Msg("session refreshed")
		return nil
	case "branches":
		page := 1
		if len(args) > 1 {
			p, err := strconv.Atoi(args[1])
			if err != nil || p < 1 {
				return fmt.Errorf("invalid page %q", args[1])
			}
			page = p
		}
		branches, err := s.Branches.List(ctx, hotel.ListQuery{Paging: hotel.Paging{Page: page, PageSize: 20}})
		if err != nil {
			return fmt.Errorf("branches: %w", err)
		}
		return printJSON(out, branches)
	}
	return fmt.Errorf("unknown command %q\n%s", args[0], usage)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func setupLogging(env string) {
	level := zerolog.InfoLevel
	if env == "DEV" {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}

// cliNavigator has no routes to move between; it tells the operator what to do instead.
type cliNavigator struct {
	loginPath string
	out       io.Writer
}

func (n *cliNavigator) CurrentPath() string { return "" }

func (n *cliNavigator) Navigate(path string) {
	if path == n.loginPath {
		fmt.Fprintln(n.out, "session ended: run `hoteladmin login <email-or-phone> <password>`")
		return
	}
	fmt.Fprintf(n.out, "navigate to %s\n", path)
}
