package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/logging"
	"github.com/tomz197/closestapproach/internal/config"
	applog "github.com/tomz197/closestapproach/internal/logging"
	"github.com/tomz197/closestapproach/internal/physics"
	"github.com/tomz197/closestapproach/internal/session"
	"golang.org/x/term"
)

const banner = "closest approach: enter px py ux uy qx qy vx vy, or q to quit"

func main() {
	host := config.GetEnv("SSH_HOST", config.DefaultSSHHost)
	port := config.GetEnv("SSH_PORT", config.DefaultSSHPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", config.DefaultSSHHostKeyPath)

	level := config.GetEnv(config.EnvLogLevel, config.DefaultLogLevel)
	if config.GetEnvBool(config.EnvTrace, false) {
		level = "debug"
	}
	logger := applog.New(os.Stderr, applog.Options{
		Level:  level,
		Prefix: "ssh",
		Logfmt: config.GetEnv(config.EnvLogFormat, config.DefaultLogFormat) == "logfmt",
	})
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithIdleTimeout(config.SessionIdleTimeout),
		wish.WithMiddleware(
			queryMiddleware(logger),
			logging.Middleware(),
		),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// queryMiddleware runs the query loop on each SSH session. Intermediate
// values are traced under the session's user name.
func queryMiddleware(logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			opts := session.Options{
				Calculator: physics.Calculator{Logger: logger.With("user", sess.User())},
				Radius:     config.GetEnvFloat(config.EnvRadius, config.DefaultRadius),
			}
			// PTY clients get echo and line editing from term.Terminal.
			var lines session.LineReader = session.NewScanner(sess)
			var out io.Writer = sess
			if _, _, ok := sess.Pty(); ok {
				t := term.NewTerminal(sess, config.Prompt)
				lines, out = t, t
			}

			fmt.Fprintln(out, banner)
			if err := session.Run(lines, out, opts); err != nil {
				logger.Error("session error", "user", sess.User(), "err", err)
			}

			logger.Info("Session ended", "user", sess.User())
			next(sess)
		}
	}
}
