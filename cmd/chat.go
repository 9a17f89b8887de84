package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/panelbot/internal/adapters/render/reply"
	"github.com/bnema/panelbot/internal/application"
	"github.com/bnema/panelbot/internal/domain"
)

const chatHelp = "Commands: create, manage, plans, invites, node, help, quit. Reply cancel to end a session."

func newChatCmd(app *app) *cobra.Command {
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run a console conversation that drives create and manage sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := actingUser(cmd)
			if err != nil {
				return err
			}

			driver := &chatDriver{
				app:    app,
				userID: userID,
				out:    &lockedWriter{w: cmd.OutOrStdout()},
			}
			return driver.run(cmd.Context(), cmd.InOrStdin(), metricsAddr)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (for example 127.0.0.1:9090)")

	return cmd
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) println(text string) {
	if text == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.w, text)
}

type chatDriver struct {
	app    *app
	userID domain.UserID
	out    *lockedWriter
}

// run reads lines until EOF or quit while the sweeper evicts idle sessions.
func (d *chatDriver) run(ctx context.Context, in io.Reader, metricsAddr string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return d.app.conversations.Sessions().RunSweeper(gctx, d.app.cfg.SweepInterval(), func(session domain.Session) {
			if session.UserID == d.userID {
				d.out.println(reply.Expired(session))
			}
		})
	})

	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", d.app.metrics.Handler())
		server := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

		g.Go(func() error {
			d.app.logger.Info("metrics server listening", slog.String("addr", metricsAddr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			return server.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer cancel()
		return d.readLoop(gctx, in)
	})

	return g.Wait()
}

func (d *chatDriver) readLoop(ctx context.Context, in io.Reader) error {
	d.out.println(chatHelp)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !d.handle(ctx, line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read chat input: %w", err)
	}
	return nil
}

// handle answers one line. It returns false when the user quits.
func (d *chatDriver) handle(ctx context.Context, line string) bool {
	if _, active := d.app.conversations.Sessions().Active(d.userID); active {
		out, err := d.app.conversations.Submit(ctx, d.userID, line)
		if err != nil {
			d.out.println(reply.Error(err))
			return true
		}
		d.out.println(reply.Outcome(out))
		return true
	}

	switch strings.ToLower(line) {
	case "quit":
		return false
	case "help":
		d.out.println(chatHelp)
	case "create":
		d.startCreate(ctx)
	case "manage":
		out, err := d.app.conversations.StartManage(ctx, d.userID)
		d.reply(out, err)
	case "plans":
		member, err := d.app.members.Get(ctx, d.userID)
		if err != nil {
			d.out.println(reply.Error(err))
			return true
		}
		d.out.println(reply.Plans(d.app.provisioning.Tiers(), member.Invites))
	case "invites":
		status, err := d.app.members.InviteStatus(ctx, d.userID)
		if err != nil {
			d.out.println(reply.Error(err))
			return true
		}
		d.out.println(reply.Invites(status))
	case "node":
		stats, err := d.app.provisioning.NodeStats(ctx)
		if err != nil {
			d.out.println(reply.Error(err))
			return true
		}
		d.out.println(reply.Node(stats))
	default:
		d.out.println(reply.Error(domain.ErrNoActiveSession))
		d.out.println(chatHelp)
	}
	return true
}

func (d *chatDriver) startCreate(ctx context.Context) {
	member, err := d.app.members.Owner(ctx, d.userID)
	if err != nil {
		d.out.println(reply.Error(err))
		return
	}
	out, err := d.app.conversations.StartCreate(ctx, d.userID, member.PanelUserID, member.Invites)
	d.reply(out, err)
}

func (d *chatDriver) reply(out application.Outcome, err error) {
	if err != nil {
		d.out.println(reply.Error(err))
		return
	}
	d.out.println(reply.Outcome(out))
}
