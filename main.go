package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/pingbot/chat"
	"github.com/danielhkuo/pingbot/cliparse"
	"github.com/danielhkuo/pingbot/command"
	"github.com/danielhkuo/pingbot/db"
	"github.com/danielhkuo/pingbot/middleware"
	"github.com/danielhkuo/pingbot/models"
	"github.com/danielhkuo/pingbot/presence"
	"github.com/danielhkuo/pingbot/roster"
	"github.com/danielhkuo/pingbot/router"
	"github.com/danielhkuo/pingbot/selection"
)

func main() {
	// .env is optional; real environment variables win
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the roster
	source, closeSource, err := openSource(cfg)
	if err != nil {
		slog.Error("roster source unavailable", "error", err)
		os.Exit(1)
	}
	defer closeSource()

	store := roster.NewStore()
	if err := store.Reload(ctx, source); err != nil {
		slog.Error("initial roster load failed", "error", err)
		os.Exit(1)
	}

	var wg sync.WaitGroup
	goRun := func(name string, fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("background task stopped", "task", name, "error", err)
			}
		}()
	}

	if fileSource, ok := source.(roster.FileSource); ok && cfg.WatchRoster {
		watcher, err := roster.NewWatcher(store, fileSource)
		if err != nil {
			slog.Error("roster watcher failed", "error", err)
			os.Exit(1)
		}
		goRun("roster-watcher", func() error { return watcher.Run(ctx) })
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	goRun("sighup", func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-hup:
				slog.Info("SIGHUP received, reloading roster")
				if err := store.Reload(ctx, source); err != nil {
					slog.Error("roster reload failed, keeping previous roster", "error", err)
				}
			}
		}
	})

	// Connect to the rooms
	messages := make(chan models.Message, 16)
	primaryTracker := presence.NewTracker(presence.DefaultPingableWindow)
	var (
		primary presence.Source
		names   chat.Namer
		poster  chat.Poster
	)
	switch cfg.Transport {
	case cliparse.TransportSocket:
		book := chat.NewNameBook(store)
		// Users already in the room are only known once they post, unless listed
		primaryTracker.Seed(cfg.PresentIDs, cfg.PingableIDs)
		observer := &chat.SocketObserver{
			URL:      cfg.PrimaryWSURL,
			RoomID:   cfg.RoomID,
			BotID:    cfg.BotID,
			Tracker:  primaryTracker,
			Names:    book,
			Messages: messages,
		}
		goRun("primary-room", func() error { return observer.Run(ctx) })
		primary, names = primaryTracker, book
		poster = chat.NewHTTPPoster(cfg.SendURL, cfg.SendFKey)
	default:
		reader := &chat.TerminalReader{
			R:       os.Stdin,
			RoomID:  cfg.RoomID,
			Poster:  cfg.PosterID,
			Tracker: primaryTracker,
		}
		// Not waited for on shutdown: a read from stdin can't be interrupted.
		go func() {
			if err := reader.Run(ctx, messages); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("terminal input failed", "error", err)
			}
			// End of input ends the session
			stop()
		}()
		primary = chat.TerminalPresence{
			Static: presence.StaticSource{
				PresentIDs:  models.NewIDSet(cfg.PresentIDs...),
				PingableIDs: models.NewIDSet(cfg.PingableIDs...),
			},
			Tracker: primaryTracker,
		}
		names = store
		poster = &chat.TerminalPoster{W: os.Stdout}
	}

	var secondary presence.Source
	if cfg.SecondaryWSURL != "" {
		secondaryTracker := presence.NewTracker(presence.DefaultPingableWindow)
		observer := &chat.SocketObserver{
			URL:     cfg.SecondaryWSURL,
			RoomID:  cfg.SecondaryRoomID,
			BotID:   cfg.BotID,
			Tracker: secondaryTracker,
		}
		goRun("secondary-room", func() error { return observer.Run(ctx) })
		secondary = secondaryTracker
	}

	room := chat.NewRoom(poster, chat.Mentions{
		PingFormat:      cfg.PingFormat,
		SuperpingFormat: cfg.SuperpingFormat,
		Room:            primary,
		Names:           names,
	}, cfg.Announce)

	engine := &selection.Engine{
		Roster:    store,
		Primary:   primary,
		Secondary: secondary,
		Mentions:  room,
	}
	dispatcher := command.NewDispatcher(engine, room)

	// Admin API
	var server *http.Server
	if cfg.Port > 0 {
		mux := router.NewRouter(router.Services{
			Store:      store,
			Source:     source,
			Dispatcher: dispatcher,
			Primary:    primary,
			Secondary:  secondary,
		}, cfg)
		server = &http.Server{
			Handler: middleware.WithRequestID(middleware.CORS(mux)),
			Addr:    ":" + strconv.Itoa(cfg.Port),
		}
		go func() {
			slog.Info("Listening", "port", cfg.Port)
			err := server.ListenAndServe()
			if err != nil && err != http.ErrServerClosed {
				slog.Error("Server closed", "error", err)
				stop()
			}
		}()
	}

	if err := room.Join(); err != nil {
		slog.Error("failed to announce joining", "error", err)
	}
	slog.Info("ping bot active", "transport", cfg.Transport, "room", cfg.RoomID, "sites", len(store.Sites()))

	for done := false; !done; {
		select {
		case <-ctx.Done():
			done = true
		case msg := <-messages:
			dispatcher.Dispatch(msg)
		}
	}

	for len(messages) > 0 {
		dispatcher.Dispatch(<-messages)
	}

	slog.Info("shutting down")
	if err := room.Leave(); err != nil {
		slog.Error("failed to announce leaving", "error", err)
	}
	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}
	wg.Wait()
}

// openSource picks the roster source: the database when DATABASE_URL is set,
// the roster file otherwise.
func openSource(cfg cliparse.Config) (roster.Source, func(), error) {
	if cfg.DatabaseURL == "" {
		return roster.FileSource{Path: cfg.RosterFile}, func() {}, nil
	}

	driver, err := db.DriverName(cfg.DatabaseType)
	if err != nil {
		return nil, nil, err
	}
	conn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, nil, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, nil, err
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)
	return roster.SQLSource{DB: conn}, func() { conn.Close() }, nil
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
