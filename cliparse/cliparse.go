package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/pingbot/models"
)

const (
	TransportTerminal = "terminal"
	TransportSocket   = "socket"
)

type Config struct {
	Port         int
	RosterFile   string
	DatabaseURL  string
	DatabaseType string
	WatchRoster  bool

	Transport       string
	RoomID          int64
	BotID           models.UserID
	PosterID        models.UserID
	PresentIDs      IDList
	PingableIDs     IDList
	PrimaryWSURL    string
	SecondaryWSURL  string
	SecondaryRoomID int64
	SendURL         string
	SendFKey        string
	PingFormat      string
	SuperpingFormat string
	Announce        bool

	AdminKeySalt string
	LogLevel     string
	CommandRPS   float64
	CommandBurst int
}

// IDList is a comma-separated list of user IDs.
type IDList []models.UserID

func (l *IDList) String() string {
	parts := make([]string, len(*l))
	for i, id := range *l {
		parts[i] = strconv.FormatInt(int64(id), 10)
	}
	return strings.Join(parts, ",")
}

func (l *IDList) Set(value string) error {
	*l = nil
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user ID %q", part)
		}
		*l = append(*l, models.UserID(id))
	}
	return nil
}

type userID struct{ p *models.UserID }

func (u userID) String() string {
	if u.p == nil {
		return "0"
	}
	return strconv.FormatInt(int64(*u.p), 10)
}

func (u userID) Set(value string) error {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return err
	}
	*u.p = models.UserID(id)
	return nil
}

// envFallback maps flag names to the environment variables consulted when
// the flag is not given on the command line.
var envFallback = map[string]string{
	"p":                "PORT",
	"r":                "ROSTER_FILE",
	"d":                "DATABASE_URL",
	"t":                "DATABASE_TYPE",
	"watch":            "WATCH_ROSTER",
	"transport":        "TRANSPORT",
	"room":             "ROOM_ID",
	"bot-id":           "BOT_ID",
	"poster":           "POSTER_ID",
	"present":          "PRESENT_IDS",
	"pingable":         "PINGABLE_IDS",
	"primary-ws":       "PRIMARY_WS_URL",
	"secondary-ws":     "SECONDARY_WS_URL",
	"secondary-room":   "SECONDARY_ROOM_ID",
	"send-url":         "SEND_URL",
	"fkey":             "SEND_FKEY",
	"ping-format":      "PING_FORMAT",
	"superping-format": "SUPERPING_FORMAT",
	"announce":         "ANNOUNCE",
	"admin-salt":       "ADMIN_KEY_SALT",
	"log-level":        "LOG_LEVEL",
	"rps":              "COMMAND_RPS",
	"burst":            "COMMAND_BURST",
}

// ParseFlags parses args, falls back to environment variables for every flag
// not given, and validates the result.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("pingbot", flag.ContinueOnError)

	// Roster and admin API
	fs.IntVar(&cfg.Port, "p", 3318, "Admin API port (0 disables the API)")
	fs.StringVar(&cfg.RosterFile, "r", "moderators.json", "Roster file (JSON or YAML)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL; loads the roster from SQL instead of the file")
	fs.StringVar(&cfg.DatabaseType, "t", "sqlite", "Database type (sqlite or postgres)")
	fs.BoolVar(&cfg.WatchRoster, "watch", false, "Reload the roster file when it changes")

	// Chat transport
	fs.StringVar(&cfg.Transport, "transport", TransportTerminal, "Chat transport (terminal or socket)")
	fs.Int64Var(&cfg.RoomID, "room", 0, "Primary room ID")
	fs.Var(userID{&cfg.BotID}, "bot-id", "The bot's own user ID")
	fs.Var(userID{&cfg.PosterID}, "poster", "User ID of terminal input")
	fs.Var(&cfg.PresentIDs, "present", "Comma-separated user IDs present in the room at startup")
	fs.Var(&cfg.PingableIDs, "pingable", "Comma-separated user IDs pingable from the room at startup")
	fs.StringVar(&cfg.PrimaryWSURL, "primary-ws", "", "Event websocket URL of the primary room")
	fs.StringVar(&cfg.SecondaryWSURL, "secondary-ws", "", "Event websocket URL of the secondary room")
	fs.Int64Var(&cfg.SecondaryRoomID, "secondary-room", 0, "Secondary room ID")
	fs.StringVar(&cfg.SendURL, "send-url", "", "URL messages are posted to")
	fs.StringVar(&cfg.SendFKey, "fkey", "", "Form key sent with each message (prefer env)")
	fs.StringVar(&cfg.PingFormat, "ping-format", "@{}", "Mention format for pingable users")
	fs.StringVar(&cfg.SuperpingFormat, "superping-format", "@@{}", "Mention format by raw user ID")
	fs.BoolVar(&cfg.Announce, "announce", true, "Announce joining and leaving the room")

	// Secrets and operations
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	fs.Float64Var(&cfg.CommandRPS, "rps", 1, "POST /commands requests per second per client")
	fs.IntVar(&cfg.CommandBurst, "burst", 5, "POST /commands burst per client")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })
	for name, env := range envFallback {
		if given[name] {
			continue
		}
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if err := fs.Set(name, value); err != nil {
			return Config{}, fmt.Errorf("invalid %s env variable: %w", env, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.Port < 0 {
		return errors.New("port must not be negative")
	}
	if cfg.Port > 0 && cfg.AdminKeySalt == "" {
		return errors.New("ADMIN_KEY_SALT required when the admin API is enabled")
	}
	if cfg.DatabaseURL == "" && cfg.RosterFile == "" {
		return errors.New("roster source required (use -r or -d)")
	}
	switch cfg.Transport {
	case TransportTerminal:
	case TransportSocket:
		if cfg.PrimaryWSURL == "" || cfg.SendURL == "" {
			return errors.New("socket transport requires PRIMARY_WS_URL and SEND_URL")
		}
		if cfg.RoomID == 0 {
			return errors.New("socket transport requires ROOM_ID")
		}
	default:
		return fmt.Errorf("unknown transport %q", cfg.Transport)
	}
	if cfg.SecondaryWSURL != "" && cfg.SecondaryRoomID == 0 {
		return errors.New("SECONDARY_WS_URL requires SECONDARY_ROOM_ID")
	}
	if !strings.Contains(cfg.PingFormat, "{}") || !strings.Contains(cfg.SuperpingFormat, "{}") {
		return errors.New("ping formats must contain {}")
	}
	if cfg.CommandRPS <= 0 || cfg.CommandBurst <= 0 {
		return errors.New("command rate limit must be positive")
	}
	return nil
}
