package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
	slogmulti "github.com/samber/slog-multi"

	"github.com/adrianliechti/wingman-research/pkg/config"
)

// Setup installs the default slog logger. The log file always receives
// debug records; stderr, when given, receives info and above.
func Setup(cfg *config.Config, stderr io.Writer) (func(), error) {
	var handlers []slog.Handler

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)

	if err != nil {
		return func() {}, err
	}

	handlers = append(handlers, console.NewHandler(f, &console.HandlerOptions{
		AddSource: true,
		Level:     slog.LevelDebug,
		NoColor:   true,
	}))

	if stderr != nil {
		handlers = append(handlers, console.NewHandler(stderr, &console.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))

	return func() {
		f.Close()
	}, nil
}
