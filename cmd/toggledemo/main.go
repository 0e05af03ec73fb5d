// Command toggledemo is a terminal host for an AnimatedToggle. It loads
// animation definitions from a YAML resource file (hot-reloaded on change),
// drives the frame loop, and maps keyboard commands to the toggle's
// operations. Invalid commit/cancel calls are caught and shown as a
// transient notice instead of crashing, the way a UI host would toast them.
//
// Commands on stdin:
//
//	t  toggle (click)
//	c  commit the pending change
//	x  cancel the pending change
//	s  print the current state
//	q  quit
package main

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	dotenv "github.com/joho/godotenv"
	envconf "github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-drift/togglekit/pkg/animation"
	"github.com/go-drift/togglekit/pkg/errors"
	"github.com/go-drift/togglekit/pkg/resource"
	"github.com/go-drift/togglekit/pkg/style"
	"github.com/go-drift/togglekit/pkg/widgets"
)

// AppConfig is the demo's environment-driven configuration.
type AppConfig struct {
	ResourceFile  string `env:"TOGGLEDEMO_RESOURCES, default=animations.yaml"`
	Transitioning string `env:"TOGGLEDEMO_TRANSITION_ANIMATION, default=pulse"`
	Commit        string `env:"TOGGLEDEMO_COMMIT_ANIMATION, default=pop"`
	FrameRate     int    `env:"TOGGLEDEMO_FRAME_RATE, default=60"`
	LogFile       string `env:"TOGGLEDEMO_LOG_FILE"`
	Debug         bool   `env:"TOGGLEDEMO_DEBUG"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := dotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	var cfg AppConfig
	envconf.MustProcess(ctx, &cfg)

	logger := configureLogger(cfg)
	defer logger.Sync()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("toggledemo failed", zap.Error(err))
	}
}

func configureLogger(cfg AppConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	sink := zapcore.AddSync(os.Stderr)
	if cfg.LogFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}
	return zap.New(zapcore.NewCore(encoder, sink, level))
}

func run(ctx context.Context, cfg AppConfig, logger *zap.Logger) error {
	registries, err := resource.NewWatcher(cfg.ResourceFile).Watch(ctx)
	if err != nil {
		return err
	}
	registry := <-registries
	logger.Info("loaded animation resources",
		zap.String("file", cfg.ResourceFile),
		zap.Strings("animations", registry.Names()))

	player := animation.NewPlayer()
	control := newConsoleControl()
	toggle, err := buildToggle(ctx, cfg, registry, player, control, logger)
	if err != nil {
		return err
	}

	commands := readCommands(ctx)
	frames := time.NewTicker(time.Second / time.Duration(cfg.FrameRate))
	defer frames.Stop()

	fmt.Println("toggledemo: t=toggle c=commit x=cancel s=state q=quit")
	control.paint()

	// Everything below runs on this goroutine: frame stepping, command
	// handling and resource swaps, so the toggle sees single-threaded use.
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-frames.C:
			animation.StepTickers()

		case registry, ok := <-registries:
			if !ok {
				return nil
			}
			if toggle.State() != widgets.StateStable {
				logger.Warn("resource update ignored while a transition is in progress")
				continue
			}
			next, err := buildToggle(ctx, cfg, registry, player, control, logger)
			if err != nil {
				logger.Warn("resource update rejected", zap.Error(err))
				continue
			}
			toggle = next
			logger.Info("animation resources reloaded")

		case line, ok := <-commands:
			if !ok {
				return nil
			}
			switch line {
			case "t":
				toggle.HandleClick()
			case "c":
				notifyOnError(toggle.CommitCheckedChange())
			case "x":
				notifyOnError(toggle.CancelCheckedChange())
			case "s":
				fmt.Printf("state=%s checked=%v\n", toggle.State(), toggle.IsChecked())
			case "q":
				return nil
			case "":
			default:
				fmt.Printf("unknown command %q\n", line)
			}
		}
	}
}

func buildToggle(ctx context.Context, cfg AppConfig, registry *resource.Registry, player *animation.Player, control *consoleControl, logger *zap.Logger) (*widgets.AnimatedToggle, error) {
	transitioning, err := registry.Animation(cfg.Transitioning)
	if err != nil {
		return nil, err
	}
	commit, err := registry.Animation(cfg.Commit)
	if err != nil {
		return nil, err
	}
	return widgets.NewAnimatedToggle(control, player, transitioning, commit,
		widgets.WithLogger(logger),
		widgets.WithContext(ctx))
}

// notifyOnError shows contract violations as a transient notice, the toast
// analog for a terminal host.
func notifyOnError(err error) {
	if err == nil {
		return
	}
	if stderrors.Is(err, errors.ErrInvalidOperation) {
		fmt.Printf("** %v **\n", err)
		return
	}
	errors.Report(errors.Wrap("toggledemo.command", errors.KindUnknown, err))
}

// readCommands feeds trimmed stdin lines to the UI loop.
func readCommands(ctx context.Context) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			select {
			case out <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// consoleControl is the demo's Checkable: it stores the value and repaints
// a one-line representation whenever the reported state set changes.
type consoleControl struct {
	checked bool
	states  style.StateSet
	visuals *style.StateList
}

func newConsoleControl() *consoleControl {
	return &consoleControl{
		visuals: style.NewStateList(
			style.Rule{When: style.NewStateSet(style.StateChecked, style.StateActive), Resource: "[ ~ON~ ]"},
			style.Rule{When: style.NewStateSet(style.StateActive), Resource: "[ ~off~ ]"},
			style.Rule{When: style.NewStateSet(style.StateChecked), Resource: "[  ON  ]"},
		).WithDefault("[  off ]"),
	}
}

func (c *consoleControl) Render(states style.StateSet) {
	if states == c.states {
		return
	}
	c.states = states
	c.paint()
}

func (c *consoleControl) IsChecked() bool { return c.checked }

func (c *consoleControl) SetChecked(checked bool) { c.checked = checked }

func (c *consoleControl) paint() {
	fmt.Println(c.visuals.Resolve(c.states))
}
