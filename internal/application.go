package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the application on the process's stdin and stdout.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one game on the given input and output until it is decided, the input closes or ctx is done.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	opts, err := gameOptions(conf)
	if err != nil {
		return err
	}

	gameUseCase := usecase.NewGameUseCase(logger, entity.NewGame(opts))
	gameConsole := console.New(logger, gameUseCase, in, out, console.Config{
		NoColor:  conf.NoColor,
		ExitOnFinish: conf.ExitOnFinish,
	})

	// run console
	consoleErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting console")
		consoleErrCh <- gameConsole.Start(ctx)
	}()

	select {
	case err = <-consoleErrCh:
		if err != nil && ctx.Err() == nil {
			log.Error("Console error", "error", err)
			return fmt.Errorf("console error: %w", err)
		}

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func gameOptions(conf *config.Config) (entity.Options, error) {
	if conf.IsRandomFirstPlayer() {
		return entity.Options{}, nil
	}

	mark, err := entity.ParseMark(conf.FirstPlayer)
	if err != nil {
		return entity.Options{}, fmt.Errorf("failed to read first player: %w", err)
	}

	return entity.Options{InitialTurn: mark}, nil
}
