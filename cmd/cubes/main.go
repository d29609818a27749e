package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/leterax/go-cubes/internal/config"
	"github.com/leterax/go-cubes/internal/logger"
	"github.com/leterax/go-cubes/internal/openglhelper"
	"github.com/leterax/go-cubes/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

// run owns everything that must be released before the process exits and
// returns the exit status.
func run(cfg *config.Config) int {
	defer logger.Sync()

	logger.Info("Starting go-cubes",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("assets", cfg.Assets.Root))

	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		logger.Error("Failed to create window", zap.Error(err))
		return -1
	}

	renderer, err := render.NewRenderer(cfg, window)
	if err != nil {
		var compileErr *openglhelper.CompileError
		if errors.As(err, &compileErr) {
			logger.Error("Shader build failed",
				zap.String("stage", compileErr.Stage),
				zap.String("log", compileErr.Log))
		} else {
			logger.Error("Failed to initialize renderer", zap.Error(err))
		}
		window.Close()
		return 1
	}

	renderer.Run()
	logger.Info("Exiting")
	return 0
}
