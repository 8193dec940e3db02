package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/blueprint/audio"
	"github.com/lixenwraith/blueprint/core"
	"github.com/lixenwraith/blueprint/engine"
	"github.com/lixenwraith/blueprint/flow"
	"github.com/lixenwraith/blueprint/input"
	"github.com/lixenwraith/blueprint/logging"
	"github.com/lixenwraith/blueprint/service"
	"github.com/lixenwraith/blueprint/terminal"
)

func runAnimation(cmd *cobra.Command, _ []string) error {
	var err error
	logger, err = logging.Setup(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return err
	}

	sceneOpts, err := cfg.SceneOptions()
	if err != nil {
		return err
	}
	pointerOpts, err := cfg.PointerOptions()
	if err != nil {
		return err
	}
	surfaceOpts, err := cfg.SurfaceOptions()
	if err != nil {
		return err
	}

	scene := flow.NewScene(sceneOpts)
	pointer := input.NewPointer(scene, pointerOpts)
	chime := audio.NewChime(cfg.ChimeOptions(), logger)
	scene.OnArrival(func(p flow.Packet) { chime.PlayArrival(p.To) })

	screens := terminal.NewScreenService(nil, surfaceOpts.Background)
	hub := service.NewHub(logger)
	for _, svc := range []service.Service{screens, chime} {
		if err := hub.Register(svc); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := hub.InitAll(ctx); err != nil {
		return err
	}
	defer hub.StopAll()

	screen := screens.Screen()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)
	// Deferred last so a panic restores the terminal before anything else unwinds
	defer core.Recover()

	if err := hub.StartAll(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	surface := terminal.NewSurface(screen, surfaceOpts)
	disp := engine.NewDispatcher(cfg.FrameInterval(), engine.SystemClock{}, logger)
	loop := engine.NewLoop(scene, pointer, logger)

	disp.AddListener(input.IntentQuit, func(engine.Event) { cancel() })
	disp.AddListener(input.IntentToggleMute, func(engine.Event) { chime.ToggleMute() })

	// Without a drawing context the loop stays stopped for this run; quit still works
	if err := loop.Mount(surface, disp, disp); err != nil {
		if !errors.Is(err, engine.ErrNoContext) {
			return err
		}
		logger.Warn("animation not mounted", zap.Error(err))
	}

	poller := terminal.NewPoller(screen, surface, input.DefaultKeyTable(), disp, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(core.Guard(func() error {
		err := disp.Run(gctx)
		loop.Unmount()
		// Finalizing the screen unblocks the poller
		if stopErr := screens.Stop(); stopErr != nil {
			logger.Warn("screen stop failed", zap.Error(stopErr))
		}
		return err
	}))
	g.Go(core.Guard(poller.Run))

	if err := g.Wait(); err != nil {
		return fmt.Errorf("animation stopped: %w", err)
	}

	stats := scene.Stats()
	logger.Info("animation stopped",
		zap.Uint64("ticks", stats.Ticks),
		zap.Uint64("packets", stats.PacketsSpawned),
		zap.Uint64("arrivals", stats.Arrivals),
		zap.Uint64("particles", stats.Particles),
		zap.Uint64("dropped_particles", stats.Dropped),
		zap.Uint64("dropped_events", disp.Dropped()),
		zap.Uint64("chimes", chime.Played()))
	return nil
}
