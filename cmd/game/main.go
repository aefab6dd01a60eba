package main

import (
	"fmt"
	"os"

	"gamekit/internal/enginecfg"
	"gamekit/internal/env"
	"gamekit/internal/game"
	"gamekit/internal/logger"
)

func main() {
	log := logger.New()

	if n, err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	} else if n > 0 {
		log.Logf("env: %d variables loaded", n)
	}

	prefs, _ := enginecfg.Load()
	prefs.ApplyEnv()

	backends, err := prefs.ParsedBackends()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	forceType, err := prefs.ParsedForceType()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	opts := game.Options{
		Width:            prefs.WindowWidth,
		Height:           prefs.WindowHeight,
		Title:            prefs.WindowTitle,
		Backends:         backends,
		ForceAdapterType: forceType,
		MouseSensitivity: prefs.MouseSensitivity,
		LogFrameStats:    prefs.LogFrameStats,
		Log:              log,
	}

	if err := game.Run[Action, Axis](NewColorWash(), opts); err != nil {
		log.Logf("run: %v", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
