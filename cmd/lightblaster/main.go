// Command lightblaster runs the arena shooter in the terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/light-blaster/audio"
	"github.com/lixenwraith/light-blaster/config"
	"github.com/lixenwraith/light-blaster/engine"
	"github.com/lixenwraith/light-blaster/input"
	"github.com/lixenwraith/light-blaster/storage"
	"github.com/lixenwraith/light-blaster/ui"
)

var (
	configPath  = flag.String("config", config.DefaultFile, "path to the TOML settings file")
	debugFlag   = flag.Bool("debug", false, "write logs to "+logDir+"/"+logFileName)
	overlayFlag = flag.Bool("overlay", false, "show the status overlay at start")
	seedFlag    = flag.Uint64("seed", 0, "arena seed, 0 for time-based")
	writeConfig = flag.Bool("write-config", false, "write the effective settings to -config and exit")
)

func main() {
	// tview finalizes the screen before re-panicking
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mLIGHT BLASTER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v (continuing)\n", err)
	}
	if logFile == nil && cfg.Debug.Log {
		logFile = setupLogging(true)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	if err != nil {
		log.Printf("[main] warn: %v", err)
	}

	if *seedFlag != 0 {
		cfg.Arena.Seed = *seedFlag
	}
	if *overlayFlag {
		cfg.Debug.Overlay = true
	}

	if *writeConfig {
		if err := config.Write(*configPath, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "write config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *configPath)
		return
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	keys := input.DefaultKeyTable()
	if len(cfg.Keys) > 0 {
		override, err := input.LoadKeyConfig(cfg.Keys)
		if err != nil {
			fmt.Fprintf(os.Stderr, "keys: %v (using defaults)\n", err)
			log.Printf("[input] warn: %v", err)
		} else {
			keys = input.MergeKeyTable(keys, override)
		}
	}

	store := storage.NewFileStore(cfg.Storage.Dir)

	sound := audio.NewSoundManager(store)
	sound.UseDefaults(cfg.AudioPrefs())
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] warn: %v", err)
	}
	defer sound.Cleanup()

	intents := engine.NewIntentBuffer()
	app := ui.New(intents, ui.Options{
		Keys:         keys,
		Overlay:      cfg.Debug.Overlay,
		ToggleSound:  sound.ToggleEnabled,
		SoundEnabled: sound.Prefs().Enabled,
	})

	session := engine.NewSession(engine.Config{
		Width:      cfg.Arena.Width,
		Height:     cfg.Arena.Height,
		Seed:       cfg.Arena.Seed,
		PlayerName: cfg.Player.Name,
		AutoFire:   true,
	}, store, app, intents)
	session.Router.Register(audio.NewHandler(sound))

	app.Attach(session)
	log.Printf("[main] run %s started", session.RunID())
	if err := app.Run(); err != nil {
		return fmt.Errorf("light blaster: %w", err)
	}
	log.Printf("[main] run %s ended, score %d", session.RunID(), session.Score())
	return nil
}
