package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/joho/godotenv/autoload"

	"portfoliofx/internal/applog"
	"portfoliofx/internal/field"
	"portfoliofx/internal/github"
)

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())

	logFile, err := applog.Setup(*debugFlag)
	if err != nil {
		log.Fatalf("Logging setup failed: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if *recordDefaultPGO {
		stop, err := recordCPUProfile("default.pgo", pgoRecordDuration)
		if err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
		defer stop()
		log.Printf("Recording default.pgo for %s", pgoRecordDuration)
	}

	finder, closeFinder := selectPairFinder(*finderFlag, *particlesFlag)
	defer closeFinder()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	f := field.New(float64(*widthFlag), float64(*heightFlag), *particlesFlag,
		rand.New(rand.NewSource(seed)), field.WithFinder(finder))

	var cont func(uint64) bool
	if *framesFlag > 0 {
		cont = field.UntilFrame(*framesFlag)
	}
	loop := field.NewLoop(f, cont)
	go func() {
		<-ctx.Done()
		loop.Stop()
	}()

	if *headlessFlag {
		if err := runHeadless(ctx, loop); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatalf("Headless run failed: %v", err)
		}
		return
	}

	var gh *github.Client
	if !*offlineFlag {
		gh = github.NewClient(envOr(envGitHubUser, defaultGitHubUser), os.Getenv(envGitHubToken))
		gh.BaseURL = envOr(envGitHubAPI, github.DefaultBaseURL)
	}
	g := newGame(ctx, loop, gh, *skipIntroFlag)

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("Portfolio")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
}
