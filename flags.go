package main

import (
	"flag"

	"portfoliofx/internal/field"
)

// Command-line flags that control the window, the particle field and the
// optional overlays.
var (
	// widthFlag and heightFlag set the initial window size.
	widthFlag  = flag.Int("width", defaultWidth, "initial window width in pixels")
	heightFlag = flag.Int("height", defaultHeight, "initial window height in pixels")

	// particlesFlag sets the size of the particle pool.
	particlesFlag = flag.Int("particles", field.DefaultCount, "number of particles in the field")

	// finderFlag selects the connection search: brute, grid or opencl.
	finderFlag = flag.String("finder", "brute", "connection search: brute, grid or opencl (requires -tags opencl)")

	// seedFlag fixes the random source; zero seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for particle placement (0 = time based)")

	// framesFlag stops the animation after n frames; zero runs until closed.
	framesFlag = flag.Uint64("frames", 0, "stop after this many frames (0 = run until closed)")

	// headlessFlag runs the field without a window, driven by a ticker.
	headlessFlag = flag.Bool("headless", false, "animate without opening a window")

	// skipIntroFlag hides the boot screen immediately.
	skipIntroFlag = flag.Bool("skip-intro", false, "skip the loading screen")

	// offlineFlag disables the GitHub API request and shows sample stats.
	offlineFlag = flag.Bool("offline", false, "do not contact the GitHub API")

	// recordDefaultPGO captures default.pgo while the field animates.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "capture a CPU profile into default.pgo for 15s")

	// debugFlag enables the FPS overlay and file logging.
	debugFlag = flag.Bool("debug", false, "show FPS overlay and write logs to the logs directory")
)
