package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/faiface/mainthread"
	"github.com/memmaker/prototype/client"
	"github.com/memmaker/prototype/config"
	"github.com/memmaker/prototype/engine/util"
)

var (
	configDir = flag.String("config", ".", "directory containing prototype.yaml")
	headless  = flag.Bool("headless", false, "play with the autopilot, without window or terminal")
	terminal  = flag.Bool("terminal", false, "play in the terminal instead of a window")
	frames    = flag.Int("frames", 600, "frames to simulate in headless mode")
	logFile   = flag.String("log", "prototype.log", "log file used in terminal mode")
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}

func main() {
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fatal(err)
	}
	settings, err := config.Get()
	if err != nil {
		fatal(err)
	}
	util.SetLogLevel(settings.LogLevel)
	util.SetLogCategories(settings.LogCategories...)

	if *terminal {
		// raw mode output and log lines do not mix
		out, createErr := os.Create(*logFile)
		if createErr != nil {
			fatal(createErr)
		}
		defer out.Close()
		util.SetLogOutput(out)
	}

	session, err := client.NewSession(settings)
	if err != nil {
		fatal(err)
	}
	defer session.Shutdown()

	switch {
	case *headless:
		client.NewAutopilot(session).Run(*frames, 1.0/60.0)
	case *terminal:
		err = client.RunTerminal(session)
	default:
		mainthread.Run(func() {
			err = client.RunWindow(session)
		})
	}
	if err != nil {
		util.LogGameError(fmt.Sprintf("%v", err))
	}
}
