/*
This is an example of application that will use the
engine package to sample the vector library
*/
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/vecmath/engine"
	"github.com/spaghettifunk/vecmath/engine/core"
	"github.com/spaghettifunk/vecmath/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to the TOML config file")
	watch := flag.Bool("watch", false, "re-run the testbed whenever the config file changes")
	flag.Parse()

	tb := testbed.NewTestbed(&engine.ApplicationConfig{
		Name:       "vecmath testbed",
		ConfigPath: *configPath,
		Watch:      *watch,
	})

	engine, err := engine.New(tb.Game)
	if err != nil {
		core.LogFatal(err.Error())
	}

	if err := engine.Initialize(); err != nil {
		core.LogFatal(err.Error())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		if err := engine.Quit(ctx); err != nil {
			cancel()
		}
	}()

	// run engine
	runErr := engine.Run(ctx)
	if err := engine.Shutdown(); err != nil {
		core.LogError(err.Error())
	}
	if runErr != nil {
		core.LogError(runErr.Error())
		os.Exit(1)
	}
}
