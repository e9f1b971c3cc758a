package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/blilys/blilys/internal/app"
	"github.com/blilys/blilys/internal/bridge"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	application := &app.App{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Discoverer: &bridge.HueDiscoverer{},
		Connect:    bridge.Connect,
	}

	err := application.Command().RunContext(ctx, os.Args)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logrus.Info("Interrupted")
			return
		}
		logrus.Fatal(err)
	}
}
