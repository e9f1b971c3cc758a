// Package app wires the command surface to the config store and the
// bridge.
package app

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/blilys/blilys/internal/bridge"
	"github.com/blilys/blilys/internal/config"
)

// App holds the dispatcher's collaborators. Tests substitute fakes for
// the discoverer, the connect function, and the I/O streams.
type App struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	Discoverer bridge.Discoverer
	Connect    func(host, user string) bridge.Controller

	// ConfigPath overrides the per-user config location when non-empty.
	ConfigPath string

	bridgeFlag string
	logLevel   string
}

// Command builds the CLI application.
func (a *App) Command() *cli.App {
	return &cli.App{
		Name:      "blilys",
		Usage:     "Control Philips Hue lights from the command line",
		Writer:    a.Stdout,
		ErrWriter: a.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "bridge",
				Usage:       "Bridge IP address. If not provided, the cached address or auto discovery is used",
				Destination: &a.bridgeFlag,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Level of logging",
				Value:       "warning",
				Destination: &a.logLevel,
			},
		},

		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}

			logrus.SetLevel(level)
			return nil
		},

		Commands: []*cli.Command{
			{
				Name:   "pair",
				Usage:  "Pair with the bridge to obtain a username",
				Action: func(c *cli.Context) error { return a.runPair(c.Context) },
			},
			{
				Name:   "config",
				Usage:  "Show the cached configuration",
				Action: func(c *cli.Context) error { return a.runConfig() },
			},
			{
				Name:   "lights",
				Usage:  "List available lights",
				Action: func(c *cli.Context) error { return a.runLights(c.Context) },
			},
			{
				Name:   "groups",
				Usage:  "List available groups",
				Action: func(c *cli.Context) error { return a.runGroups(c.Context) },
			},
			{
				Name:      "light",
				Usage:     "Control a light",
				ArgsUsage: "<id> on [--bri N] | off | halloween",
				Action: func(c *cli.Context) error {
					return a.runTarget(c.Context, targetLight, c.Args().Slice())
				},
			},
			{
				Name:      "group",
				Usage:     "Control a group",
				ArgsUsage: "<id> on [--bri N] | off | halloween",
				Action: func(c *cli.Context) error {
					return a.runTarget(c.Context, targetGroup, c.Args().Slice())
				},
			},
		},
	}
}

func (a *App) configPath() (string, error) {
	if a.ConfigPath != "" {
		return a.ConfigPath, nil
	}
	return config.ResolvePath()
}
