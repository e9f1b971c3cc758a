package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/amimof/huego"
	"github.com/sirupsen/logrus"

	"github.com/blilys/blilys/internal/bridge"
	"github.com/blilys/blilys/internal/config"
	"github.com/blilys/blilys/internal/effects"
)

type targetKind int

const (
	targetLight targetKind = iota
	targetGroup
)

// resolveHost picks the bridge address: the --bridge flag wins, then
// the cached address, then network discovery. Discovery only runs when
// neither earlier source is present.
func (a *App) resolveHost(ctx context.Context, cfg *config.Config) (string, error) {
	if a.bridgeFlag != "" {
		return a.bridgeFlag, nil
	}
	if cfg.Bridge.IP != "" {
		return cfg.Bridge.IP, nil
	}

	logrus.Debug("No bridge address known, running discovery")
	return a.Discoverer.Discover(ctx)
}

// connect returns an authenticated controller for the resolved bridge,
// pairing first when no credential is cached.
func (a *App) connect(ctx context.Context) (bridge.Controller, error) {
	path, err := a.configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	host, err := a.resolveHost(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Bridge.Username == "" {
		return a.pair(ctx, host, path, cfg)
	}

	logrus.WithField("address", host).Debug("Using cached credential")
	return a.Connect(host, cfg.Bridge.Username), nil
}

func (a *App) runPair(ctx context.Context) error {
	path, err := a.configPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	host, err := a.resolveHost(ctx, cfg)
	if err != nil {
		return err
	}

	_, err = a.pair(ctx, host, path, cfg)
	return err
}

// runConfig prints the cached configuration. It never touches the
// network: no discovery, no pairing, no bridge calls.
func (a *App) runConfig() error {
	path, err := a.configPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	return config.Print(a.Stdout, a.Stderr, path, cfg)
}

func (a *App) runLights(ctx context.Context) error {
	ctrl, err := a.connect(ctx)
	if err != nil {
		return err
	}
	lights, err := ctrl.Lights(ctx)
	if err != nil {
		return err
	}

	for _, l := range lights {
		var on bool
		var bri uint8
		var hue uint16
		if l.State != nil {
			on, bri, hue = l.State.On, l.State.Bri, l.State.Hue
		}
		onFlag := "off"
		if on {
			onFlag = "on"
		}
		fmt.Fprintf(a.Stdout, "%2d: %-30s [%3s] [bri %3d] [hue %5d]\n", l.ID, l.Name, onFlag, bri, hue)
	}
	return nil
}

func (a *App) runGroups(ctx context.Context) error {
	ctrl, err := a.connect(ctx)
	if err != nil {
		return err
	}
	groups, err := ctrl.Groups(ctx)
	if err != nil {
		return err
	}

	for _, g := range groups {
		members := strings.Join(sortLightIDs(g.Lights), ", ")
		fmt.Fprintf(a.Stdout, "%2d: %-30s [%s]\n", g.ID, g.Name, members)
	}
	return nil
}

// sortLightIDs orders member light ids numerically: "2", "10", "1"
// renders as 1, 2, 10, not the lexical 1, 10, 2.
func sortLightIDs(ids []string) []string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, errA := strconv.Atoi(sorted[i])
		b, errB := strconv.Atoi(sorted[j])
		if errA != nil || errB != nil {
			return sorted[i] < sorted[j]
		}
		return a < b
	})
	return sorted
}

func (a *App) runTarget(ctx context.Context, kind targetKind, args []string) error {
	id, op, err := parseOperation(args)
	if err != nil {
		return err
	}
	ctrl, err := a.connect(ctx)
	if err != nil {
		return err
	}

	set := func(state huego.State) error {
		if kind == targetGroup {
			return ctrl.SetGroup(ctx, id, state)
		}
		return ctrl.SetLight(ctx, id, state)
	}

	if op.name == opHalloween {
		logrus.WithField("id", id).Debug("Starting halloween mode, interrupt to stop")
		flicker := effects.NewFlicker(func(bri uint8) error {
			return set(huego.State{On: true, Bri: bri})
		})
		return flicker.Run(ctx)
	}

	return set(op.state())
}

const (
	opOn        = "on"
	opOff       = "off"
	opHalloween = "halloween"
)

type operation struct {
	name string
	bri  int // -1 when not supplied
}

// parseOperation parses the "<id> on [--bri N] | off | halloween" tail
// of the light and group commands. The id and the operation are
// positional; --bri is only valid after on.
func parseOperation(args []string) (int, operation, error) {
	if len(args) < 2 {
		return 0, operation{}, errors.New("usage: <id> on [--bri N] | off | halloween")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, operation{}, fmt.Errorf("id must be a number (got %q)", args[0])
	}

	op := operation{name: args[1], bri: -1}
	rest := args[2:]

	switch op.name {
	case opOff, opHalloween:
		if len(rest) != 0 {
			return 0, operation{}, fmt.Errorf("unexpected arguments after %q", op.name)
		}
	case opOn:
		for len(rest) > 0 {
			arg := rest[0]
			rest = rest[1:]

			var val string
			switch {
			case arg == "--bri":
				if len(rest) == 0 {
					return 0, operation{}, errors.New("--bri requires a value")
				}
				val = rest[0]
				rest = rest[1:]
			case strings.HasPrefix(arg, "--bri="):
				val = strings.TrimPrefix(arg, "--bri=")
			default:
				return 0, operation{}, fmt.Errorf("unknown argument %q", arg)
			}

			bri, err := strconv.Atoi(val)
			if err != nil || bri < 0 || bri > 255 {
				return 0, operation{}, fmt.Errorf("brightness must be a number between 0 and 255 (got %q)", val)
			}
			op.bri = bri
		}
	default:
		return 0, operation{}, fmt.Errorf("unknown operation %q", op.name)
	}

	return id, op, nil
}

// state builds the delta sent to the bridge.
func (o operation) state() huego.State {
	if o.name == opOn {
		state := huego.State{On: true}
		if o.bri >= 0 {
			state.Bri = uint8(o.bri)
		}
		return state
	}
	return huego.State{On: false}
}
