package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/blilys/blilys/internal/bridge"
	"github.com/blilys/blilys/internal/config"
)

// pairDeviceType is the identifier the bridge shows on its whitelist.
const pairDeviceType = "blilys"

// pair runs the interactive pairing flow: prompt the user to press the
// bridge button, block on one line of input as the continue gate,
// register a new user, then persist the address and credential
// together in a single save. A failed registration leaves the config
// file untouched.
func (a *App) pair(ctx context.Context, host, path string, cfg *config.Config) (bridge.Controller, error) {
	fmt.Fprintf(a.Stderr, "Discovered Philips Hue bridge at %s.\n", host)
	fmt.Fprintln(a.Stderr, "To pair, press the button on your bridge now.")
	fmt.Fprintln(a.Stderr, "Then, press enter to continue pairing ...")
	if _, err := bufio.NewReader(a.Stdin).ReadString('\n'); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading confirmation: %w", err)
	}

	fmt.Fprintln(a.Stderr, "Registering user ...")
	username, err := a.Connect(host, "").Register(ctx, pairDeviceType)
	if err != nil {
		return nil, &bridge.PairingError{Err: err}
	}
	fmt.Fprintln(a.Stderr, "Pairing complete.")

	fmt.Fprintln(a.Stderr, "Saving configuration ...")
	cfg.Bridge.IP = host
	cfg.Bridge.Username = username
	if err := config.Save(path, cfg); err != nil {
		return nil, err
	}
	if err := config.Print(a.Stdout, a.Stderr, path, cfg); err != nil {
		return nil, err
	}

	return a.Connect(host, username), nil
}
