// Package bridge narrows the huego client to the operations the CLI
// needs, so commands and their tests can substitute a stub bridge.
package bridge

import (
	"context"

	"github.com/amimof/huego"
)

// Controller is the subset of Hue bridge operations the dispatcher
// uses: enumerate lights and groups, push state deltas, and register a
// new credential during pairing.
type Controller interface {
	Host() string
	Lights(ctx context.Context) ([]huego.Light, error)
	Groups(ctx context.Context) ([]huego.Group, error)
	SetLight(ctx context.Context, id int, state huego.State) error
	SetGroup(ctx context.Context, id int, state huego.State) error
	Register(ctx context.Context, deviceType string) (string, error)
}

// HueController is a wrapper around huego.Bridge that implements the
// interface above. This allows us to use the upstream bridge directly,
// but also to mock it out in tests.
type HueController struct {
	bridge *huego.Bridge
}

// Connect returns a Controller for the bridge at host. user may be
// empty for an unauthenticated handle; only Register works then.
func Connect(host, user string) Controller {
	return &HueController{bridge: huego.New(host, user)}
}

func (c *HueController) Host() string {
	return c.bridge.Host
}

func (c *HueController) Lights(ctx context.Context) ([]huego.Light, error) {
	return c.bridge.GetLightsContext(ctx)
}

func (c *HueController) Groups(ctx context.Context) ([]huego.Group, error) {
	return c.bridge.GetGroupsContext(ctx)
}

func (c *HueController) SetLight(ctx context.Context, id int, state huego.State) error {
	_, err := c.bridge.SetLightStateContext(ctx, id, state)
	return err
}

func (c *HueController) SetGroup(ctx context.Context, id int, state huego.State) error {
	_, err := c.bridge.SetGroupStateContext(ctx, id, state)
	return err
}

func (c *HueController) Register(ctx context.Context, deviceType string) (string, error) {
	return c.bridge.CreateUserContext(ctx, deviceType)
}

// Make sure the upstream wrapper implements this interface.
var _ Controller = &HueController{}
