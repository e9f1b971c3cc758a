package bridge

import (
	"context"

	"github.com/amimof/huego"
	"github.com/sirupsen/logrus"
)

// Discoverer locates a Hue bridge on the local network.
type Discoverer interface {
	Discover(ctx context.Context) (string, error)
}

// HueDiscoverer runs the library's N-UPnP lookup. Discovery blocks for
// a library-defined timeout; cancel ctx to give up earlier.
type HueDiscoverer struct{}

func (d *HueDiscoverer) Discover(ctx context.Context) (string, error) {
	logrus.Debug("Running bridge discovery")
	b, err := huego.DiscoverContext(ctx)
	if err != nil {
		return "", &DiscoveryError{Err: err}
	}
	if b == nil || b.Host == "" {
		return "", &DiscoveryError{}
	}

	logrus.WithField("address", b.Host).Debug("Discovered bridge")
	return b.Host, nil
}

var _ Discoverer = &HueDiscoverer{}
