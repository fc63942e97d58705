// Package featureflags wraps the Rollout (CloudBees) SDK. Two flags
// are defined: an Offline kill switch that turns the whole API away,
// and the runtime log level. Without an API key the SDK is never set
// up and every flag serves its default.
package featureflags

import (
	"context"

	"github.com/rollout/rox-go/v5/server"
)

// Container holds every flag the service knows about
type Container struct {
	Offline  server.RoxFlag
	LogLevel server.RoxString
}

var flags = &Container{
	Offline:  server.NewRoxFlag(false),
	LogLevel: server.NewRoxString("info", []string{"debug", "info", "warn", "error"}),
}

var rox *server.Rox

// Values returns the flag container. Safe to call before Init; flags
// then report their defaults.
func Values() *Container {
	return flags
}

// Init registers the container and, when an API key is given, connects
// to the flag service. Waits for setup until ctx expires.
func Init(ctx context.Context, apiKey string) error {
	rox = server.NewRox()
	rox.Register("", flags)

	if apiKey == "" {
		// defaults-only mode
		return nil
	}

	done := rox.Setup(apiKey, server.NewRoxOptions(server.RoxOptionsBuilder{}))
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown releases the SDK
func Shutdown() {
	if rox != nil {
		<-rox.Shutdown()
	}
}
