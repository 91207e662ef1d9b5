// Package networks resolves adapter factories by network name.
package networks

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	serr "github.com/next-trace/scg-social-adapter/contract/errors"
	"github.com/next-trace/scg-social-adapter/contract/social"
	"github.com/next-trace/scg-social-adapter/networks/instagram"
	"github.com/next-trace/scg-social-adapter/networks/twitter"
)

var factories = map[string]func(social.Sink) social.Factory{
	twitter.Network:   twitter.NewFactory,
	instagram.Network: instagram.NewFactory,
}

// Lookup returns the factory registered under name (case-insensitive), bound to sink.
func Lookup(name string, sink social.Sink) (social.Factory, error) { //nolint:ireturn
	mk, ok := factories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, serr.ErrUnknownNetwork)
	}

	return mk(sink), nil
}

// Names lists the registered network names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(factories))
}

// Create looks up name and builds a fresh adapter bound to sink.
func Create(name string, sink social.Sink) (social.Adapter, error) { //nolint:ireturn
	f, err := Lookup(name, sink)
	if err != nil {
		return nil, err
	}

	return f.CreateAdapter()
}
