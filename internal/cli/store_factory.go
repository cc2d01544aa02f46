package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/relay"
	"github.com/aretw0/relay/internal/config"
	"github.com/aretw0/relay/pkg/codec"
	"github.com/aretw0/relay/pkg/domain"
)

// NewStore builds a relay store from cfg.
func NewStore(cfg config.Config, logger *slog.Logger, hooks domain.LifecycleHooks) (*relay.Store, error) {
	c, err := codec.ByName(cfg.Codec)
	if err != nil {
		return nil, fmt.Errorf("error configuring store: %w", err)
	}

	opts := []relay.Option{
		relay.WithLogger(logger),
		relay.WithLifecycleHooks(hooks),
		relay.WithCodec(c),
		relay.WithRecovery(cfg.Recover),
		relay.WithStrictEnvelopes(cfg.StrictEnvelopes),
	}

	// Strict stores validate the bundled people actions.
	if cfg.Strict {
		opts = append(opts, relay.WithCatalog(domain.DefaultCatalog()))
	}

	return relay.New(opts...), nil
}
