// Package cmdconfig binds flags and ENV variables to the command configuration.
package cmdconfig

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/keboola/remote-config-modifier/internal/pkg/env"
	"github.com/keboola/remote-config-modifier/internal/pkg/log"
	"github.com/keboola/remote-config-modifier/internal/pkg/utils/errors"
)

// Binder fills a configuration structure, priority is: flag > ENV > default.
type Binder struct {
	envNaming *env.NamingConvention
	envs      env.Provider
	logger    log.Logger
}

func NewBinder(envs env.Provider, logger log.Logger) *Binder {
	return &Binder{envNaming: env.NewNamingConvention(), envs: envs, logger: logger}
}

// Bind flags and ENVs to the target, the target fields are mapped by the "mapstructure" tag.
func (b *Binder) Bind(ctx context.Context, flags *pflag.FlagSet, target any) error {
	parser := viper.New()
	if err := parser.BindPFlags(flags); err != nil {
		return errors.Wrapf(err, "cannot bind flags: %s", err)
	}

	// ENV is used only if the flag is not set
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Changed {
			return
		}
		if value, found := b.envs.Lookup(b.envNaming.FlagToEnv(flag.Name)); found {
			parser.Set(flag.Name, value)
		}
	})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
		Result:           target,
	})
	if err != nil {
		return errors.Wrapf(err, "cannot create flags decoder: %s", err)
	}
	if err := decoder.Decode(parser.AllSettings()); err != nil {
		return errors.Wrapf(err, "cannot parse flags: %s", err)
	}

	b.logger.Debugf(ctx, "Parsed flags: %s", dump(target))
	return nil
}

func dump(v any) string {
	switch v := v.(type) {
	case *GlobalFlags:
		return fmt.Sprintf("%+v", v.masked())
	default:
		return fmt.Sprintf("%+v", v)
	}
}
