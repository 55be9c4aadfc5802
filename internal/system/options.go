package system

import (
	"github.com/ardentgb/gbcore/internal/types"
	"github.com/ardentgb/gbcore/pkg/log"
)

// Option is a function that configures a System at construction time,
// following the teacher's gameboy.Opt functional-option pattern
// (internal/gameboy/options.go), reduced to the handful of knobs this
// headless core actually exposes.
type Option func(*options)

type options struct {
	model  types.Model
	logger log.Logger
}

// WithModel forces the hardware model rather than letting it be
// auto-detected from the cartridge header's CGB flag at 0x143. A DMG
// family model disables CGB features even on a CGB-flagged cartridge;
// a CGB family model enables them even on a DMG-only cartridge.
func WithModel(m types.Model) Option {
	return func(o *options) { o.model = m }
}

// WithLogger installs a diagnostic logger used by the CPU and PPU for
// optional tracing; defaults to a no-op logger.
func WithLogger(l log.Logger) Option {
	return func(o *options) { o.logger = l }
}

func newOptions(opts []Option) options {
	o := options{model: types.Unset, logger: log.NewNullLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// resolveColorMode reports whether CGB features should be active,
// honoring a forced model over the cartridge header's own flag.
func resolveColorMode(headerCGB bool, model types.Model) bool {
	switch model {
	case types.CGB0, types.CGBABC:
		return true
	case types.DMG0, types.DMGABC, types.MGB, types.SGB, types.SGB2, types.AGB:
		return false
	default: // types.Unset: auto-detect
		return headerCGB
	}
}
