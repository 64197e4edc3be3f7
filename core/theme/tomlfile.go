/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–23 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import (
	"github.com/BurntSushi/toml"

	"github.com/npillmayer/wyse/core"
	"github.com/npillmayer/wyse/core/geom"
)

// A theme file is a TOML document with a [metrics] table. Every entry is
// optional; absent entries keep their built-in default. Example:
//
//	[metrics]
//	margin-outer   = "6px"
//	margin-inner   = "3px"
//	frame-width    = "1px"
//	frame-inner    = "2px"
//	popup-distance = "4px"
//
type themeFile struct {
	Metrics metricsTable `toml:"metrics"`
}

type metricsTable struct {
	MarginOuter   string `toml:"margin-outer"`
	MarginInner   string `toml:"margin-inner"`
	FrameWidth    string `toml:"frame-width"`
	FrameInner    string `toml:"frame-inner"`
	PopupDistance string `toml:"popup-distance"`
}

// LoadRegisters reads a TOML theme file and returns registers with the
// file's metrics applied on top of the defaults.
func LoadRegisters(path string) (*Registers, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read theme file %q", path)
	}
	return tf.apply()
}

// DecodeRegisters behaves like LoadRegisters, with the theme file given
// as a string.
func DecodeRegisters(document string) (*Registers, error) {
	var tf themeFile
	if _, err := toml.Decode(document, &tf); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode theme document")
	}
	return tf.apply()
}

func (tf themeFile) apply() (*Registers, error) {
	regs := NewRegisters()
	entries := []struct {
		param Param
		value string
	}{
		{P_MARGIN_OUTER, tf.Metrics.MarginOuter},
		{P_MARGIN_INNER, tf.Metrics.MarginInner},
		{P_FRAME_WIDTH, tf.Metrics.FrameWidth},
		{P_FRAME_INNER, tf.Metrics.FrameInner},
		{P_POPUP_DISTANCE, tf.Metrics.PopupDistance},
	}
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		d, err := geom.ParsePx(e.value)
		if err != nil || d < 0 {
			return nil, core.Error(core.EINVALID, "theme metric %s: not a pixel dimension: %q",
				e.param, e.value)
		}
		regs.Set(e.param, d)
	}
	tracer().Infof("theme metrics loaded")
	return regs, nil
}
