package focaccia

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/focaccia/pkg/focaccia/constants"
)

// Options configures controllers and the shared announcement pipeline.
type Options struct {
	Orientation      Orientation   // Axis whose arrow keys move focus
	Wrap             bool          // Wrap from last enabled item to first and back
	AnnouncePosition bool          // Announce "Label, 2 of 5" instead of just the label
	TypeaheadTimeout time.Duration // Idle time before the typeahead buffer clears
	AnnounceDebounce time.Duration // Window in which identical announcements collapse
	RepeatDelay      time.Duration // Held-key delay before the first synthetic repeat
	RepeatInterval   time.Duration // Interval between synthetic repeats
	LogPath          string        // Full path for log file including filename (creates parent directories)
	LogLevel         string        // Minimum log level: debug, info, warn, error
	Languages        []string      // BCP 47 language tags for announcement text, most preferred first
}

// DefaultOptions returns the settings used when fields are left zero.
func DefaultOptions() Options {
	return Options{
		Orientation:      Vertical,
		Wrap:             true,
		AnnouncePosition: true,
		TypeaheadTimeout: constants.DefaultTypeaheadTimeout,
		AnnounceDebounce: constants.DefaultAnnounceDebounce,
		RepeatDelay:      constants.DefaultRepeatDelay,
		RepeatInterval:   constants.DefaultRepeatInterval,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.TypeaheadTimeout <= 0 {
		o.TypeaheadTimeout = def.TypeaheadTimeout
	}
	if o.AnnounceDebounce <= 0 {
		o.AnnounceDebounce = def.AnnounceDebounce
	}
	if o.RepeatDelay <= 0 {
		o.RepeatDelay = def.RepeatDelay
	}
	if o.RepeatInterval <= 0 {
		o.RepeatInterval = def.RepeatInterval
	}
	return o
}

// optionsFile is the TOML shape of an options file. Durations are
// milliseconds so files stay plain integers.
type optionsFile struct {
	Orientation        string   `toml:"orientation"`
	Wrap               *bool    `toml:"wrap"`
	AnnouncePosition   *bool    `toml:"announce_position"`
	TypeaheadTimeoutMS int      `toml:"typeahead_timeout_ms"`
	AnnounceDebounceMS int      `toml:"announce_debounce_ms"`
	RepeatDelayMS      int      `toml:"repeat_delay_ms"`
	RepeatIntervalMS   int      `toml:"repeat_interval_ms"`
	LogPath            string   `toml:"log_path"`
	LogLevel           string   `toml:"log_level"`
	Languages          []string `toml:"languages"`
}

// LoadOptions reads a TOML options file, applying defaults for anything the
// file omits.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	return parseOptions(data)
}

func parseOptions(data []byte) (Options, error) {
	var file optionsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Options{}, err
	}

	opts := DefaultOptions()
	switch file.Orientation {
	case "", "vertical":
		opts.Orientation = Vertical
	case "horizontal":
		opts.Orientation = Horizontal
	default:
		return Options{}, fmt.Errorf("focaccia: unknown orientation %q", file.Orientation)
	}
	if file.Wrap != nil {
		opts.Wrap = *file.Wrap
	}
	if file.AnnouncePosition != nil {
		opts.AnnouncePosition = *file.AnnouncePosition
	}
	if file.TypeaheadTimeoutMS > 0 {
		opts.TypeaheadTimeout = time.Duration(file.TypeaheadTimeoutMS) * time.Millisecond
	}
	if file.AnnounceDebounceMS > 0 {
		opts.AnnounceDebounce = time.Duration(file.AnnounceDebounceMS) * time.Millisecond
	}
	if file.RepeatDelayMS > 0 {
		opts.RepeatDelay = time.Duration(file.RepeatDelayMS) * time.Millisecond
	}
	if file.RepeatIntervalMS > 0 {
		opts.RepeatInterval = time.Duration(file.RepeatIntervalMS) * time.Millisecond
	}
	opts.LogPath = file.LogPath
	opts.LogLevel = file.LogLevel
	opts.Languages = file.Languages
	return opts, nil
}
