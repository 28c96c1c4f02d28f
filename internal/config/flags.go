package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLevel    = flag.String("level", "", "Path to a YAML level description")
	flagTicks    = flag.Int("ticks", 0, "Number of ticks to simulate")
	flagPack     = flag.String("pack", "", "Path to an asset pack blob")
	flagRecord   = flag.String("record", "", "Write a replay to this path")
	flagNoAudio  = flag.Bool("no-audio", false, "Disable the audio thread")
	flagVerify   = flag.String("verify", "", "Check a replay against the level and exit")
	flagRealtime = flag.Bool("realtime", false, "Pace ticks at the configured tick rate")
	flagWrite    = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the path given via --write-config, if any.
func WriteConfigPath() string {
	return *flagWrite
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLevel != "" {
		cfg.Data.Level = *flagLevel
	}
	if *flagTicks > 0 {
		cfg.Simulation.Ticks = *flagTicks
	}
	if *flagPack != "" {
		cfg.Data.AssetPack = *flagPack
	}
	if *flagRecord != "" {
		cfg.Data.Record = *flagRecord
	}
	if *flagNoAudio {
		cfg.Audio.Enabled = false
	}
	if *flagVerify != "" {
		cfg.Data.Verify = *flagVerify
	}
	if *flagRealtime {
		cfg.Simulation.Realtime = true
	}
}
