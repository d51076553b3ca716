package cablecam

func newTestConfig() *Config {
	cfg := &Config{
		Mode:                  ModeLimiter,
		StickNeutralPos:       1500,
		StickNeutralRange:     10,
		StickMaxAccel:         500,
		StickMaxSpeed:         500,
		StickMaxAccelSafemode: 500,
		StickMaxSpeedSafemode: 500,
		StickSpeedFactor:      1,
		MaxPositionError:      10,
		PosStart:              -100000,
		PosEnd:                100000,
	}
	cfg.SetPID(1, 0, 0)
	return cfg
}
