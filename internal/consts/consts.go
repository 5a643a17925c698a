package consts

// Default element and source values shared by the config layer and the CLI.
const (
	DefaultTopology    = "series"
	DefaultResistance  = 10.0 // Resistance (Ohm)
	DefaultInductance  = 1e-3 // Inductance (H)
	DefaultCapacitance = 1e-4 // Capacitance (F)

	DefaultSourceFrequency = 50.0 // Source frequency (Hz)
	DefaultSourceAmplitude = 1.0  // Source amplitude (V)

	DefaultDuration = 5.0 // Simulation window (s)
	DefaultPoints   = 1000

	CompareDuration = 3.0 // Damping comparison window (s)
)
