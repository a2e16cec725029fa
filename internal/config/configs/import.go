package configs

// Import holds the names the tabular import pipeline keys on. Sentinel is
// the reserved campaign name whose rows contribute only to settings
// aggregation. PassthroughAdName is the ad group name whose ads keep the
// group name instead of taking their first headline as display name.
type Import struct {
	Sentinel          string `env:"SENTINEL" envDefault:"Generic"`
	PassthroughAdName string `env:"PASSTHROUGH_AD_NAME" envDefault:"Generic"`
}
