package configs

// OTel configures tracing export. Tracing is off when Endpoint is empty.
type OTel struct {
	Endpoint    string  `env:"ENDPOINT"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"viewpay"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}
