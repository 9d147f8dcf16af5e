package configs

// AMQP configures the event publisher. Events are dropped when URL is empty.
type AMQP struct {
	URL      string `env:"URL"`
	Exchange string `env:"EXCHANGE" envDefault:"viewpay.events"`
}
