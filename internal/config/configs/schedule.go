package configs

// Schedule holds the cron specs used by `serve`. An empty spec disables the
// job.
type Schedule struct {
	Payouts    string `env:"PAYOUTS" envDefault:"0 */6 * * *"`
	Engagement string `env:"ENGAGEMENT" envDefault:"30 */2 * * *"`
}
