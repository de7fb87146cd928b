package email

import "time"

// Config describes the SMTP relay used to deliver notifications. The Resend
// relay accepts the API key as the SMTP password.
type Config struct {
	Host           string
	Port           int
	Username       string
	Password       string
	SSL            bool
	TimeoutSeconds int
}

func DefaultConfig() Config {
	return Config{
		Host:           "smtp.resend.com",
		Port:           465,
		Username:       "resend",
		SSL:            true,
		TimeoutSeconds: 10,
	}
}

func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
