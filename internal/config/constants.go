package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./portfolio.db"

	// DefaultMailerEndpoint is the hosted email relay send endpoint
	DefaultMailerEndpoint = "https://api.emailjs.com/api/v1.0/email/send"
)
