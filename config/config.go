package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Admin struct {
		// Shared dashboard secret. The default must never survive into a real deployment.
		Password string `default:"admin123" env:"ADMIN_PASSWORD"`
		Email    string `default:"support@kridavista.in" env:"ADMIN_EMAIL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASS"`
		Host       string `default:"smtp.gmail.com" env:"SMTP_HOST"`
		Port       string `default:"587" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"false" env:"SMTP_SECURE"`
		From       string `default:"" env:"SMTP_FROM"`
	}
	Store struct {
		DataDir          string `default:"data" env:"DATA_DIR"`
		UploadsDir       string `default:"data/uploads" env:"UPLOADS_DIR"`
		ApplicationsFile string `default:"data/applications.json" env:"APPLICATIONS_FILE"`
		SubmissionsFile  string `default:"data/submissions.json" env:"SUBMISSIONS_FILE"`
		AuditLogFile     string `default:"database.txt" env:"AUDIT_LOG_FILE"`
	}
	S3 struct {
		Enabled         *bool  `default:"false" env:"S3_ENABLED"`
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"true" env:"S3_USE_SSL"`
		BucketName      string `default:"kridavista-resumes" env:"S3_BUCKET_NAME"`
	}
}

// SmtpFrom returns the configured sender, falling back to the SMTP user mailbox.
func (c *Configuration) SmtpFrom() string {
	if c.Smtp.From != "" {
		return c.Smtp.From
	}
	return "\"Kridavista Support\" <" + c.Smtp.User + ">"
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
