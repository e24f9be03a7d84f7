package commands

import (
	"os"

	"tablesync/lib/configutil"
	"tablesync/lib/mailer"
)

type Config struct {
	SourceUrl  string         `json:"source_url"`
	OutputFile string         `json:"output_file"`
	JournalDb  string         `json:"journal_db"`
	SendEmail  bool           `json:"send_email"`
	Mail       mailer.Options `json:"mail"`
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// loadConfig reads config.json5 (plus local overrides) and then lets
// the process environment win, credentials in particular are usually
// injected by the scheduler rather than written to disk.
func loadConfig() (Config, error) {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		return cfg, err
	}

	envOverride(&cfg.SourceUrl, "SOURCE_URL")
	envOverride(&cfg.Mail.ToEmail, "TO_EMAIL")
	envOverride(&cfg.Mail.Smtp.EmailAddress, "SMTP_EMAIL")
	envOverride(&cfg.Mail.Smtp.Password, "SMTP_PASSWORD")

	if cfg.OutputFile == "" {
		cfg.OutputFile = "scraped_data.xlsx"
	}
	if cfg.Mail.Smtp.Server == "" {
		cfg.Mail.Smtp.Server = "smtp.gmail.com"
	}
	if cfg.Mail.Smtp.Port == 0 {
		cfg.Mail.Smtp.Port = 587
	}
	return cfg, nil
}
