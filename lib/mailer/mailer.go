package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"
)

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

type Options struct {
	Smtp    SmtpConfig `json:"smtp"`
	ToEmail string     `json:"to_email"`
}

// SendWorkbook mails the output workbook as an attachment, subject
// date-stamped the way downstream inbox filters expect.
func SendWorkbook(opts Options, path string, now time.Time) error {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Table Sync <%s>", opts.Smtp.EmailAddress)
	mail.To = []string{opts.ToEmail}
	mail.Subject = fmt.Sprintf("%s - New Scraped Data Excel File", now.Format("02-01-2006"))
	mail.Text = []byte("The attached Excel file has the scraped data")

	_, err := mail.AttachFile(path)
	if err != nil {
		return fmt.Errorf("attach %s: %w", path, err)
	}

	addr := fmt.Sprintf("%s:%d", opts.Smtp.Server, opts.Smtp.Port)
	err = mail.Send(
		addr,
		smtp.PlainAuth("", opts.Smtp.EmailAddress, opts.Smtp.Password, opts.Smtp.Server),
	)
	if err != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = mail.Send(addr, nil)
	}
	if err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	return nil
}
