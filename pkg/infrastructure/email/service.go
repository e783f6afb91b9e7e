package email

import (
	"fmt"
	"strings"
	"time"

	"kwlab-go-backend/config"

	"gopkg.in/mail.v2"
)

// EmailService handles all email operations
type EmailService struct {
	dialer      *mail.Dialer
	fromAddress string
	adminEmail  string
}

// NewEmailService creates a new email service instance
func NewEmailService() *EmailService {
	cfg := config.C.Email

	dialer := mail.NewDialer(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.Username,
		cfg.Password,
	)

	return &EmailService{
		dialer:      dialer,
		fromAddress: cfg.FromAddress,
		adminEmail:  cfg.AdminEmail,
	}
}

// SendCollectionSummary sends a summary email after a collection run.
func (s *EmailService) SendCollectionSummary(
	jobName string,
	processed, newCount, updated, skipped, failed int,
	duration time.Duration,
	errs []string,
) error {
	subject := fmt.Sprintf("✅ Collection Run Finished (%s)", jobName)

	errorList := ""
	if len(errs) > 0 {
		errorList = "<h3>Failed Seeds:</h3><ul>"
		for _, e := range errs {
			errorList += fmt.Sprintf("<li>%s</li>", e)
		}
		errorList += "</ul>"
	}

	body := fmt.Sprintf(`
<html>
<body>
<h2>Collection Run Summary</h2>
<ul>
  <li><strong>Job Name:</strong> %s</li>
  <li><strong>Duration:</strong> %d seconds</li>
  <li><strong>Seeds Processed:</strong> %d</li>
  <li><strong>New Keywords:</strong> %d</li>
  <li><strong>Updated:</strong> %d</li>
  <li><strong>Skipped (fresh):</strong> %d</li>
  <li><strong>Failed:</strong> %d</li>
</ul>

%s

<p>Best regards,<br/>Keyword Lab</p>
</body>
</html>
	`, jobName, int(duration.Seconds()), processed, newCount, updated, skipped, failed, errorList)

	return s.sendHTML(s.adminEmail, subject, body)
}

// SendPoolExhaustedAlert sends an email when every API credential is over
// its daily quota or deactivated.
func (s *EmailService) SendPoolExhaustedAlert(provider string, credentialNames []string) error {
	subject := fmt.Sprintf("⚠️ %s Credential Pool Exhausted", provider)

	body := fmt.Sprintf(`
<html>
<body>
<h2>Credential Pool Exhausted</h2>
<p>Hi Admin,</p>

<p>Every %s credential is deactivated or over its daily quota:</p>
<ul>
  <li><strong>Credentials:</strong> %s</li>
</ul>

<p>Collection is paused and will resume automatically after the daily usage reset.</p>

<p>Best regards,<br/>Keyword Lab</p>
</body>
</html>
	`, provider, strings.Join(credentialNames, ", "))

	return s.sendHTML(s.adminEmail, subject, body)
}

// SendAutoCollectStopped sends an email when the auto-collect loop shut
// itself down.
func (s *EmailService) SendAutoCollectStopped(reason string, processed, totalNew int) error {
	subject := "🚨 Auto-Collect Stopped"

	body := fmt.Sprintf(`
<html>
<body>
<h2>Auto-Collect Stopped</h2>
<p>Hi Admin,</p>

<p>The auto-collect loop stopped on its own:</p>
<ul>
  <li><strong>Reason:</strong> %s</li>
  <li><strong>Seeds Processed This Session:</strong> %d</li>
  <li><strong>New Keywords This Session:</strong> %d</li>
</ul>

<p>Restart it from the dashboard once the cause is resolved.</p>

<p>Best regards,<br/>Keyword Lab</p>
</body>
</html>
	`, reason, processed, totalNew)

	return s.sendHTML(s.adminEmail, subject, body)
}

// sendHTML sends an HTML email
func (s *EmailService) sendHTML(to, subject, htmlBody string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.fromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
