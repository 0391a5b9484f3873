package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"compliance-tracker/internal/config"
	"compliance-tracker/internal/domain"
)

type Service interface {
	SendUpdateAlert(ctx context.Context, toEmail string, update *domain.Update) error
}

type service struct {
	client *resend.Client
	config *config.Config
}

func NewService(cfg *config.Config) Service {
	return &service{
		client: resend.NewClient(cfg.ResendAPIKey),
		config: cfg,
	}
}

var alertTemplate = template.Must(template.New("alert").Parse(`
<h2>{{.Title}}</h2>
<p><strong>{{.Jurisdiction}}</strong> &middot; {{.Status}} &middot; {{.ImpactLevel}} impact</p>
<p>{{.Description}}</p>
{{if .ActionRequired}}<p><strong>Action required.</strong>{{if .ActionDescription}} {{.ActionDescription}}{{end}}</p>{{end}}
{{if .DeadlineDate}}<p>Deadline: {{.DeadlineDate.Format "2006-01-02"}}</p>{{end}}
`))

func (s *service) SendUpdateAlert(ctx context.Context, toEmail string, update *domain.Update) error {
	var body bytes.Buffer
	if err := alertTemplate.Execute(&body, update); err != nil {
		return fmt.Errorf("failed to render alert email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Compliance Tracker <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: fmt.Sprintf("Regulatory update: %s", update.Title),
	}

	_, err := s.client.Emails.Send(params)
	return err
}
