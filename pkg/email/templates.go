package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Confirmation layouts. Both share the notification template.
const (
	ThemeClassic = "classic"
	ThemeCard    = "card"
)

// SocialLink is a profile link rendered in the confirmation email
type SocialLink struct {
	Label string
	URL   string
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	SenderName  string
	SenderEmail string
	Subject     string
	Message     string
	OwnerName   string
	OwnerTitle  string
	Socials     []SocialLink
}

// nl2br escapes s and turns each line break into <br>
func nl2br(s string) template.HTML {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>"))
}

var templateFuncs = template.FuncMap{"nl2br": nl2br}

const notificationTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #173B45; border-bottom: 3px solid #FF8225; padding-bottom: 10px;">New Contact Message</h2>
  <div style="background: #f8eded; padding: 20px; border-radius: 15px; margin: 20px 0;">
    <h3 style="color: #B43F3F; margin-top: 0;">Contact details</h3>
    <p><strong>Name:</strong> {{.SenderName}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.SenderEmail}}" style="color: #FF8225;">{{.SenderEmail}}</a></p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
  </div>
  <div style="background: white; padding: 20px; border-radius: 15px; border-left: 4px solid #B43F3F;">
    <h3 style="color: #173B45; margin-top: 0;">Message</h3>
    <p style="line-height: 1.6; color: #444;">{{nl2br .Message}}</p>
  </div>
  <div style="margin-top: 20px; padding: 15px; background: #f9f9f9; border-radius: 10px; text-align: center;">
    <p style="margin: 0; color: #666; font-size: 14px;">Sent from the contact form of your portfolio</p>
  </div>
</div>`

const confirmationClassicTemplate = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #173B45; border-bottom: 3px solid #FF8225; padding-bottom: 10px;">Thanks for reaching out, {{.SenderName}}!</h2>
  <div style="background: #f8eded; padding: 20px; border-radius: 15px; margin: 20px 0;">
    <p style="font-size: 16px; color: #173B45;">I received your message and will reply within the next 24 hours.</p>
  </div>
  <div style="background: white; padding: 20px; border-radius: 15px; border-left: 4px solid #B43F3F;">
    <h3 style="color: #B43F3F; margin-top: 0;">Your message</h3>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <p style="background: #f8f8f8; padding: 15px; border-radius: 8px; color: #444;">{{nl2br .Message}}</p>
  </div>
  {{- if .Socials}}
  <div style="text-align: center; margin: 30px 0;">
    <p style="color: #666;">If it is urgent you can also reach me on:</p>
    {{- range .Socials}}
    <a href="{{.URL}}" style="color: #FF8225; text-decoration: none; margin: 0 10px;">{{.Label}}</a>
    {{- end}}
  </div>
  {{- end}}
  <div style="text-align: center; padding: 15px; background: #f9f9f9; border-radius: 10px;">
    <p style="margin: 0; color: #666; font-size: 14px;">Best regards,<br><strong style="color: #B43F3F;">{{.OwnerName}} - {{.OwnerTitle}}</strong></p>
  </div>
</div>`

const confirmationCardTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Message received</title>
  <style>
    @media only screen and (max-width: 600px) {
      .container { padding: 20px 16px !important; }
      .card { padding: 24px !important; border-radius: 24px !important; }
    }
  </style>
</head>
<body style="margin: 0; padding: 0; font-family: system-ui, -apple-system, 'Segoe UI', Roboto, sans-serif; background: #f1f5f9;">
  <div class="container" style="max-width: 600px; margin: 0 auto; padding: 48px 24px;">
    <div class="card" style="background: #ffffff; border-radius: 32px; padding: 40px 32px; text-align: center; box-shadow: 0 10px 30px rgba(0,0,0,0.08);">
      <h1 style="margin: 0 0 8px; color: #0f172a; font-size: 26px;">Message received</h1>
      <p style="margin: 0; color: #475569;">Hi {{.SenderName}}, thanks for getting in touch. I'll get back to you soon.</p>
    </div>
    <div class="card" style="background: #ffffff; border-radius: 32px; padding: 32px; margin-top: 24px;">
      <p style="margin: 0 0 4px; color: #64748b; font-size: 12px; text-transform: uppercase; letter-spacing: 0.08em;">Subject</p>
      <p style="margin: 0 0 20px; color: #0f172a; font-weight: 600;">{{.Subject}}</p>
      <p style="margin: 0 0 4px; color: #64748b; font-size: 12px; text-transform: uppercase; letter-spacing: 0.08em;">Message</p>
      <p style="margin: 0; color: #334155; line-height: 1.6;">{{nl2br .Message}}</p>
    </div>
    {{- if .Socials}}
    <div class="card" style="background: #ffffff; border-radius: 32px; padding: 24px 32px; margin-top: 24px; text-align: center;">
      {{- range .Socials}}
      <a href="{{.URL}}" style="display: inline-block; margin: 6px; padding: 12px 20px; border-radius: 999px; background: #0f172a; color: #ffffff; text-decoration: none;">{{.Label}}</a>
      {{- end}}
    </div>
    {{- end}}
    <p style="margin: 32px 0 0; text-align: center; color: #94a3b8; font-size: 13px;">{{.OwnerName}} · {{.OwnerTitle}}</p>
  </div>
</body>
</html>`

var confirmationTemplates = map[string]string{
	ThemeClassic: confirmationClassicTemplate,
	ThemeCard:    confirmationCardTemplate,
}

// Renderer turns ContactEmailData into HTML bodies
type Renderer struct {
	notification *template.Template
	confirmation *template.Template
}

// NewRenderer parses the templates for the given confirmation theme
func NewRenderer(theme string) (*Renderer, error) {
	if theme == "" {
		theme = ThemeClassic
	}
	confirmationSrc, ok := confirmationTemplates[theme]
	if !ok {
		return nil, fmt.Errorf("unknown email template %q", theme)
	}

	notification, err := template.New("notification").Funcs(templateFuncs).Parse(notificationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse notification template: %w", err)
	}
	confirmation, err := template.New("confirmation-" + theme).Funcs(templateFuncs).Parse(confirmationSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse confirmation template: %w", err)
	}

	return &Renderer{notification: notification, confirmation: confirmation}, nil
}

// Notification renders the email sent to the site owner
func (r *Renderer) Notification(data ContactEmailData) (string, error) {
	return execute(r.notification, data)
}

// Confirmation renders the acknowledgment sent back to the submitter
func (r *Renderer) Confirmation(data ContactEmailData) (string, error) {
	return execute(r.confirmation, data)
}

func execute(tmpl *template.Template, data ContactEmailData) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return body.String(), nil
}
