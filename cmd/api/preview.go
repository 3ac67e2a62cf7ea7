package main

import (
	"fmt"

	"portfolio-backend/config"
	"portfolio-backend/pkg/email"

	"github.com/spf13/cobra"
)

type previewOptions struct {
	template string
	name     string
	email    string
	subject  string
	message  string
}

// newPreviewCmd renders a contact email to stdout for template work
func newPreviewCmd() *cobra.Command {
	opts := &previewOptions{}
	cmd := &cobra.Command{
		Use:       "preview notification|confirmation",
		Short:     "Render a contact email as HTML",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"notification", "confirmation"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVar(&opts.template, "template", "", "confirmation layout: classic or card (default from EMAIL_TEMPLATE)")
	cmd.Flags().StringVar(&opts.name, "name", "Ana", "sender name")
	cmd.Flags().StringVar(&opts.email, "email", "ana@example.com", "sender email")
	cmd.Flags().StringVar(&opts.subject, "subject", "Hi", "subject")
	cmd.Flags().StringVar(&opts.message, "message", "Hello there,\nloved your work", "message body")
	return cmd
}

func runPreview(cmd *cobra.Command, kind string, opts *previewOptions) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	if opts.template != "" {
		cfg.EmailTemplate = opts.template
	}

	// Rendering never touches the sender
	svc, err := email.NewEmailService(cfg, nil)
	if err != nil {
		return err
	}

	data := email.ContactEmailData{
		SenderName:  opts.name,
		SenderEmail: opts.email,
		Subject:     opts.subject,
		Message:     opts.message,
	}

	var msg *email.Message
	switch kind {
	case "notification":
		msg, err = svc.NotificationMessage(data)
	default:
		msg, err = svc.ConfirmationMessage(data)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "<!-- To: %s | Subject: %s", msg.To, msg.Subject)
	if msg.ReplyTo != "" {
		fmt.Fprintf(out, " | Reply-To: %s", msg.ReplyTo)
	}
	fmt.Fprintln(out, " -->")
	fmt.Fprintln(out, msg.HTML)
	return nil
}
