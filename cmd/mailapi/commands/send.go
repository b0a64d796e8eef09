package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailapi-dev/mailapi-go"
)

// send --to <addr> --subject <s> (--message <m> | --template-id <id>)
func sendCmd(a *app) *cobra.Command {
	req := &mailapi.SendEmailRequest{}
	var templateData string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a transactional email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if templateData != "" {
				if err := json.Unmarshal([]byte(templateData), &req.TemplateData); err != nil {
					return fmt.Errorf("--template-data must be a JSON object: %w", err)
				}
			}

			return printResult(cmd, a.client.Emails.Send(cmd.Context(), req))
		},
	}

	cmd.Flags().StringVar(&req.From, "from", "", `sender, e.g. "Your App <hello@mailapi.dev>"`)
	cmd.Flags().StringVar(&req.To, "to", "", "recipient address")
	cmd.Flags().StringVar(&req.Subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&req.Message, "message", "", "HTML or text body")
	cmd.Flags().StringVar(&req.TemplateID, "template-id", "", "template to render instead of --message")
	cmd.Flags().StringVar(&templateData, "template-data", "", "JSON object merged into the template")
	cmd.Flags().StringVar(&req.ReplyTo, "reply-to", "", "Reply-To address")
	cmd.Flags().BoolVar(&req.AllowDisposableEmail, "allow-disposable", false, "allow known disposable recipients")
	cmd.Flags().BoolVar(&req.Verify, "verify", false, "verify the recipient before sending")
	cmd.Flags().BoolVar(&req.VerifyAndSave, "verify-and-save", false, "verify the recipient and save it as a contact")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("subject")
	cmd.MarkFlagsMutuallyExclusive("message", "template-id")
	cmd.MarkFlagsOneRequired("message", "template-id")
	return cmd
}

// verify <email>
func verifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <email>",
		Short: "Verify an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, a.client.Emails.Verify(cmd.Context(), &mailapi.VerifyEmailRequest{Email: args[0]}))
		},
	}
}
