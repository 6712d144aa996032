// internal/common/aws/ses.go
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESService is the slice of the SES API the mailer uses; satisfied by the
// real client and by mocks in tests.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Mailer sends best-effort confirmation emails to accepted submitters.
type Mailer struct {
	client    SESService
	fromEmail string
}

func NewMailer(ctx context.Context, region, fromEmail string) (*Mailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Mailer{
		client:    ses.NewFromConfig(cfg),
		fromEmail: fromEmail,
	}, nil
}

// NewMailerWithClient wires a caller-supplied SES client; used in tests.
func NewMailerWithClient(client SESService, fromEmail string) *Mailer {
	return &Mailer{client: client, fromEmail: fromEmail}
}

// SendConfirmation emails the submitter a short acknowledgement. Failures are
// the caller's to log; they never affect the submission result.
func (m *Mailer) SendConfirmation(ctx context.Context, toEmail, name, message string) error {
	subject := "We received your submission"
	body := fmt.Sprintf("Hi %s,\n\n%s\n", name, message)

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: awssdk.String(m.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: awssdk.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: awssdk.String(body)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send confirmation email: %w", err)
	}
	return nil
}
