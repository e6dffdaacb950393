package alerts

import (
	"context"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Notifier interface {
	Notify(ctx context.Context, message string) error
}

type SMSNotifier struct {
	client *twilio.RestClient
	from   string
	to     string
}

func NewSMSNotifier(accountSID, authToken, from, to string) *SMSNotifier {
	return &SMSNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
		to:   to,
	}
}

func (n *SMSNotifier) Notify(_ context.Context, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(message)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms to %s: %w", n.to, err)
	}
	return nil
}

// LogNotifier is used when no SMS provider is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, message string) error {
	log.Printf("🚐 vehicle alert: %s", message)
	return nil
}
