package mailapi

import (
	"context"
	"net/http"
)

// Emails sends email, verifies addresses and manages contacts. Obtain it
// from [Client.Emails].
type Emails struct {
	client *Client
}

// Send sends a transactional email.
func (e *Emails) Send(ctx context.Context, payload *SendEmailRequest) Result[SendEmailResponse] {
	return Do[SendEmailResponse](ctx, e.owner(), http.MethodPost, "/email", payload)
}

// Verify checks whether an email address is deliverable.
func (e *Emails) Verify(ctx context.Context, payload *VerifyEmailRequest) Result[VerifyEmailResponse] {
	return Do[VerifyEmailResponse](ctx, e.owner(), http.MethodGet, "/verify", payload)
}

// Add creates a contact.
func (e *Emails) Add(ctx context.Context, payload *ContactRequest) Result[ContactResponse] {
	return Do[ContactResponse](ctx, e.owner(), http.MethodPost, "/email/add", payload)
}

// Update overwrites the given properties of an existing contact.
func (e *Emails) Update(ctx context.Context, payload *ContactRequest) Result[ContactResponse] {
	return Do[ContactResponse](ctx, e.owner(), http.MethodPost, "/email/update", payload)
}

// Delete removes a contact.
func (e *Emails) Delete(ctx context.Context, payload *DeleteContactRequest) Result[DeleteContactResponse] {
	return Do[DeleteContactResponse](ctx, e.owner(), http.MethodPost, "/email/delete", payload)
}

func (e *Emails) owner() *Client {
	if e == nil {
		return nil
	}
	return e.client
}
