package mailapi

import "time"

// SendEmailRequest is the payload of [Emails.Send]. Either Message or
// TemplateID must be set.
type SendEmailRequest struct {
	// From is the sender, e.g. "Your App <hello@mailapi.dev>".
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`

	// Message is the HTML or text body.
	Message string `json:"message,omitempty"`

	TemplateID   string         `json:"template_id,omitempty"`
	TemplateData map[string]any `json:"template_data,omitempty"`
	ReplyTo      string         `json:"reply_to,omitempty"`

	// AllowDisposableEmail permits sending to known disposable addresses.
	AllowDisposableEmail bool `json:"allow_disposable_email,omitempty"`

	// Verify checks the recipient before sending without saving it.
	Verify bool `json:"verify,omitempty"`

	// VerifyAndSave checks the recipient and saves it as a contact if valid.
	VerifyAndSave bool `json:"verify_and_save,omitempty"`
}

type SendEmailResponse struct {
	Success          bool    `json:"success"`
	MessageID        string  `json:"messageId"`
	Message          string  `json:"message"`
	CreditsRemaining Number  `json:"creditsRemaining"`
	EmailVerified    bool    `json:"emailVerified"`
	EmailSaved       bool    `json:"emailSaved"`
	TemplateUsed     *string `json:"templateUsed"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
}

type VerifyEmailValidators struct {
	IsDeliverable         bool `json:"is_deliverable"`
	IsValidSyntax         bool `json:"is_valid_syntax"`
	IsTypoFree            bool `json:"is_typo_free"`
	HasMXRecords          bool `json:"has_mx_records"`
	PassedDisposableCheck bool `json:"passed_disposable_check"`
	PassedRoleCheck       bool `json:"passed_role_check"`
	PassedCatchAllCheck   bool `json:"passed_catch_all_check"`
	IsFreeEmail           bool `json:"is_free_email"`
}

type VerifyEmailResponse struct {
	Email            string                `json:"email"`
	Valid            bool                  `json:"valid"`
	Message          string                `json:"message"`
	Validators       VerifyEmailValidators `json:"validators"`
	CreditsRemaining Number                `json:"creditsRemaining"`
}

// Plan intervals.
const (
	IntervalMonth   = "month"
	IntervalYear    = "year"
	IntervalOneTime = "one_time"
	IntervalFree    = "free"
)

// Subscription statuses.
const (
	StatusTrialing = "trialing"
	StatusActive   = "active"
	StatusPastDue  = "past_due"
	StatusCanceled = "canceled"
	StatusChurned  = "churned"
	StatusFree     = "free"
)

type Plan struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
	Interval string  `json:"interval,omitempty"`
}

// ContactRequest is the payload of [Emails.Add] and [Emails.Update]. Only
// Email is required; unset fields are left untouched by the API. Tags and
// CustomFields replace the stored values wholesale when set.
type ContactRequest struct {
	Email              string         `json:"email"`
	Plan               *Plan          `json:"plan,omitempty"`
	SubscriptionStatus string         `json:"subscriptionStatus,omitempty"`
	Tags               []string       `json:"tags,omitempty"`
	CustomFields       map[string]any `json:"customFields,omitempty"`

	// LastSeenAt also increments the contact's session count.
	LastSeenAt     *time.Time `json:"lastSeenAt,omitempty"`
	TrialStartedAt *time.Time `json:"trialStartedAt,omitempty"`
	TrialEndedAt   *time.Time `json:"trialEndedAt,omitempty"`
	ConvertedAt    *time.Time `json:"convertedAt,omitempty"`
	ChurnedAt      *time.Time `json:"churnedAt,omitempty"`
	ChurnReason    string     `json:"churnReason,omitempty"`
}

type DeleteContactRequest struct {
	Email string `json:"email"`
}

type AutomationMetadata struct {
	LastAutomationSent          *Timestamp `json:"lastAutomationSent,omitempty"`
	UnsubscribedFromAutomations bool       `json:"unsubscribedFromAutomations"`
	UnsubscribedAt              *Timestamp `json:"unsubscribedAt,omitempty"`
}

// Contact is a contact record as stored by MailAPI.
type Contact struct {
	ID                 string             `json:"_id"`
	ProjectID          string             `json:"projectId"`
	Email              string             `json:"email"`
	Plan               Plan               `json:"plan"`
	SubscriptionStatus string             `json:"subscriptionStatus"`
	LastSeenAt         *Timestamp         `json:"lastSeenAt,omitempty"`
	SessionCount       int                `json:"sessionCount"`
	Tags               []string           `json:"tags"`
	CustomFields       map[string]any     `json:"customFields"`
	TrialStartedAt     *Timestamp         `json:"trialStartedAt,omitempty"`
	TrialEndedAt       *Timestamp         `json:"trialEndedAt,omitempty"`
	ConvertedAt        *Timestamp         `json:"convertedAt,omitempty"`
	ChurnedAt          *Timestamp         `json:"churnedAt,omitempty"`
	ChurnReason        string             `json:"churnReason,omitempty"`
	AutomationMetadata AutomationMetadata `json:"automationMetadata"`
	CreatedAt          Timestamp          `json:"createdAt"`
	UpdatedAt          Timestamp          `json:"updatedAt"`
}

// Contact actions reported by the API.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

type ContactResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Action  string  `json:"action"`
	Data    Contact `json:"data"`
}

type DeleteContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
