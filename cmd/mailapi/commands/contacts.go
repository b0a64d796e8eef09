package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mailapi-dev/mailapi-go"
)

// contactFlags collects the contact properties shared by add and update.
type contactFlags struct {
	status       string
	tags         []string
	customFields string
	churnReason  string

	planID       string
	planName     string
	planAmount   float64
	planInterval string

	lastSeen     string
	trialStarted string
	trialEnded   string
	converted    string
	churned      string
}

func (f *contactFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.status, "status", "", "subscription status (trialing, active, past_due, canceled, churned, free)")
	cmd.Flags().StringSliceVar(&f.tags, "tag", nil, "tag to set, repeatable; replaces all existing tags")
	cmd.Flags().StringVar(&f.customFields, "custom-fields", "", "JSON object; replaces all existing custom fields")
	cmd.Flags().StringVar(&f.churnReason, "churn-reason", "", "why the contact churned")
	cmd.Flags().StringVar(&f.planID, "plan-id", "", "plan ID")
	cmd.Flags().StringVar(&f.planName, "plan-name", "", "plan name")
	cmd.Flags().Float64Var(&f.planAmount, "plan-amount", 0, "plan amount")
	cmd.Flags().StringVar(&f.planInterval, "plan-interval", "", "plan interval (month, year, one_time, free)")
	cmd.Flags().StringVar(&f.lastSeen, "last-seen", "", `RFC 3339 time or "now"; also increments the session count`)
	cmd.Flags().StringVar(&f.trialStarted, "trial-started", "", `RFC 3339 time or "now"`)
	cmd.Flags().StringVar(&f.trialEnded, "trial-ended", "", `RFC 3339 time or "now"`)
	cmd.Flags().StringVar(&f.converted, "converted", "", `RFC 3339 time or "now"`)
	cmd.Flags().StringVar(&f.churned, "churned", "", `RFC 3339 time or "now"`)
}

func (f *contactFlags) request(email string, now time.Time) (*mailapi.ContactRequest, error) {
	req := &mailapi.ContactRequest{
		Email:              email,
		SubscriptionStatus: f.status,
		Tags:               f.tags,
		ChurnReason:        f.churnReason,
	}

	if f.customFields != "" {
		if err := json.Unmarshal([]byte(f.customFields), &req.CustomFields); err != nil {
			return nil, fmt.Errorf("--custom-fields must be a JSON object: %w", err)
		}
	}

	if f.planID != "" || f.planName != "" || f.planAmount != 0 || f.planInterval != "" {
		req.Plan = &mailapi.Plan{
			ID:       f.planID,
			Name:     f.planName,
			Amount:   f.planAmount,
			Interval: f.planInterval,
		}
	}

	times := []struct {
		flag  string
		value string
		dst   **time.Time
	}{
		{"last-seen", f.lastSeen, &req.LastSeenAt},
		{"trial-started", f.trialStarted, &req.TrialStartedAt},
		{"trial-ended", f.trialEnded, &req.TrialEndedAt},
		{"converted", f.converted, &req.ConvertedAt},
		{"churned", f.churned, &req.ChurnedAt},
	}

	for _, tv := range times {
		t, err := parseTime(tv.value, now)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", tv.flag, err)
		}
		*tv.dst = t
	}

	return req, nil
}

func parseTime(value string, now time.Time) (*time.Time, error) {
	value = strings.TrimSpace(value)

	switch {
	case value == "":
		return nil, nil
	case strings.EqualFold(value, "now"):
		t := now.UTC()
		return &t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// add <email>
func addCmd(a *app) *cobra.Command {
	flags := &contactFlags{}

	cmd := &cobra.Command{
		Use:   "add <email>",
		Short: "Create a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(args[0], time.Now())
			if err != nil {
				return err
			}
			return printResult(cmd, a.client.Emails.Add(cmd.Context(), req))
		},
	}

	flags.register(cmd)
	return cmd
}

// update <email>
func updateCmd(a *app) *cobra.Command {
	flags := &contactFlags{}

	cmd := &cobra.Command{
		Use:   "update <email>",
		Short: "Overwrite properties of an existing contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request(args[0], time.Now())
			if err != nil {
				return err
			}
			return printResult(cmd, a.client.Emails.Update(cmd.Context(), req))
		},
	}

	flags.register(cmd)
	return cmd
}

// delete <email>
func deleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <email>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, a.client.Emails.Delete(cmd.Context(), &mailapi.DeleteContactRequest{Email: args[0]}))
		},
	}
}
