package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeNotifyLead = "lead:notify"

type NotifyLeadPayload struct {
	LeadID string `json:"lead_id"`
}

// NewNotifyLeadTask creates an Asynq task emailing the sales inbox about a lead.
func NewNotifyLeadTask(leadID string) (*asynq.Task, error) {
	p := NotifyLeadPayload{LeadID: leadID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal notify-lead payload: %w", err)
	}
	return asynq.NewTask(TypeNotifyLead, data, asynq.MaxRetry(5)), nil
}

// ParseNotifyLeadPayload parses the task payload to NotifyLeadPayload.
func ParseNotifyLeadPayload(t *asynq.Task) (NotifyLeadPayload, error) {
	var p NotifyLeadPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return NotifyLeadPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
