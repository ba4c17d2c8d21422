package alerts

import "context"

// PatientAlert is the message placed on the alert queue whenever a patient
// enters Critical status.
type PatientAlert struct {
	PatientID string `json:"patientId"`
	FullName  string `json:"fullName"`
	Status    string `json:"status"`
	Doctor    string `json:"doctor,omitempty"`
	RaisedBy  string `json:"raisedBy,omitempty"`
	RaisedAt  string `json:"raisedAt"`
}

type AlertPublisher interface {
	PublishCriticalStatus(ctx context.Context, alert *PatientAlert) error
}
