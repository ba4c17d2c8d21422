package models

import "time"

// Patient is the aggregate root. The four embedded sequences are
// append-only and kept most-recent-first; entries are prepended with an
// atomic $push/$position update and never edited or removed afterwards.
type Patient struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	PatientID     string `json:"patientId" bson:"patientId"`
	FirstName     string `json:"firstName" bson:"firstName"`
	LastName      string `json:"lastName" bson:"lastName"`
	Age           int    `json:"age" bson:"age"`
	Gender        string `json:"gender" bson:"gender"`
	Phone         string `json:"phone" bson:"phone"`
	Email         string `json:"email" bson:"email"`
	Address       string `json:"address,omitempty" bson:"address,omitempty"`
	Condition     string `json:"condition,omitempty" bson:"condition,omitempty"`
	Status        string `json:"status" bson:"status"`
	Priority      string `json:"priority" bson:"priority"`
	Doctor        string `json:"doctor,omitempty" bson:"doctor,omitempty"`
	AdmissionDate string `json:"admissionDate,omitempty" bson:"admissionDate,omitempty"`
	LastVisit     string `json:"lastVisit" bson:"lastVisit"`
	Notes         string `json:"notes,omitempty" bson:"notes,omitempty"`
	PhotoObject   string `json:"photoObject,omitempty" bson:"photoObject,omitempty"`

	Prescriptions  []Prescription        `json:"prescriptions" bson:"prescriptions"`
	MedicalHistory []MedicalHistoryEntry `json:"medicalHistory" bson:"medicalHistory"`
	Vitals         []VitalsRecord        `json:"vitals" bson:"vitals"`
	NursingNotes   []NursingNote         `json:"nursingNotes" bson:"nursingNotes"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

type Prescription struct {
	ID             string    `json:"id" bson:"id"`
	Medication     string    `json:"medication" bson:"medication"`
	Dosage         string    `json:"dosage" bson:"dosage"`
	Frequency      string    `json:"frequency,omitempty" bson:"frequency,omitempty"`
	Duration       string    `json:"duration,omitempty" bson:"duration,omitempty"`
	Instructions   string    `json:"instructions,omitempty" bson:"instructions,omitempty"`
	PrescribedDate string    `json:"prescribedDate" bson:"prescribedDate"`
	Status         string    `json:"status" bson:"status"`
	PrescribedBy   string    `json:"prescribedBy" bson:"prescribedBy"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

type MedicalHistoryEntry struct {
	ID           string    `json:"id" bson:"id"`
	Condition    string    `json:"condition" bson:"condition"`
	Diagnosis    string    `json:"diagnosis" bson:"diagnosis"`
	Treatment    string    `json:"treatment,omitempty" bson:"treatment,omitempty"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	DateRecorded string    `json:"dateRecorded" bson:"dateRecorded"`
	Severity     string    `json:"severity" bson:"severity"`
	RecordedBy   string    `json:"recordedBy" bson:"recordedBy"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

type VitalsRecord struct {
	ID                     string    `json:"id" bson:"id"`
	BloodPressureSystolic  int       `json:"bloodPressureSystolic" bson:"bloodPressureSystolic"`
	BloodPressureDiastolic int       `json:"bloodPressureDiastolic" bson:"bloodPressureDiastolic"`
	HeartRate              int       `json:"heartRate" bson:"heartRate"`
	Temperature            float64   `json:"temperature,omitempty" bson:"temperature,omitempty"`
	RespiratoryRate        int       `json:"respiratoryRate,omitempty" bson:"respiratoryRate,omitempty"`
	OxygenSaturation       int       `json:"oxygenSaturation,omitempty" bson:"oxygenSaturation,omitempty"`
	Weight                 float64   `json:"weight,omitempty" bson:"weight,omitempty"`
	Height                 float64   `json:"height,omitempty" bson:"height,omitempty"`
	PainLevel              int       `json:"painLevel,omitempty" bson:"painLevel,omitempty"`
	Notes                  string    `json:"notes,omitempty" bson:"notes,omitempty"`
	RecordedDate           string    `json:"recordedDate" bson:"recordedDate"`
	RecordedTime           string    `json:"recordedTime" bson:"recordedTime"`
	RecordedBy             string    `json:"recordedBy" bson:"recordedBy"`
	CreatedAt              time.Time `json:"createdAt" bson:"createdAt"`
}

type NursingNote struct {
	ID           string    `json:"id" bson:"id"`
	Category     string    `json:"category" bson:"category"`
	Observation  string    `json:"observation" bson:"observation"`
	Intervention string    `json:"intervention,omitempty" bson:"intervention,omitempty"`
	Response     string    `json:"response,omitempty" bson:"response,omitempty"`
	Plan         string    `json:"plan,omitempty" bson:"plan,omitempty"`
	Priority     string    `json:"priority" bson:"priority"`
	NoteDate     string    `json:"noteDate" bson:"noteDate"`
	NoteTime     string    `json:"noteTime" bson:"noteTime"`
	NurseName    string    `json:"nurseName" bson:"nurseName"`
	CreatedBy    string    `json:"createdBy" bson:"createdBy"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
