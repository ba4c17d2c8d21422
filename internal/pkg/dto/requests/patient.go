package requests

type CreatePatient struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Age           int    `json:"age" validate:"required,gt=0"`
	Gender        string `json:"gender" validate:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	Address       string `json:"address"`
	Condition     string `json:"condition"`
	Status        string `json:"status" validate:"omitempty,oneof=Active Discharged Critical"`
	Priority      string `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	Doctor        string `json:"doctor"`
	AdmissionDate string `json:"admissionDate"`
	Notes         string `json:"notes"`
}

// UpdatePatient merges over the stored aggregate; nil pointers leave the
// stored value untouched. Photo, when present, is a base64 data URI that is
// uploaded to object storage rather than embedded in the document.
type UpdatePatient struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Age           *int    `json:"age" validate:"omitempty,gt=0"`
	Gender        *string `json:"gender"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address"`
	Condition     *string `json:"condition"`
	Status        *string `json:"status" validate:"omitempty,oneof=Active Discharged Critical"`
	Priority      *string `json:"priority" validate:"omitempty,oneof=High Medium Low"`
	Doctor        *string `json:"doctor"`
	AdmissionDate *string `json:"admissionDate"`
	LastVisit     *string `json:"lastVisit"`
	Notes         *string `json:"notes"`
	Photo         string  `json:"photo,omitempty"`
}

type AddPrescription struct {
	Medication     string `json:"medication" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	Instructions   string `json:"instructions"`
	PrescribedDate string `json:"prescribedDate"`
}

type AddMedicalHistory struct {
	Condition    string `json:"condition" validate:"required"`
	Diagnosis    string `json:"diagnosis" validate:"required"`
	Treatment    string `json:"treatment"`
	Notes        string `json:"notes"`
	DateRecorded string `json:"dateRecorded"`
	Severity     string `json:"severity" validate:"omitempty,oneof=Low Medium High"`
}

type AddVitals struct {
	BloodPressureSystolic  int     `json:"bloodPressureSystolic" validate:"required,gt=0"`
	BloodPressureDiastolic int     `json:"bloodPressureDiastolic" validate:"required,gt=0"`
	HeartRate              int     `json:"heartRate" validate:"required,gt=0"`
	Temperature            float64 `json:"temperature"`
	RespiratoryRate        int     `json:"respiratoryRate"`
	OxygenSaturation       int     `json:"oxygenSaturation"`
	Weight                 float64 `json:"weight"`
	Height                 float64 `json:"height"`
	PainLevel              int     `json:"painLevel" validate:"omitempty,gte=0,lte=10"`
	Notes                  string  `json:"notes"`
	RecordedDate           string  `json:"recordedDate"`
	RecordedTime           string  `json:"recordedTime"`
	RecordedBy             string  `json:"recordedBy"`
}

type AddNursingNote struct {
	Category     string `json:"category" validate:"omitempty,oneof='General Care' Medication Assessment Education Discharge Emergency"`
	Observation  string `json:"observation" validate:"required"`
	Intervention string `json:"intervention"`
	Response     string `json:"response"`
	Plan         string `json:"plan"`
	Priority     string `json:"priority" validate:"omitempty,oneof=Normal Medium High"`
	NoteDate     string `json:"noteDate"`
	NoteTime     string `json:"noteTime"`
	NurseName    string `json:"nurseName"`
}
