package planner

import (
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

// MaxFileSize is the upload ceiling: files of exactly this size are accepted.
const MaxFileSize = 5 * 1024 * 1024

var allowedFileTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// UploadedFile records metadata of the optional passbook upload. At most one
// file per session; re-selection replaces it wholesale.
type UploadedFile struct {
	Name        string `json:"name"`
	SizeBytes   int64  `json:"sizeBytes"`
	ContentType string `json:"contentType"`
}

// Session is one in-progress planner run: the questionnaire, the wizard
// position, and the optional upload. Sessions live only in memory.
type Session struct {
	Id          ulid.ULID     `json:"id"`
	UserId      ulid.ULID     `json:"userId"`
	FormData    FormData      `json:"formData"`
	CurrentStep int           `json:"currentStep"`
	ShowResults bool          `json:"showResults"`
	File        *UploadedFile `json:"file,omitempty"`
	FileError   string        `json:"fileError,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

func NewSession(userID ulid.ULID, id ulid.ULID, now time.Time) *Session {
	return &Session{
		Id:        id,
		UserId:    userID,
		FormData:  DefaultFormData(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a copy safe to hand out while the stored session keeps
// changing. The upload pointer is shared: an UploadedFile is replaced
// wholesale on re-selection, never mutated in place.
func (s *Session) Clone() *Session {
	clone := *s
	return &clone
}

// UpdateField sets a single questionnaire field by name. Values are coerced to
// the field's type; coercion failures store zero rather than erroring, matching
// the tolerant handling of typed-in numbers.
func (s *Session) UpdateField(name, value string) error {
	switch name {
	case "fullName":
		s.FormData.FullName = value
	case "age":
		s.FormData.Age = coerceInt(value)
	case "primaryIncome":
		s.FormData.PrimaryIncome = coerceFloat(value)
	case "additionalIncome":
		s.FormData.AdditionalIncome = value
	case "rent":
		s.FormData.Rent = value
	case "utilities":
		s.FormData.Utilities = value
	case "loans":
		s.FormData.Loans = value
	case "groceries":
		s.FormData.Groceries = value
	case "entertainment":
		s.FormData.Entertainment = value
	case "debtDetails":
		s.FormData.DebtDetails = value
	case "currentSavings":
		s.FormData.CurrentSavings = value
	case "currentInvestments":
		s.FormData.CurrentInvestments = value
	case "investmentAmount":
		s.FormData.InvestmentAmount = value
	case "riskTolerance":
		s.FormData.RiskTolerance = coerceInt(value)
	case "shortTermGoals":
		s.FormData.ShortTermGoals = value
	case "mediumTermGoals":
		s.FormData.MediumTermGoals = value
	case "longTermGoals":
		s.FormData.LongTermGoals = value
	case "targetAmount":
		s.FormData.TargetAmount = value
	case "additionalComments":
		s.FormData.AdditionalComments = value
	default:
		return appErrors.NewValidationError("name", "unknown form field: "+name)
	}

	return nil
}

// UpdateSelectField stores a select-control value. The literal strings "true"
// and "false" coerce to booleans for the boolean-backed selects; everything
// else is stored as the string it is.
func (s *Session) UpdateSelectField(name, value string) error {
	if name == "hasDebt" {
		switch value {
		case "true":
			s.FormData.HasDebt = true
			return nil
		case "false":
			s.FormData.HasDebt = false
			return nil
		}
	}

	switch name {
	case "maritalStatus":
		s.FormData.MaritalStatus = value
	case "salaryFrequency":
		s.FormData.SalaryFrequency = value
	case "currentInvestments":
		s.FormData.CurrentInvestments = value
	default:
		return s.UpdateField(name, value)
	}

	return nil
}

// UpdateSliderField stores the first value of a slider change.
func (s *Session) UpdateSliderField(name string, values []float64) error {
	if len(values) == 0 {
		return nil
	}

	switch name {
	case "age":
		s.FormData.Age = int(values[0])
	case "riskTolerance":
		s.FormData.RiskTolerance = int(values[0])
	case "primaryIncome":
		s.FormData.PrimaryIncome = values[0]
	default:
		return appErrors.NewValidationError("name", "unknown slider field: "+name)
	}

	return nil
}

// UpdateDateField stores the goal target date, or clears it when nil.
func (s *Session) UpdateDateField(date *time.Time) {
	if date == nil {
		s.FormData.TargetDate = ""
		return
	}
	s.FormData.TargetDate = date.Format("2006-01-02")
}

// SelectFile validates and attaches an upload. A nil file clears the slot. An
// oversized or wrongly-typed file sets FileError and leaves the slot empty;
// the boundary is inclusive, a file of exactly MaxFileSize is accepted.
func (s *Session) SelectFile(file *UploadedFile) {
	s.FileError = ""

	if file == nil {
		s.File = nil
		return
	}

	if file.ContentType != "" && !allowedFileTypes[file.ContentType] {
		s.FileError = "Please upload a PDF or image file (JPEG, PNG)"
		s.File = nil
		return
	}

	if file.SizeBytes > MaxFileSize {
		s.FileError = "File size must be less than 5MB"
		s.File = nil
		return
	}

	s.File = file
}

// Submit flips the session into results mode. It never persists or transmits
// the questionnaire.
func (s *Session) Submit() {
	s.ShowResults = true
}

// Reset restores the defaults, clears the upload, and returns to the first step.
func (s *Session) Reset() {
	s.FormData = DefaultFormData()
	s.CurrentStep = 0
	s.ShowResults = false
	s.File = nil
	s.FileError = ""
}

// Advance moves to the next step; a no-op on the last step.
func (s *Session) Advance() {
	if s.CurrentStep < StepCount-1 {
		s.CurrentStep++
	}
}

// Retreat moves to the previous step; a no-op on the first step.
func (s *Session) Retreat() {
	if s.CurrentStep > 0 {
		s.CurrentStep--
	}
}

func coerceInt(value string) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return parsed
}

func coerceFloat(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
