package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Visit is one summarization request: free-text notes and/or a scanned
// document, plus the patient metadata embedded into the prompt.
type Visit struct {
	PatientName string `json:"patient_name"`
	DateOfVisit string `json:"date_of_visit"`
	Notes       string `json:"notes,omitempty"`
	FileBase64  string `json:"file_base64,omitempty"`
	FileMime    string `json:"file_mime,omitempty"`
}

// Validate checks the required metadata fields. Note content is checked
// later during resolution because it may come from the attached file.
func (x *Visit) Validate() error {
	if x.PatientName == "" {
		return goerr.Wrap(ErrInvalidRequest, "patient_name is required")
	}
	if x.DateOfVisit == "" {
		return goerr.Wrap(ErrInvalidRequest, "date_of_visit is required")
	}
	return nil
}
