package model

import "fmt"

// systemPrompt instructs the model to answer with exactly three named
// sections. Downstream rendering depends on these headings, do not reword.
const systemPrompt = `
You are provided with notes written by a doctor from a patient's visit.
Your job is to summarize the visit for the doctor and provide an email.
Reply with exactly three sections with the headings:
### Summary of visit for the doctor's records
### Next steps for the doctor
### Draft of email to patient in patient-friendly language
`

// Prompt is an ordered pair of instruction strings for one completion call.
// Immutable once constructed.
type Prompt struct {
	System string
	User   string
}

// NewPrompt builds the prompt from the patient metadata and the resolved
// note text. Inputs are interpolated as plain text, no escaping.
func NewPrompt(patientName, dateOfVisit, notes string) Prompt {
	return Prompt{
		System: systemPrompt,
		User: fmt.Sprintf(`Create the summary, next steps and draft email for:
Patient Name: %s
Date of Visit: %s
Notes:
%s`, patientName, dateOfVisit, notes),
	}
}
