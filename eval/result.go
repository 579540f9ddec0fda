package eval

// Result is the outcome record for one case. The runner produces exactly one
// Result per input case, in input order.
//
// Exactly one of the two shapes holds for every result:
//   - success: Scores is set, Error is empty
//   - failure: Error is set, ActualOutput and Scores are absent
type Result struct {
	TestName       string `json:"test_name"`
	Prompt         string `json:"prompt"`
	ExpectedOutput string `json:"expected_output"`

	// ActualOutput is the text returned by the model. Absent when the call
	// failed or the response was malformed.
	ActualOutput string `json:"actual_output,omitempty"`

	// Error describes what went wrong: a transport failure, a non-success
	// status, a malformed response body, or a scoring failure.
	Error string `json:"error,omitempty"`

	// Scores holds the comparison metrics on success.
	Scores *ScoreResult `json:"evaluation_results,omitempty"`
}

// Failed reports whether this case's evaluation failed.
func (r Result) Failed() bool {
	return r.Error != ""
}
