package models

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{SubmissionStatusNew, SubmissionStatusAssigned},
		{SubmissionStatusNew, SubmissionStatusInProgress},
		{SubmissionStatusAssigned, SubmissionStatusInProgress},
		{SubmissionStatusAssigned, SubmissionStatusCompleted},
		{SubmissionStatusAssigned, SubmissionStatusRejected},
		{SubmissionStatusInProgress, SubmissionStatusCompleted},
		{SubmissionStatusInProgress, SubmissionStatusRejected},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{SubmissionStatusNew, SubmissionStatusCompleted},
		{SubmissionStatusAssigned, SubmissionStatusNew},
		{SubmissionStatusCompleted, SubmissionStatusInProgress},
		{SubmissionStatusRejected, SubmissionStatusNew},
		{SubmissionStatusNew, SubmissionStatusNew},
		{"bogus", SubmissionStatusAssigned},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}

func TestValidApplicationStatus(t *testing.T) {
	for _, s := range []string{ApplicationStatusNew, ApplicationStatusViewed, ApplicationStatusShortlisted, ApplicationStatusRejected} {
		if !ValidApplicationStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidApplicationStatus("archived") {
		t.Error("archived should be invalid")
	}
}
