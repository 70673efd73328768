package model

import "testing"

func TestSeverity_IsProblem(t *testing.T) {
	tests := []struct {
		severity Severity
		expected bool
	}{
		{SeverityNeutral, false},
		{SeverityOK, false},
		{SeverityWarning, true},
		{SeverityError, true},
	}

	for _, test := range tests {
		result := test.severity.IsProblem()
		if result != test.expected {
			t.Errorf("Severity(%s).IsProblem() = %v, expected %v", test.severity, result, test.expected)
		}
	}
}

func TestSeverity_String(t *testing.T) {
	status := SeverityWarning
	expected := "Warning"
	result := status.String()

	if result != expected {
		t.Errorf("Severity.String() = %s, expected %s", result, expected)
	}
}

func TestReadyStatus(t *testing.T) {
	status := ReadyStatus()

	if status.Severity != SeverityNeutral {
		t.Errorf("Expected neutral severity, got %s", status.Severity)
	}

	if status.Key != StatusReady {
		t.Errorf("Expected key %s, got %s", StatusReady, status.Key)
	}
}
