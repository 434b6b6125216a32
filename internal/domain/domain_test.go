package domain

import "testing"

func TestExecutorID(t *testing.T) {
	tests := []struct {
		language string
		wantID   int
		wantOK   bool
	}{
		{"python", 92, true},
		{"java", 91, true},
		{"javascript", 93, true},
		{"cpp", 54, true},
		{"c++", 54, true},
		{"go", 95, true},
		{"rust", 73, true},
		{"cobol", 0, false},
		{"Python", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		id, ok := ExecutorID(tt.language)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("ExecutorID(%q) = (%d, %v), want (%d, %v)", tt.language, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestHintSetComplete(t *testing.T) {
	tests := []struct {
		name string
		set  *HintSet
		want bool
	}{
		{"nil set", nil, false},
		{"empty set", &HintSet{QuestionID: "q1"}, false},
		{"partial set", &HintSet{Hints: []string{"one", "two"}}, false},
		{"full set", &HintSet{Hints: []string{"one", "two", "three"}}, true},
		{"oversized set", &HintSet{Hints: []string{"one", "two", "three", "four"}}, false},
	}

	for _, tt := range tests {
		if got := tt.set.Complete(); got != tt.want {
			t.Errorf("%s: Complete() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNewExecutionRequest(t *testing.T) {
	testCases := []TestCase{{Input: "1 2", ExpectedOutput: "3"}}
	request := NewExecutionRequest("q1", "print(3)", "python", testCases)

	if request.ID.String() == "" {
		t.Error("expected a generated submission id")
	}
	if request.QuestionID != "q1" || request.Language != "python" || len(request.TestCases) != 1 {
		t.Errorf("fields lost: %+v", request)
	}
	if request.SubmittedAt.IsZero() {
		t.Error("expected a submission timestamp")
	}
}
