package quiz

import "testing"

func TestBuildSummary(t *testing.T) {
	s, _ := NewSession(fourQuestions())
	for i, a := range []string{"B", "A", "A", "D"} {
		s.SubmitAnswer(i, a)
	}

	sum := BuildSummary(s)
	if sum.Score.Percentage != 50 {
		t.Errorf("Percentage = %d, want 50", sum.Score.Percentage)
	}
	if len(sum.Records) != 4 {
		t.Fatalf("Records = %d, want 4", len(sum.Records))
	}
	wantCorrect := []bool{true, false, true, false}
	for i, r := range sum.Records {
		if r.Correct != wantCorrect[i] {
			t.Errorf("Records[%d].Correct = %v, want %v", i, r.Correct, wantCorrect[i])
		}
	}
}

func TestBuildSummary_Partial(t *testing.T) {
	s, _ := NewSession(fourQuestions())
	s.SubmitAnswer(2, "A")

	sum := BuildSummary(s)
	if sum.Records[0].Answer != "" {
		t.Errorf("unanswered record has Answer = %q", sum.Records[0].Answer)
	}
	if !sum.Records[2].Correct {
		t.Error("Records[2] should be correct")
	}
}

func TestVerdict(t *testing.T) {
	cases := []struct {
		pct  int
		want string
	}{
		{100, "Excellent work!"},
		{80, "Excellent work!"},
		{79, "Good effort!"},
		{50, "Good effort!"},
		{49, "Keep practicing!"},
		{0, "Keep practicing!"},
	}
	for _, tc := range cases {
		if got := Verdict(tc.pct); got != tc.want {
			t.Errorf("Verdict(%d) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}
