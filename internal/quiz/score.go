package quiz

import "math"

// Progress reports how far through the quiz the user is.
type Progress struct {
	Answered int
	Total    int
}

// Score is the result of comparing recorded answers against the correct
// answers.
type Score struct {
	Correct    int
	Total      int
	Percentage int // round-half-up of Correct/Total*100; 0 when Total is 0
}

// Progress returns the current answered/total counts.
func (s *Session) Progress() Progress {
	return Progress{
		Answered: len(s.answers),
		Total:    len(s.questions),
	}
}

// Score compares each recorded answer against its question's correct
// answer by exact string match — case- and whitespace-sensitive. A
// question whose correct answer matches none of its own options (malformed
// generator output) can therefore never score as correct; that is accepted
// as a data-quality issue upstream, not repaired here.
func (s *Session) Score() Score {
	correct := 0
	for i, q := range s.questions {
		if a, ok := s.answers[i]; ok && a == q.CorrectAnswer {
			correct++
		}
	}
	return Score{
		Correct:    correct,
		Total:      len(s.questions),
		Percentage: percentage(correct, len(s.questions)),
	}
}

// percentage computes round-half-up(correct/total*100), guarding the
// total == 0 case even though NewSession makes it unreachable in practice.
func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(correct)/float64(total)*100 + 0.5))
}
