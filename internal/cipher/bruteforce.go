package cipher

// Candidate is one possible plaintext recovered by BruteForce.
type Candidate struct {
	Shift int
	Text  string
}

// BruteForce decodes text with every non-zero shift, in ascending shift order.
func BruteForce(text string) []Candidate {
	candidates := make([]Candidate, 0, alphabetSize-1)
	for shift := 1; shift < alphabetSize; shift++ {
		candidates = append(candidates, Candidate{
			Shift: shift,
			Text:  Decode(text, shift),
		})
	}
	return candidates
}
