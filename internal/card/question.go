package card

import "fmt"

// Option identifies one of a question's four answer choices.
type Option rune

const (
	OptionA Option = 'A'
	OptionB Option = 'B'
	OptionC Option = 'C'
	OptionD Option = 'D'
)

// Question is one lock: a multiple-choice prompt the player must pass to
// advance. Questions are compiled in and never change during a session.
type Question struct {
	Title   string
	Prompt  string
	Options [4]string
	Correct Option
	Hint    string
}

// bodyLines lays the question out as the centered body of a frame.
func (q Question) bodyLines() []string {
	return []string{
		q.Prompt,
		"",
		fmt.Sprintf("A) %s", q.Options[0]),
		fmt.Sprintf("B) %s", q.Options[1]),
		fmt.Sprintf("C) %s", q.Options[2]),
		fmt.Sprintf("D) %s", q.Options[3]),
		"",
		"Press A / B / C / D",
	}
}

// Deck returns the built-in locks, in play order.
func Deck() []Question {
	return []Question{
		{
			Title:   "LOCK 1: FIRST DATE",
			Prompt:  "Where was our first date?",
			Options: [4]string{"The sushi place", "The diner on 5th", "The amusement park", "The beach"},
			Correct: OptionA,
			Hint:    "Hint: you ordered the dragon roll.",
		},
		{
			Title:   "LOCK 2: OUR SONG",
			Prompt:  "What was playing in the car on the way home?",
			Options: [4]string{"Something jazzy", "The road-trip playlist", "Static, the radio broke", "You were singing"},
			Correct: OptionD,
			Hint:    "Hint: the radio never stood a chance.",
		},
		{
			Title:   "LOCK 3: PLAYER TWO",
			Prompt:  "Which game ate an entire weekend?",
			Options: [4]string{"It Takes Two", "Overcooked", "Stardew Valley", "Mario Kart"},
			Correct: OptionB,
			Hint:    "Hint: the kitchen was on fire. Again.",
		},
	}
}

// Passphrase returns the letters that open the finale vault: each lock's
// correct option in play order, then Y for the final lock.
func Passphrase(deck []Question) []byte {
	pass := make([]byte, 0, len(deck)+1)
	for _, q := range deck {
		pass = append(pass, byte(q.Correct))
	}
	return append(pass, 'Y')
}
