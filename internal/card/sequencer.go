// Package card drives the greeting card itself: the lock questions, the
// state machine that walks them, and the finale.
package card

import (
	"heartlock/internal/ui"
)

// Status labels shown in the bottom bar.
const (
	statusStandby  = "STANDBY"
	statusRunning  = "RUNNING"
	statusAwaiting = "AWAITING INPUT"
	statusPass     = "PASS"
	statusRetry    = "RETRY"
	statusSuccess  = "SUCCESS"
)

type state int

const (
	stateWelcome state = iota
	stateCutscene
	stateQuestion
	stateFinal
	stateDone
)

// Sequencer walks the card's screens in order: welcome, cutscene, each
// lock question (retried until passed), then the final yes/no lock. The
// walk is a flat loop over explicit states; retries re-enter the same
// state rather than recurse.
type Sequencer struct {
	renderer *ui.Renderer
	input    *ui.Reader
	cutscene *ui.Cutscene
	deck     []Question

	lockIdx  int // 0-based index of the current question
	refusals int // consecutive "no" count at the final lock
}

func NewSequencer(renderer *ui.Renderer, input *ui.Reader, cutscene *ui.Cutscene, deck []Question) *Sequencer {
	return &Sequencer{renderer: renderer, input: input, cutscene: cutscene, deck: deck}
}

// Run plays the card to completion. The only error paths are terminal I/O
// failures; every wrong answer and refusal is ordinary control flow.
func (s *Sequencer) Run() error {
	total := len(s.deck) + 1

	for st := stateWelcome; st != stateDone; {
		switch st {
		case stateWelcome:
			s.renderer.Draw(ui.Frame{
				Title:     "OPERATION: VALENTINE",
				Body:      []string{"Press any key to begin"},
				Footer:    "Controls: A/B/C/D, Y/N",
				LockTotal: total,
				Status:    statusStandby,
			})
			if err := s.input.WaitAny(); err != nil {
				return err
			}
			st = stateCutscene

		case stateCutscene:
			s.cutscene.Play(ui.Frame{
				Title:     "OPERATION: VALENTINE SORTIE",
				Body:      []string{"Cleared for takeoff..."},
				Footer:    "Enjoy the flyby",
				LockTotal: total,
				Status:    statusRunning,
			})
			st = stateQuestion

		case stateQuestion:
			if s.lockIdx >= len(s.deck) {
				st = stateFinal
				continue
			}
			passed, err := s.askQuestion(s.deck[s.lockIdx], s.lockIdx+1, total)
			if err != nil {
				return err
			}
			if passed {
				s.lockIdx++
			}

		case stateFinal:
			done, err := s.finalLock(total)
			if err != nil {
				return err
			}
			if done {
				st = stateDone
			}
		}
	}
	return nil
}

// askQuestion runs a single attempt at one lock. A wrong answer shows the
// question's hint and reports passed=false so the caller re-enters the
// same lock.
func (s *Sequencer) askQuestion(q Question, idx, total int) (bool, error) {
	s.renderer.Draw(ui.Frame{
		Title:     q.Title,
		Body:      q.bodyLines(),
		Footer:    "Choose wisely",
		LockIdx:   idx,
		LockTotal: total,
		Status:    statusAwaiting,
	})

	c, err := s.input.ReadOption()
	if err != nil {
		return false, err
	}

	if Option(c) != q.Correct {
		s.renderer.Draw(ui.Frame{
			Title:     q.Title,
			Body:      []string{"Incorrect.", q.Hint},
			Footer:    "Press any key to retry",
			LockIdx:   idx,
			LockTotal: total,
			Status:    statusRetry,
		})
		return false, s.input.WaitAny()
	}

	s.renderer.Draw(ui.Frame{
		Title:     q.Title,
		Body:      []string{"Correct!"},
		Footer:    "Press any key to continue",
		LockIdx:   idx,
		LockTotal: total,
		Status:    statusPass,
	})
	return true, s.input.WaitAny()
}

// finalLock runs one attempt at the yes/no stage. Refusals pick an
// escalating hint and loop; yes shows the finale and finishes the card.
func (s *Sequencer) finalLock(total int) (bool, error) {
	s.renderer.Draw(ui.Frame{
		Title:     "FINAL LOCK",
		Body:      []string{"Will you be my Valentine? (Y / N)", "(Easy one. Promise.)"},
		Footer:    "Press Y or N",
		LockIdx:   total,
		LockTotal: total,
		Status:    statusAwaiting,
	})

	c, err := s.input.ReadYesNo()
	if err != nil {
		return false, err
	}

	if c == 'N' {
		s.refusals++
		s.renderer.Draw(ui.Frame{
			Title:     "FINAL LOCK",
			Body:      []string{hintForRefusal(s.refusals)},
			Footer:    "Press any key to retry",
			LockIdx:   total,
			LockTotal: total,
			Status:    statusRetry,
		})
		return false, s.input.WaitAny()
	}

	s.renderer.Draw(ui.Frame{
		Title:     "MISSION SUCCESS",
		Body:      finaleLines(s.deck),
		Footer:    "Press any key to exit",
		LockIdx:   total,
		LockTotal: total,
		Status:    statusSuccess,
	})
	return true, s.input.WaitAny()
}
