// ABOUTME: Program state machine: derives day and week statuses from completion.
// ABOUTME: Exactly one current day exists at any time, or zero when the program is done.
package program

import (
	"fmt"
	"strings"

	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/store"
)

// Normalize recomputes every day and week status from which days are
// completed. The first incomplete day in program order becomes current
// (kept in_progress if it was already started); days after it in the same
// week are upcoming; every later week is locked until the week before it
// completes in full.
func Normalize(p *models.Program) {
	activeWeek := -1
	for wi := range p.Weeks {
		if !weekComplete(&p.Weeks[wi]) {
			activeWeek = wi
			break
		}
	}

	for wi := range p.Weeks {
		week := &p.Weeks[wi]
		switch {
		case activeWeek == -1 || wi < activeWeek:
			week.Status = models.WeekCompleted
			for di := range week.Days {
				week.Days[di].Status = models.DayCompleted
			}
		case wi == activeWeek:
			week.Status = models.WeekInProgress
			normalizeActiveWeek(week)
		default:
			week.Status = models.WeekLocked
			for di := range week.Days {
				week.Days[di].Status = models.DayLocked
			}
		}
	}
}

func normalizeActiveWeek(week *models.Week) {
	currentSeen := false
	for di := range week.Days {
		day := &week.Days[di]
		switch {
		case day.Status == models.DayCompleted:
			// keep
		case !currentSeen:
			currentSeen = true
			if day.Status != models.DayInProgress {
				day.Status = models.DayCurrent
			}
		default:
			day.Status = models.DayUpcoming
		}
	}
}

func weekComplete(w *models.Week) bool {
	for i := range w.Days {
		if w.Days[i].Status != models.DayCompleted {
			return false
		}
	}
	return true
}

// CurrentDay returns the single actionable day, or false when the program
// is fully completed.
func CurrentDay(p *models.Program) (*models.Week, *models.Day, bool) {
	for wi := range p.Weeks {
		for di := range p.Weeks[wi].Days {
			day := &p.Weeks[wi].Days[di]
			if day.Status == models.DayCurrent || day.Status == models.DayInProgress {
				return &p.Weeks[wi], day, true
			}
		}
	}
	return nil, nil, false
}

// StartDay transitions the current day into a workout session.
func StartDay(p *models.Program) (*models.Week, *models.Day, error) {
	week, day, ok := CurrentDay(p)
	if !ok {
		return nil, nil, fmt.Errorf("program %s is fully completed", p.Name)
	}
	day.Status = models.DayInProgress
	return week, day, nil
}

// CompleteDay marks the active day completed and advances the program,
// cascading to the next week when this one is done.
func CompleteDay(p *models.Program) (*models.Day, error) {
	_, day, ok := CurrentDay(p)
	if !ok {
		return nil, fmt.Errorf("program %s is fully completed", p.Name)
	}
	day.Status = models.DayCompleted
	Normalize(p)
	return day, nil
}

// Completed reports whether every day in the program is done.
func Completed(p *models.Program) bool {
	for wi := range p.Weeks {
		if !weekComplete(&p.Weeks[wi]) {
			return false
		}
	}
	return true
}

// LoadAll reads the persisted program list. An empty list on any read
// failure is the caller's default.
func LoadAll(s *store.Store) []*models.Program {
	var programs []*models.Program
	s.Get(store.KeyPrograms, &programs)
	return programs
}

// SaveAll persists the program list.
func SaveAll(s *store.Store, programs []*models.Program) error {
	return s.Set(store.KeyPrograms, programs)
}

// Find resolves a program by ID prefix or case-insensitive name.
func Find(programs []*models.Program, idOrName string) (*models.Program, error) {
	var matches []*models.Program
	for _, p := range programs {
		if strings.HasPrefix(p.ID.String(), idOrName) || strings.EqualFold(p.Name, idOrName) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("not found: %s", idOrName)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %s: matches multiple programs", idOrName)
	}
	return matches[0], nil
}
