// ABOUTME: YAML program import for coach-built training plans.
// ABOUTME: Validates structure, numbers weeks and days, and reports unknown exercises.
package program

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stslabs/motiv8r/internal/catalog"
	"github.com/stslabs/motiv8r/internal/models"
)

type programYAML struct {
	Name    string     `yaml:"name"`
	Athlete string     `yaml:"athlete,omitempty"`
	Weeks   []weekYAML `yaml:"weeks"`
}

type weekYAML struct {
	Days []dayYAML `yaml:"days"`
}

type dayYAML struct {
	Name      string         `yaml:"name"`
	Exercises []exerciseYAML `yaml:"exercises"`
}

type exerciseYAML struct {
	Name         string  `yaml:"name"`
	Sets         int     `yaml:"sets"`
	Reps         string  `yaml:"reps"`
	Tempo        string  `yaml:"tempo,omitempty"`
	Rest         int     `yaml:"rest,omitempty"`
	TargetWeight float64 `yaml:"target_weight,omitempty"`
}

// Parse builds a Program from a YAML plan. Exercises that miss the catalog
// are allowed (lookup miss is a handled state) but reported so the coach
// can fix typos.
func Parse(data []byte) (*models.Program, []string, error) {
	var doc programYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parsing program: %w", err)
	}

	if doc.Name == "" {
		return nil, nil, fmt.Errorf("program name is required")
	}
	if len(doc.Weeks) == 0 {
		return nil, nil, fmt.Errorf("program %s has no weeks", doc.Name)
	}

	p := models.NewProgram(doc.Name)
	if doc.Athlete != "" {
		p.WithAthlete(doc.Athlete)
	}

	var unknown []string
	seen := map[string]bool{}

	for wi, w := range doc.Weeks {
		if len(w.Days) == 0 {
			return nil, nil, fmt.Errorf("week %d has no days", wi+1)
		}
		week := models.Week{WeekNum: wi + 1}
		for di, d := range w.Days {
			if len(d.Exercises) == 0 {
				return nil, nil, fmt.Errorf("week %d day %d has no exercises", wi+1, di+1)
			}
			day := models.Day{DayNum: di + 1, Name: d.Name}
			if day.Name == "" {
				day.Name = fmt.Sprintf("Day %d", di+1)
			}
			for _, ex := range d.Exercises {
				if ex.Name == "" {
					return nil, nil, fmt.Errorf("week %d day %d: exercise without a name", wi+1, di+1)
				}
				if ex.Sets <= 0 {
					return nil, nil, fmt.Errorf("exercise %s: sets must be positive", ex.Name)
				}
				if ex.Tempo != "" && len(ex.Tempo) != 4 {
					return nil, nil, fmt.Errorf("exercise %s: tempo must be a 4-digit code", ex.Name)
				}
				if _, ok := catalog.Lookup(ex.Name); !ok && !seen[ex.Name] {
					seen[ex.Name] = true
					unknown = append(unknown, ex.Name)
				}
				day.Exercises = append(day.Exercises, models.Prescription{
					Name:         ex.Name,
					Sets:         ex.Sets,
					Reps:         ex.Reps,
					Tempo:        ex.Tempo,
					RestSeconds:  ex.Rest,
					TargetWeight: ex.TargetWeight,
				})
			}
			week.Days = append(week.Days, day)
		}
		p.Weeks = append(p.Weeks, week)
	}

	Normalize(p)
	return p, unknown, nil
}

// ParseFile reads and parses a YAML plan from disk.
func ParseFile(path string) (*models.Program, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading program file: %w", err)
	}
	return Parse(data)
}
