// ABOUTME: MCP tool implementations for training operations.
// ABOUTME: Covers the catalog, quests, program status, and the workout flow.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stslabs/motiv8r/internal/catalog"
	"github.com/stslabs/motiv8r/internal/models"
	"github.com/stslabs/motiv8r/internal/program"
	"github.com/stslabs/motiv8r/internal/session"
)

func (s *Server) registerTools() {
	// search_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_exercises",
		Description: "Search the exercise catalog by name, category, or muscle",
	}, s.handleSearchExercises)

	// get_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_exercise",
		Description: "Get full details for one exercise by name (case-insensitive)",
	}, s.handleGetExercise)

	// today_quests
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "today_quests",
		Description: "List today's daily quests with progress and claim state",
	}, s.handleTodayQuests)

	// claim_quest
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "claim_quest",
		Description: "Claim a completed daily quest's XP reward",
	}, s.handleClaimQuest)

	// program_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "program_status",
		Description: "Show a training program's weeks, days, and current day",
	}, s.handleProgramStatus)

	// start_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start a workout on a program's current day",
	}, s.handleStartWorkout)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log a completed set in the active workout",
	}, s.handleLogSet)

	// finish_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_workout",
		Description: "Finish the active workout, saving history, PRs, and XP",
	}, s.handleFinishWorkout)

	// xp_total
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "xp_total",
		Description: "Get the running XP total",
	}, s.handleXPTotal)
}

// Tool input/output types

type searchExercisesInput struct {
	Query string `json:"query,omitempty" jsonschema:"Search text; empty lists the whole catalog"`
}

type getExerciseInput struct {
	Name string `json:"name" jsonschema:"Exercise name (case-insensitive)"`
}

type claimQuestInput struct {
	QuestID string `json:"quest_id" jsonschema:"Quest ID from today_quests"`
}

type claimQuestOutput struct {
	QuestID    string `json:"quest_id"`
	XPAwarded  int    `json:"xp_awarded"`
	TotalXP    int    `json:"total_xp"`
	AllClaimed bool   `json:"all_claimed"`
	Message    string `json:"message"`
}

type programInput struct {
	Program string `json:"program,omitempty" jsonschema:"Program name or ID prefix; empty uses the only program"`
}

type startWorkoutOutput struct {
	Program string `json:"program"`
	Week    int    `json:"week"`
	Day     int    `json:"day"`
	DayName string `json:"day_name"`
	Message string `json:"message"`
}

type logSetInput struct {
	Exercise string  `json:"exercise" jsonschema:"Exercise name"`
	Weight   float64 `json:"weight" jsonschema:"Weight lifted; negative values floor to 0"`
	Reps     int     `json:"reps" jsonschema:"Reps completed; negative values floor to 0"`
	RPE      *int    `json:"rpe,omitempty" jsonschema:"Perceived exertion 6-10; clamped when outside the scale"`
}

type logSetOutput struct {
	Exercise  string  `json:"exercise"`
	SetNumber int     `json:"set_number"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Volume    float64 `json:"volume"`
	Message   string  `json:"message"`
}

type finishWorkoutOutput struct {
	DayName     string  `json:"day_name"`
	Sets        int     `json:"sets"`
	TotalVolume float64 `json:"total_volume"`
	XPAwarded   int     `json:"xp_awarded"`
	TotalXP     int     `json:"total_xp"`
	Message     string  `json:"message"`
}

type xpOutput struct {
	TotalXP int `json:"total_xp"`
}

// Tool handlers

func (s *Server) handleSearchExercises(ctx context.Context, req *mcp.CallToolRequest, input searchExercisesInput) (*mcp.CallToolResult, any, error) {
	if input.Query == "" {
		return nil, catalog.All(), nil
	}
	results := catalog.Search(input.Query)
	if len(results) == 0 {
		return nil, map[string]any{"message": "No exercises found."}, nil
	}
	return nil, results, nil
}

func (s *Server) handleGetExercise(ctx context.Context, req *mcp.CallToolRequest, input getExerciseInput) (*mcp.CallToolResult, any, error) {
	ex, ok := catalog.Lookup(input.Name)
	if !ok {
		return nil, nil, fmt.Errorf("exercise not found: %s", input.Name)
	}
	return nil, ex, nil
}

func (s *Server) handleTodayQuests(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, map[string]any{
		"quests":      s.engine.Status(),
		"all_claimed": s.engine.AllClaimed(),
		"total_xp":    s.engine.TotalXP(),
	}, nil
}

func (s *Server) handleClaimQuest(ctx context.Context, req *mcp.CallToolRequest, input claimQuestInput) (*mcp.CallToolResult, claimQuestOutput, error) {
	xp, err := s.engine.Claim(input.QuestID)
	if err != nil {
		return nil, claimQuestOutput{}, err
	}

	msg := fmt.Sprintf("Claimed %s for %d XP", input.QuestID, xp)
	if xp == 0 {
		msg = fmt.Sprintf("%s was already claimed", input.QuestID)
	}
	return nil, claimQuestOutput{
		QuestID:    input.QuestID,
		XPAwarded:  xp,
		TotalXP:    s.engine.TotalXP(),
		AllClaimed: s.engine.AllClaimed(),
		Message:    msg,
	}, nil
}

func (s *Server) handleProgramStatus(ctx context.Context, req *mcp.CallToolRequest, input programInput) (*mcp.CallToolResult, any, error) {
	prog, _, err := s.findProgram(input.Program)
	if err != nil {
		return nil, nil, err
	}
	return nil, prog, nil
}

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input programInput) (*mcp.CallToolResult, startWorkoutOutput, error) {
	if s.active != nil {
		return nil, startWorkoutOutput{}, fmt.Errorf("a workout is already in progress; finish it first")
	}

	prog, programs, err := s.findProgram(input.Program)
	if err != nil {
		return nil, startWorkoutOutput{}, err
	}

	sess, err := session.Start(s.store, s.engine, programs, prog)
	if err != nil {
		return nil, startWorkoutOutput{}, err
	}
	s.active = sess

	return nil, startWorkoutOutput{
		Program: prog.Name,
		Week:    sess.Week().WeekNum,
		Day:     sess.Day().DayNum,
		DayName: sess.Day().Name,
		Message: fmt.Sprintf("Started %s, week %d day %d (%s)", prog.Name, sess.Week().WeekNum, sess.Day().DayNum, sess.Day().Name),
	}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, logSetOutput, error) {
	if s.active == nil {
		return nil, logSetOutput{}, fmt.Errorf("no workout in progress; call start_workout first")
	}
	if input.Exercise == "" {
		return nil, logSetOutput{}, fmt.Errorf("exercise is required")
	}

	d := s.active.DraftFor(input.Exercise)
	setNumber := d.SetNumber
	s.active.DiscardDraft(input.Exercise)

	entry := s.active.LogSet(input.Exercise, setNumber, input.Weight, input.Reps, input.RPE)

	return nil, logSetOutput{
		Exercise:  entry.ExerciseName,
		SetNumber: entry.SetNumber,
		Weight:    entry.Weight,
		Reps:      entry.Reps,
		Volume:    entry.Volume(),
		Message:   fmt.Sprintf("Logged %s set %d: %.1f x %d", entry.ExerciseName, entry.SetNumber, entry.Weight, entry.Reps),
	}, nil
}

func (s *Server) handleFinishWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, finishWorkoutOutput, error) {
	if s.active == nil {
		return nil, finishWorkoutOutput{}, fmt.Errorf("no workout in progress")
	}

	rec, err := s.active.Finish()
	if err != nil {
		return nil, finishWorkoutOutput{}, err
	}
	s.active = nil

	return nil, finishWorkoutOutput{
		DayName:     rec.DayName,
		Sets:        len(rec.Entries),
		TotalVolume: rec.TotalVolume,
		XPAwarded:   rec.XPAwarded,
		TotalXP:     s.engine.TotalXP(),
		Message:     fmt.Sprintf("Finished %s: %d sets, %.0f total volume, %d XP", rec.DayName, len(rec.Entries), rec.TotalVolume, rec.XPAwarded),
	}, nil
}

func (s *Server) handleXPTotal(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, xpOutput, error) {
	return nil, xpOutput{TotalXP: s.engine.TotalXP()}, nil
}

// findProgram resolves a name or ID prefix, defaulting to the only stored
// program when the query is empty.
func (s *Server) findProgram(query string) (*models.Program, []*models.Program, error) {
	all := program.LoadAll(s.store)
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("no programs imported")
	}
	if query == "" {
		if len(all) > 1 {
			return nil, nil, fmt.Errorf("%d programs stored; name one", len(all))
		}
		return all[0], all, nil
	}
	p, err := program.Find(all, query)
	if err != nil {
		return nil, nil, err
	}
	return p, all, nil
}
