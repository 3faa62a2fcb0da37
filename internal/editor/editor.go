// Package editor implements the multi-step recipe form as a finite-state
// machine: an explicit transition table plus a pure per-step completion
// predicate, fully decoupled from any rendering concern.
package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/recipevault/recipevault/internal/models"
)

// Step is a wizard state.
type Step int

const (
	StepBasicInfo Step = iota
	StepIngredients
	StepInstructions
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "basic info"
	case StepIngredients:
		return "ingredients"
	case StepInstructions:
		return "instructions"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// forward is the transition table for Next. Review is terminal: leaving it
// happens through Submit, not Next.
var forward = map[Step]Step{
	StepBasicInfo:    StepIngredients,
	StepIngredients:  StepInstructions,
	StepInstructions: StepReview,
}

// backward is the transition table for Back. Backward navigation is always
// allowed regardless of completion.
var backward = map[Step]Step{
	StepIngredients:  StepBasicInfo,
	StepInstructions: StepIngredients,
	StepReview:       StepInstructions,
}

var (
	// ErrStepIncomplete blocks forward navigation past an unfinished step.
	ErrStepIncomplete = errors.New("current step is incomplete")

	// ErrNoSuchTransition is returned for Next on the review step and
	// Back on the first step.
	ErrNoSuchTransition = errors.New("no transition from this step")

	// ErrEmptyDraft guards the submission invariant: ingredients and
	// instructions are never empty at submission time.
	ErrEmptyDraft = errors.New("draft requires at least one ingredient and one instruction")
)

// Dispatcher is the catalog operation Submit hands the finished draft to.
type Dispatcher interface {
	Create(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
}

// Draft is the in-progress recipe accumulated across the steps.
type Draft struct {
	ID                  string // empty for a new recipe, set when editing
	Title               string
	Description         string
	CookingTime         int
	ImageURL            string
	Ingredients         []models.Ingredient
	Instructions        []string
	DietaryRestrictions []string
	Difficulty          string
	Category            string
}

// Editor drives the four-step workflow over a single draft.
type Editor struct {
	step  Step
	draft Draft
}

// New starts a create workflow with the same initial draft the original
// form used: one blank ingredient row, one blank instruction, 30 minutes.
func New() *Editor {
	return &Editor{
		step: StepBasicInfo,
		draft: Draft{
			CookingTime:  30,
			Ingredients:  []models.Ingredient{{Unit: "g"}},
			Instructions: []string{""},
		},
	}
}

// NewFromRecipe starts an edit workflow pre-filled from an existing recipe.
func NewFromRecipe(r *models.Recipe) *Editor {
	return &Editor{
		step: StepBasicInfo,
		draft: Draft{
			ID:                  r.ID,
			Title:               r.Title,
			Description:         r.Description,
			CookingTime:         r.CookingTime,
			ImageURL:            r.ImageURL,
			Ingredients:         append([]models.Ingredient(nil), r.Ingredients...),
			Instructions:        append([]string(nil), r.Instructions...),
			DietaryRestrictions: append([]string(nil), r.DietaryRestrictions...),
			Difficulty:          r.Difficulty,
			Category:            r.Category,
		},
	}
}

// Step returns the current wizard step.
func (e *Editor) Step() Step {
	return e.step
}

// Draft returns a copy of the accumulated draft.
func (e *Editor) Draft() Draft {
	d := e.draft
	d.Ingredients = append([]models.Ingredient(nil), e.draft.Ingredients...)
	d.Instructions = append([]string(nil), e.draft.Instructions...)
	d.DietaryRestrictions = append([]string(nil), e.draft.DietaryRestrictions...)
	return d
}

// SetBasicInfo updates the fields collected on the first step.
func (e *Editor) SetBasicInfo(title, description string, cookingTime int, imageURL, difficulty, category string) {
	e.draft.Title = title
	e.draft.Description = description
	e.draft.CookingTime = cookingTime
	e.draft.ImageURL = imageURL
	e.draft.Difficulty = difficulty
	e.draft.Category = category
}

// ToggleDietary flips a dietary restriction tag on the draft.
func (e *Editor) ToggleDietary(tag string) {
	for i, t := range e.draft.DietaryRestrictions {
		if t == tag {
			e.draft.DietaryRestrictions = append(e.draft.DietaryRestrictions[:i], e.draft.DietaryRestrictions[i+1:]...)
			return
		}
	}
	e.draft.DietaryRestrictions = append(e.draft.DietaryRestrictions, tag)
}

// AddIngredient appends a blank ingredient row.
func (e *Editor) AddIngredient() {
	e.draft.Ingredients = append(e.draft.Ingredients, models.Ingredient{Unit: "g"})
}

// SetIngredient replaces the ingredient at index i.
func (e *Editor) SetIngredient(i int, ing models.Ingredient) error {
	if i < 0 || i >= len(e.draft.Ingredients) {
		return fmt.Errorf("ingredient index %d out of range", i)
	}
	e.draft.Ingredients[i] = ing
	return nil
}

// RemoveIngredient deletes the ingredient at index i.
func (e *Editor) RemoveIngredient(i int) error {
	if i < 0 || i >= len(e.draft.Ingredients) {
		return fmt.Errorf("ingredient index %d out of range", i)
	}
	e.draft.Ingredients = append(e.draft.Ingredients[:i], e.draft.Ingredients[i+1:]...)
	return nil
}

// AddInstruction appends a blank instruction step.
func (e *Editor) AddInstruction() {
	e.draft.Instructions = append(e.draft.Instructions, "")
}

// SetInstruction replaces the instruction at index i.
func (e *Editor) SetInstruction(i int, text string) error {
	if i < 0 || i >= len(e.draft.Instructions) {
		return fmt.Errorf("instruction index %d out of range", i)
	}
	e.draft.Instructions[i] = text
	return nil
}

// RemoveInstruction deletes the instruction at index i.
func (e *Editor) RemoveInstruction(i int) error {
	if i < 0 || i >= len(e.draft.Instructions) {
		return fmt.Errorf("instruction index %d out of range", i)
	}
	e.draft.Instructions = append(e.draft.Instructions[:i], e.draft.Instructions[i+1:]...)
	return nil
}

// IsStepComplete is the pure step gate: whether the given step's required
// fields are filled on the draft.
func IsStepComplete(d Draft, step Step) bool {
	switch step {
	case StepBasicInfo:
		return strings.TrimSpace(d.Title) != ""
	case StepIngredients:
		for _, ing := range d.Ingredients {
			if strings.TrimSpace(ing.Name) == "" || strings.TrimSpace(ing.Amount) == "" {
				return false
			}
		}
		return true
	case StepInstructions:
		for _, inst := range d.Instructions {
			if strings.TrimSpace(inst) == "" {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// IsStepComplete reports whether the editor's current draft completes the
// given step.
func (e *Editor) IsStepComplete(step Step) bool {
	return IsStepComplete(e.draft, step)
}

// Next advances to the following step, gated on the current step being
// complete.
func (e *Editor) Next() error {
	next, okStep := forward[e.step]
	if !okStep {
		return ErrNoSuchTransition
	}
	if !IsStepComplete(e.draft, e.step) {
		return fmt.Errorf("%w: %s", ErrStepIncomplete, e.step)
	}
	e.step = next
	return nil
}

// Back moves to the previous step. Always allowed.
func (e *Editor) Back() error {
	prev, okStep := backward[e.step]
	if !okStep {
		return ErrNoSuchTransition
	}
	e.step = prev
	return nil
}

// Submit validates the draft invariants, attaches the owner and a
// timestamp, and dispatches a create (no draft id) or an update.
func (e *Editor) Submit(ctx context.Context, d Dispatcher, userID string) (*models.Recipe, error) {
	if !IsStepComplete(e.draft, StepBasicInfo) {
		return nil, fmt.Errorf("%w: %s", ErrStepIncomplete, StepBasicInfo)
	}
	if len(e.draft.Ingredients) == 0 || len(e.draft.Instructions) == 0 {
		return nil, ErrEmptyDraft
	}
	if !IsStepComplete(e.draft, StepIngredients) {
		return nil, fmt.Errorf("%w: %s", ErrStepIncomplete, StepIngredients)
	}
	if !IsStepComplete(e.draft, StepInstructions) {
		return nil, fmt.Errorf("%w: %s", ErrStepIncomplete, StepInstructions)
	}

	now := time.Now().UTC()
	recipe := &models.Recipe{
		ID:                  e.draft.ID,
		UserID:              userID,
		Title:               e.draft.Title,
		Description:         e.draft.Description,
		CookingTime:         e.draft.CookingTime,
		ImageURL:            e.draft.ImageURL,
		Ingredients:         append(models.IngredientList(nil), e.draft.Ingredients...),
		Instructions:        append(models.StringList(nil), e.draft.Instructions...),
		DietaryRestrictions: append(models.StringList(nil), e.draft.DietaryRestrictions...),
		Difficulty:          e.draft.Difficulty,
		Category:            e.draft.Category,
		UpdatedAt:           now,
	}

	if e.draft.ID == "" {
		recipe.CreatedAt = now
		return d.Create(ctx, recipe)
	}
	return d.Update(ctx, recipe)
}
