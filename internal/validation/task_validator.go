package validation

import (
	"fmt"

	"nexttick/internal/config"
	"nexttick/internal/domain"
	"nexttick/internal/errors"
)

// TaskValidator checks task drafts against field-length and ordering
// rules. Rules run in a fixed order and the first violation wins; the
// rejection carries a single human-readable reason.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{validator: NewValidator()}
}

// NewTaskValidatorWithConfig creates a new task validator with configuration
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateDraft validates a task draft for creation. On rejection the
// returned error is a validation AppError whose message is the reason
// shown to the user; no aggregation across rules occurs.
func (tv *TaskValidator) ValidateDraft(draft domain.TaskDraft) error {
	titleMax := tv.validator.getTitleMaxLength()
	if !tv.validator.IsNonEmptyString(draft.Title) || len(draft.Title) > titleMax {
		return errors.NewValidationError(
			fmt.Sprintf("Task title must be between 1 and %d characters.", titleMax))
	}

	descriptionMax := tv.validator.getDescriptionMaxLength()
	if len(draft.Description) > descriptionMax {
		return errors.NewValidationError(
			fmt.Sprintf("Task description must not exceed %d characters.", descriptionMax))
	}

	if draft.EndTime < draft.StartTime {
		return errors.NewValidationError("End date can't be before the start date!")
	}

	return nil
}
