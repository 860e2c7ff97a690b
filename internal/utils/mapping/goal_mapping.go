package mapping

import (
	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/models"
)

// ToModelGoal converts a domain Goal to a model Goal
func ToModelGoal(d domain.Goal) models.Goal {
	return models.Goal{
		GoalID:       d.GoalID,
		WorkspaceID:  d.WorkspaceID,
		Name:         d.Name,
		TargetAmount: d.TargetAmount,
		TargetDate:   d.TargetDate,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoal converts a model Goal to a domain Goal
func ToDomainGoal(m models.Goal) domain.Goal {
	return domain.Goal{
		GoalID:       m.GoalID,
		WorkspaceID:  m.WorkspaceID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		TargetDate:   m.TargetDate,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelGoalContribution converts a domain GoalContribution to a model GoalContribution
func ToModelGoalContribution(d domain.GoalContribution) models.GoalContribution {
	return models.GoalContribution{
		ContributionID: d.ContributionID,
		GoalID:         d.GoalID,
		Amount:         d.Amount,
		Date:           d.Date,
		Note:           d.Note,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGoalContribution converts a model GoalContribution to a domain GoalContribution
func ToDomainGoalContribution(m models.GoalContribution) domain.GoalContribution {
	return domain.GoalContribution{
		ContributionID: m.ContributionID,
		GoalID:         m.GoalID,
		Amount:         m.Amount,
		Date:           m.Date,
		Note:           m.Note,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGoalContributionSlice converts a slice of model GoalContributions to domain GoalContributions
func ToDomainGoalContributionSlice(ms []models.GoalContribution) []domain.GoalContribution {
	ds := make([]domain.GoalContribution, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGoalContribution(m)
	}
	return ds
}
