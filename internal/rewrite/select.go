// Package rewrite turns a finding set into a template-based rewrite.
// Selection and application are separate pure functions so the decision
// table can be tested apart from the string manipulation.
package rewrite

import (
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/rules"
)

// TemplateID names one rewrite recipe
type TemplateID string

const (
	TemplateInclusive TemplateID = "A"
	TemplateNeutral   TemplateID = "B"
	TemplateUnmark    TemplateID = "C"
	TemplateEveryone  TemplateID = "E"
	TemplateSwap      TemplateID = "swap"
	TemplateScrub     TemplateID = "scrub"
	TemplateIdentity  TemplateID = "identity"
)

// Select picks a template from the finding set. The decision table is
// evaluated top to bottom, first match wins.
func Select(findings []model.Finding, subjects []rules.Subject, actions []rules.ActionMatch) TemplateID {
	if len(findings) == 0 {
		return TemplateIdentity
	}
	fired := make(map[model.RuleID]bool, len(findings))
	for _, f := range findings {
		fired[f.Rule] = true
	}

	switch {
	case fired[model.RuleContrastiveRoles],
		fired[model.RuleSubjectStereotype] && bothGenders(subjects) && len(actions) >= 2:
		return TemplateInclusive
	case fired[model.RuleSubjectStereotype], fired[model.RuleDiminutive]:
		return TemplateNeutral
	case fired[model.RuleGenderMarking]:
		return TemplateUnmark
	case fired[model.RuleGeneralization]:
		return TemplateEveryone
	case fired[model.RuleAsymmetricalOrdering]:
		return TemplateSwap
	case fired[model.RulePejorative]:
		return TemplateScrub
	case fired[model.RuleNamedEntity]:
		return TemplateNeutral
	default:
		return TemplateIdentity
	}
}

func bothGenders(subjects []rules.Subject) bool {
	var male, female bool
	for _, s := range subjects {
		switch s.Gender {
		case model.GenderMale:
			male = true
		case model.GenderFemale:
			female = true
		}
	}
	return male && female
}
