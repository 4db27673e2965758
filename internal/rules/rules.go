package rules

import (
	"fmt"
	"strings"

	"github.com/ithute/ithute/internal/annotate"
	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
)

const (
	// subjectActionWindow bounds how far (in bytes) a stereotyped action
	// may trail its subject for R1
	subjectActionWindow = 80

	// orderingWindow bounds the gap between paired gendered terms for R6
	orderingWindow = 15

	// pejorativeWindow bounds subject-to-pejorative distance for R7
	pejorativeWindow = 40
)

// Input carries everything one detection pass needs. Rules are pure:
// they read the input and return their own finding list.
type Input struct {
	Text   string
	Tokens []morph.Token
	Table  *lexicon.Table
	Hints  []annotate.Hint

	subjects []Subject
	actions  []ActionMatch
}

func genderWord(g model.Gender) string {
	if g == model.GenderFemale {
		return "females"
	}
	return "males"
}

// stereotypeReason returns the R1-style justification for a
// gender/category pairing, or "" when the pairing is not stereotyped.
func stereotypeReason(gender model.Gender, cat lexicon.ActionCategory) string {
	switch {
	case gender == model.GenderFemale && cat == lexicon.ActionDomestic:
		return "Female subject assigned domestic work."
	case gender == model.GenderMale && cat == lexicon.ActionAcademic:
		return "Male subject assigned intellectual/leadership work."
	}
	return ""
}

// ruleSubjectStereotype (R1) flags a gendered subject followed within a
// short window by a stereotypically-associated action.
func ruleSubjectStereotype(in *Input) []model.Finding {
	var findings []model.Finding
	for _, subj := range in.subjects {
		for _, act := range in.actions {
			if act.Start <= subj.Token.End || act.Start-subj.Token.End > subjectActionWindow {
				continue
			}
			reason := stereotypeReason(subj.Gender, act.Category)
			if reason == "" {
				continue
			}
			findings = append(findings, model.NewFinding(
				model.RuleSubjectStereotype, in.Text, subj.Token.Start, act.End, reason))
		}
	}
	return findings
}

// ruleContrastiveRoles (R2) flags a female-domestic and male-academic
// pairing joined by a contrast conjunction.
func ruleContrastiveRoles(in *Input) []model.Finding {
	var male, female []Subject
	for _, s := range in.subjects {
		if s.Gender == model.GenderMale {
			male = append(male, s)
		} else {
			female = append(female, s)
		}
	}
	if len(male) == 0 || len(female) == 0 || len(in.actions) < 2 {
		return nil
	}

	conjFound := false
	for _, conj := range in.Table.ContrastConjunctions {
		if len(MatchPhrase(in.Tokens, conj)) > 0 {
			conjFound = true
			break
		}
	}
	if !conjFound {
		return nil
	}

	// Attribute each action to its closest preceding subject
	femaleDomestic, maleAcademic := false, false
	for _, act := range in.actions {
		var closest *Subject
		closestDist := -1
		for i := range in.subjects {
			dist := act.Start - in.subjects[i].Token.Start
			if dist > 0 && (closestDist < 0 || dist < closestDist) {
				closestDist = dist
				closest = &in.subjects[i]
			}
		}
		if closest == nil {
			continue
		}
		if closest.Gender == model.GenderFemale && act.Category == lexicon.ActionDomestic {
			femaleDomestic = true
		}
		if closest.Gender == model.GenderMale && act.Category == lexicon.ActionAcademic {
			maleAcademic = true
		}
	}
	if !femaleDomestic || !maleAcademic {
		return nil
	}

	start := in.subjects[0].Token.Start
	end := in.actions[len(in.actions)-1].End
	for _, s := range in.subjects {
		if s.Token.Start < start {
			start = s.Token.Start
		}
	}
	return []model.Finding{model.NewFinding(
		model.RuleContrastiveRoles, in.Text, start, end,
		"Female subject assigned domestic work while male subject assigned academic/leadership work.")}
}

// ruleGenderMarking (R3) flags gender-marked occupation compounds that
// have a neutral equivalent.
func ruleGenderMarking(in *Input) []model.Finding {
	var findings []model.Finding
	for _, form := range in.Table.GenderedOccupations {
		for _, sp := range MatchPhrase(in.Tokens, form.Marked) {
			findings = append(findings, model.NewFinding(
				model.RuleGenderMarking, in.Text, sp.Start, sp.End,
				fmt.Sprintf("Occupation %q unnecessarily marked with gender; use neutral form %q instead.",
					form.Marked, form.Neutral)))
		}
	}
	return findings
}

// ruleGeneralization (R4) flags a gendered subject co-occurring with a
// generalization marker in the same sentence.
func ruleGeneralization(in *Input) []model.Finding {
	bounds := sentenceBounds(in.Text, in.Tokens)

	var findings []model.Finding
	for _, subj := range in.subjects {
		for _, marker := range in.Table.GeneralizationMarkers {
			for _, sp := range MatchPhrase(in.Tokens, marker) {
				if !sameSentence(bounds, subj.Token.Start, sp.Start) {
					continue
				}
				start, end := subj.Token.Start, sp.End
				if sp.Start < start {
					start = sp.Start
				}
				if subj.Token.End > end {
					end = subj.Token.End
				}
				findings = append(findings, model.NewFinding(
					model.RuleGeneralization, in.Text, start, end,
					fmt.Sprintf("Generalized claim about %s using %q.", genderWord(subj.Gender), marker)))
			}
		}
	}
	return findings
}

// ruleDiminutive (R5) flags child-coded terms applied to adults
func ruleDiminutive(in *Input) []model.Finding {
	var findings []model.Finding
	for _, pattern := range in.Table.InfantilizingPatterns {
		for _, sp := range MatchPhrase(in.Tokens, pattern) {
			findings = append(findings, model.NewFinding(
				model.RuleDiminutive, in.Text, sp.Start, sp.End,
				"Child-coded term applied to adults."))
		}
	}
	return findings
}

// ruleAsymmetricalOrdering (R6) flags male-before-female term pairs
func ruleAsymmetricalOrdering(in *Input) []model.Finding {
	var findings []model.Finding
	for i := 0; i+1 < len(in.subjects); i++ {
		s1, s2 := in.subjects[i], in.subjects[i+1]
		if s1.Gender != model.GenderMale || s2.Gender != model.GenderFemale {
			continue
		}
		if s2.Token.Start-s1.Token.End >= orderingWindow {
			continue
		}
		findings = append(findings, model.NewFinding(
			model.RuleAsymmetricalOrdering, in.Text, s1.Token.Start, s2.Token.End,
			"Male term consistently placed before female term."))
	}
	return findings
}

// rulePejorative (R7) flags pejorative terms near a gendered subject
func rulePejorative(in *Input) []model.Finding {
	type pejMatch struct {
		token morph.Token
		term  string
	}
	var pejoratives []pejMatch
	for _, t := range in.Tokens {
		if t.IsPunct {
			continue
		}
		if term, ok := in.Table.LookupPejorativeStem(t.Stem); ok {
			pejoratives = append(pejoratives, pejMatch{token: t, term: term})
		}
	}

	var findings []model.Finding
	for _, subj := range in.subjects {
		for _, pej := range pejoratives {
			dist := subj.Token.Start - pej.token.Start
			if dist < 0 {
				dist = -dist
			}
			if dist >= pejorativeWindow {
				continue
			}
			start, end := subj.Token.Start, subj.Token.End
			if pej.token.Start < start {
				start = pej.token.Start
			}
			if pej.token.End > end {
				end = pej.token.End
			}
			findings = append(findings, model.NewFinding(
				model.RulePejorative, in.Text, start, end,
				fmt.Sprintf("Gendered subject %q associated with pejorative term %q.",
					subj.Token.Surface, pej.token.Surface)))
		}
	}
	return findings
}

// ruleNamedEntity (R8) flags stereotype-coded given names paired with a
// matching stereotyped action. Annotation hints extend the builtin name
// list; without hints the rule runs on the lexicon names alone.
func ruleNamedEntity(in *Input) []model.Finding {
	names := make(map[string]model.Gender, len(in.Table.BiasedNames))
	for name, gender := range in.Table.BiasedNames {
		names[strings.ToLower(name)] = gender
	}
	for _, h := range in.Hints {
		if h.Kind == annotate.HintPerson && h.Gender != "" && h.Gender != model.GenderNeutral {
			names[strings.ToLower(h.Text)] = h.Gender
		}
	}

	var findings []model.Finding
	for _, t := range in.Tokens {
		if t.IsPunct {
			continue
		}
		gender, ok := names[t.Lower()]
		if !ok {
			continue
		}
		for _, act := range in.actions {
			if stereotypeReason(gender, act.Category) == "" {
				continue
			}
			start, end := t.Start, act.End
			if act.Start < start {
				start = act.Start
			}
			if t.End > end {
				end = t.End
			}
			findings = append(findings, model.NewFinding(
				model.RuleNamedEntity, in.Text, start, end,
				fmt.Sprintf("Name %q associated with gendered stereotype %q.", t.Surface, act.Phrase)))
		}
	}
	return findings
}
