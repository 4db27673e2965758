// Package rules implements the bias detection pass: locating gendered
// subjects and stereotyped actions in the token stream, then running
// each rule over them in a fixed order.
package rules

import (
	"fmt"

	"github.com/ithute/ithute/internal/annotate"
	"github.com/ithute/ithute/internal/lexicon"
	"github.com/ithute/ithute/internal/model"
	"github.com/ithute/ithute/internal/morph"
)

// Engine runs the detection rules over tokenized text. It is stateless
// apart from the lexicon store and safe for concurrent use.
type Engine struct {
	store *lexicon.Store
}

// NewEngine creates an engine over the given lexicons
func NewEngine(store *lexicon.Store) *Engine {
	return &Engine{store: store}
}

type rule struct {
	id  model.RuleID
	run func(*Input) []model.Finding
}

// Rules run in a fixed order so identical input always yields findings
// in the same sequence.
var ruleTable = []rule{
	{model.RuleSubjectStereotype, ruleSubjectStereotype},
	{model.RuleContrastiveRoles, ruleContrastiveRoles},
	{model.RuleGenderMarking, ruleGenderMarking},
	{model.RuleGeneralization, ruleGeneralization},
	{model.RuleDiminutive, ruleDiminutive},
	{model.RuleAsymmetricalOrdering, ruleAsymmetricalOrdering},
	{model.RulePejorative, rulePejorative},
	{model.RuleNamedEntity, ruleNamedEntity},
}

// Detect runs every rule over the text and returns the concatenated
// findings, duplicates by (rule, start, end) removed. The returned
// slice is never nil.
func (e *Engine) Detect(text string, lang model.Language, tokens []morph.Token, hints []annotate.Hint) ([]model.Finding, error) {
	tab := e.store.Table(lang)
	if tab == nil {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}

	in := &Input{
		Text:     text,
		Tokens:   tokens,
		Table:    tab,
		Hints:    hints,
		subjects: findSubjects(tokens, tab),
		actions:  findActions(tokens, tab),
	}

	findings := make([]model.Finding, 0, 4)
	seen := make(map[string]bool)
	for _, r := range ruleTable {
		for _, f := range r.run(in) {
			key := fmt.Sprintf("%s:%d:%d", f.Rule, f.Start, f.End)
			if seen[key] {
				continue
			}
			seen[key] = true
			findings = append(findings, f)
		}
	}
	return findings, nil
}

// Subjects exposes the subject scan for the rewrite and classification
// stages, which need the same gendered-term locations.
func (e *Engine) Subjects(tokens []morph.Token, lang model.Language) []Subject {
	tab := e.store.Table(lang)
	if tab == nil {
		return nil
	}
	return findSubjects(tokens, tab)
}

// Actions exposes the action scan for the rewrite stage
func (e *Engine) Actions(tokens []morph.Token, lang model.Language) []ActionMatch {
	tab := e.store.Table(lang)
	if tab == nil {
		return nil
	}
	return findActions(tokens, tab)
}
