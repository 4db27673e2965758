package model

import "strings"

// Language identifies one of the supported languages by its short tag.
type Language string

const (
	LanguageSetswana Language = "tn"
	LanguageIsiZulu  Language = "zu"
)

// Name returns the human-readable language name
func (l Language) Name() string {
	switch l {
	case LanguageSetswana:
		return "Setswana"
	case LanguageIsiZulu:
		return "isiZulu"
	default:
		return string(l)
	}
}

// NormalizeLanguage maps user-supplied language codes and names to a tag.
// Accepts "tn", "st", "setswana", "zu", "zulu", "isizulu" (case-insensitive).
func NormalizeLanguage(s string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tn", "st", "setswana", "tswana":
		return LanguageSetswana, true
	case "zu", "zulu", "isizulu":
		return LanguageIsiZulu, true
	default:
		return "", false
	}
}

// Gender codes a lexicon entry
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderNeutral Gender = "neutral"
)

// RuleID identifies a detection rule
type RuleID string

const (
	RuleSubjectStereotype    RuleID = "R1"
	RuleContrastiveRoles     RuleID = "R2"
	RuleGenderMarking        RuleID = "R3"
	RuleGeneralization       RuleID = "R4"
	RuleDiminutive           RuleID = "R5"
	RuleAsymmetricalOrdering RuleID = "R6"
	RulePejorative           RuleID = "R7"
	RuleNamedEntity          RuleID = "R8"
)

// Title returns the human-readable rule name used in explanations
func (r RuleID) Title() string {
	switch r {
	case RuleSubjectStereotype:
		return "Subject–Stereotype Match"
	case RuleContrastiveRoles:
		return "Contrastive Gender Roles"
	case RuleGenderMarking:
		return "Unnecessary Gender Marking"
	case RuleGeneralization:
		return "Generalization"
	case RuleDiminutive:
		return "Diminutive/Infantilizing"
	case RuleAsymmetricalOrdering:
		return "Asymmetrical Ordering"
	case RulePejorative:
		return "Pejorative Association"
	case RuleNamedEntity:
		return "Named Entity Stereotype"
	default:
		return string(r)
	}
}

// Finding records one rule firing: the rule, the exact span over the
// analyzed text, and a human-readable justification. Findings are
// append-only during a detection pass and never mutated afterwards.
type Finding struct {
	Rule   RuleID `json:"rule_id"`
	Title  string `json:"rule_triggered"`
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Span   string `json:"span"`
	Reason string `json:"reason"`
}

// NewFinding builds a finding for the given rule over text[start:end]
func NewFinding(rule RuleID, text string, start, end int, reason string) Finding {
	return Finding{
		Rule:   rule,
		Title:  rule.Title(),
		Start:  start,
		End:    end,
		Span:   text[start:end],
		Reason: reason,
	}
}

// CategoryLabel is the single bias-type label assigned to a detected
// instance, drawn from a closed taxonomy.
type CategoryLabel string

const (
	CategoryGender            CategoryLabel = "Gender"
	CategoryOccupational      CategoryLabel = "Occupational & Role Stereotyping"
	CategoryGenderedWording   CategoryLabel = "Gendered Wording"
	CategoryPronominalization CategoryLabel = "Stereotypical Pronominalization"
	CategoryGeneralBias       CategoryLabel = "General Bias"
)

// NormalizeCategory maps a free-form category string (e.g. from a corpus
// file) to a label. Unknown categories fold into General Bias.
func NormalizeCategory(s string) CategoryLabel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gender":
		return CategoryGender
	case "occupational & role stereotyping", "occupational and role stereotyping", "occupational_role_stereotyping":
		return CategoryOccupational
	case "gendered wording", "gendered_wording":
		return CategoryGenderedWording
	case "stereotypical pronominalization", "stereotypical_pronominalization":
		return CategoryPronominalization
	default:
		return CategoryGeneralBias
	}
}

// Exemplar is a read-only (biased, bias-free) pair from the ground-truth
// corpus, surfaced to seed the generative correction prompt.
type Exemplar struct {
	ID           string        `json:"id,omitempty"`
	Language     Language      `json:"language"`
	Category     CategoryLabel `json:"bias_category"`
	BiasedText   string        `json:"biased_text"`
	BiasFreeText string        `json:"bias_free_text"`
	Domain       string        `json:"domain,omitempty"`
}

// RewriteSource records which stage produced the suggested rewrite
type RewriteSource string

const (
	RewriteSourceTemplate RewriteSource = "template"
	RewriteSourceLLM      RewriteSource = "llm"
)

// RewriteResult is the complete outcome of one detection call. It is
// created once per request, owned by the caller, and never cached by the
// core. If DetectedBias is false, Findings is empty, Category is empty,
// and both rewrites equal the input text unchanged.
type RewriteResult struct {
	DetectedBias     bool          `json:"detected_bias"`
	Language         Language      `json:"language_detected"`
	Category         CategoryLabel `json:"category,omitempty"`
	Findings         []Finding     `json:"explanations"`
	TemplateRewrite  string        `json:"template_rewrite"`
	SuggestedRewrite string        `json:"suggested_rewrite"`
	RewriteSource    RewriteSource `json:"rewrite_source"`
	TemplateWarning  bool          `json:"template_warning,omitempty"`
	Exemplars        []Exemplar    `json:"exemplars,omitempty"`
}
