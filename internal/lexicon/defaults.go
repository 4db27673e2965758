package lexicon

import "github.com/ithute/ithute/internal/model"

// DefaultStore returns the built-in lexicons for both supported languages
func DefaultStore() *Store {
	s, err := NewStore(setswanaTable(), isizuluTable())
	if err != nil {
		// Built-in tables are fixed data; a duplicate here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return s
}

func setswanaTable() *Table {
	return &Table{
		Language: model.LanguageSetswana,
		GenderedNouns: map[model.Gender]map[string]string{
			model.GenderMale: {
				"monna":    "man",
				"mosimane": "boy",
				"rra":      "father/sir",
				"ntate":    "father",
				"banna":    "men",
				"basimane": "boys",
				"morwa":    "son",
				"malome":   "uncle",
			},
			model.GenderFemale: {
				"mosadi":    "woman",
				"mosetsana": "girl",
				"mma":       "mother/madam",
				"basadi":    "women",
				"basetsana": "girls",
				"morwadi":   "daughter",
				"rakgadi":   "aunt",
			},
		},
		PluralForms: map[string]bool{
			"banna":     true,
			"basimane":  true,
			"basadi":    true,
			"basetsana": true,
		},
		Titles: map[model.Gender][]string{
			model.GenderMale:   {"rra", "rre", "ntate", "rra-ngaka", "rra-porofesa", "rra-moporesidente"},
			model.GenderFemale: {"mma", "mme", "mma-ngaka", "mma-porofesa", "mme-moporesidente"},
		},
		NeutralSingular: "motho",
		NeutralPlural:   "batho",
		NeutralEveryone: "motho mongwe le mongwe",
		Actions: []Action{
			{Phrase: "apea dijo", Category: ActionDomestic},
			{Phrase: "apea", Category: ActionDomestic},
			{Phrase: "pheha", Category: ActionDomestic},
			{Phrase: "hlatswa dijana", Category: ActionDomestic},
			{Phrase: "phepafatsa ntlo", Category: ActionDomestic},
			{Phrase: "tlhatswa diaparo", Category: ActionDomestic},
			{Phrase: "bala buka", Category: ActionAcademic},
			{Phrase: "bala", Category: ActionAcademic},
			{Phrase: "ruta", Category: ActionAcademic},
			{Phrase: "kaela", Category: ActionAcademic},
			{Phrase: "etelela pele", Category: ActionAcademic},
			{Phrase: "laola", Category: ActionAcademic},
			{Phrase: "aga ntlo", Category: ActionPhysicalLabor},
			{Phrase: "lema", Category: ActionPhysicalLabor},
			{Phrase: "tlhaba", Category: ActionPhysicalLabor},
			{Phrase: "tshwara dipitse", Category: ActionPhysicalLabor},
		},
		Occupations: map[string]string{
			"ngaka":      "doctor",
			"morutabana": "teacher",
			"moithuti":   "student",
			"morekisi":   "seller",
			"modiri":     "worker",
			"molaodi":    "leader",
			"mooki":      "nurse",
			"moenjineri": "engineer",
			"moapei":     "chef/cook",
			"lesole":     "soldier",
		},
		GenderedOccupations: []OccupationForm{
			{Marked: "mosadi-ngaka", Neutral: "ngaka"},
			{Marked: "monna-ngaka", Neutral: "ngaka"},
			{Marked: "mosadi mooki", Neutral: "mooki"},
			{Marked: "monna mooki", Neutral: "mooki"},
		},
		Pejoratives: []string{"isiwula", "mbumbulu", "ohlwempu", "segafi", "sematla", "setlaela"},
		FeminineAdjectives:  []string{"bonolo", "pelotelele", "bokoa", "maitseo"},
		MasculineAdjectives: []string{"thata", "bogale", "nonofo", "pelokgale"},
		GeneralizationMarkers: []string{
			"ka metlha", "ka gale", "ga go na", "ga ba kgone", "ka tlhago", "fela", "tsotlhe",
		},
		ContrastConjunctions: []string{"fa", "le fa", "mme", "fela"},
		InfantilizingPatterns: []string{
			"basetsana ba bagolo",
			"mosetsana yo mogolo",
		},
		MarkerParticles: []string{
			"ke", "ba", "ga", "le", "ka", "mo", "wa", "fa", "kgotsa", "gore", "fela",
		},
		NounClassPrefixes: []string{"mo", "ba", "le", "ma", "se", "di", "n", "bo"},
		VerbPrefixes:      []string{"o", "ba", "a", "e", "ke", "re", "lo"},
		ParticlePrefixes:  []string{"ne", "na", "ku", "kwa", "wa", "la", "lo", "le"},
		BiasedNames: map[string]model.Gender{
			"thandi": model.GenderFemale,
			"lerato": model.GenderFemale,
			"palesa": model.GenderFemale,
			"thabo":  model.GenderMale,
			"mpho":   model.GenderMale,
			"kabelo": model.GenderMale,
		},
	}
}

func isizuluTable() *Table {
	return &Table{
		Language: model.LanguageIsiZulu,
		GenderedNouns: map[model.Gender]map[string]string{
			model.GenderMale: {
				"ubaba":       "father",
				"umfana":      "boy",
				"indoda":      "man",
				"wesilisa":    "male",
				"owesilisa":   "a male",
				"umkhwenyana": "groom/son-in-law",
				"abafana":     "boys",
				"amadoda":     "men",
				"umfowethu":   "brother",
				"bhuti":       "brother",
				"malume":      "uncle",
			},
			model.GenderFemale: {
				"umama":         "mother",
				"intombazane":   "girl",
				"umfazi":        "woman",
				"wesifazane":    "female",
				"owesifazane":   "a female",
				"ugogo":         "grandmother",
				"amantombazane": "girls",
				"abesifazane":   "women",
				"udadewethu":    "sister",
				"sisi":          "sister",
				"anti":          "aunt",
			},
		},
		PluralForms: map[string]bool{
			"abafana":       true,
			"amadoda":       true,
			"amantombazane": true,
			"abesifazane":   true,
		},
		Titles: map[model.Gender][]string{
			model.GenderMale:   {"mnumzane", "baba"},
			model.GenderFemale: {"nkosikazi", "nkosazana", "mama"},
		},
		NeutralSingular: "umuntu",
		NeutralPlural:   "abantu",
		NeutralEveryone: "wonke umuntu",
		Actions: []Action{
			{Phrase: "pheka", Category: ActionDomestic},
			{Phrase: "hlabela", Category: ActionDomestic},
			{Phrase: "geza izitsha", Category: ActionDomestic},
			{Phrase: "hlanza indlu", Category: ActionDomestic},
			{Phrase: "washa izingubo", Category: ActionDomestic},
			{Phrase: "funda incwadi", Category: ActionAcademic},
			{Phrase: "funda", Category: ActionAcademic},
			{Phrase: "fundisa", Category: ActionAcademic},
			{Phrase: "hola", Category: ActionAcademic},
			{Phrase: "qondisa", Category: ActionAcademic},
			{Phrase: "phatha", Category: ActionAcademic},
			{Phrase: "akha indlu", Category: ActionPhysicalLabor},
			{Phrase: "lima", Category: ActionPhysicalLabor},
			{Phrase: "hlaba", Category: ActionPhysicalLabor},
			{Phrase: "gada izinkomo", Category: ActionPhysicalLabor},
		},
		Occupations: map[string]string{
			"udokotela":  "doctor",
			"uthisha":    "teacher",
			"umfundi":    "student",
			"unogada":    "security guard",
			"umsebenzi":  "worker",
			"umholi":     "leader",
			"unesi":      "nurse",
			"unjiniyela": "engineer",
			"ushef":      "chef",
			"isosha":     "soldier",
			"ummeli":     "lawyer",
			"umshushisi": "prosecutor",
			"ijaji":      "judge",
			"intatheli":  "journalist",
			"umbhali":    "writer/author",
			"umqondisi":  "director",
			"umqeqeshi":  "coach",
		},
		GenderedOccupations: []OccupationForm{
			{Marked: "umama udokotela", Neutral: "udokotela"},
			{Marked: "ubaba udokotela", Neutral: "udokotela"},
			{Marked: "umama unesi", Neutral: "unesi"},
			{Marked: "ubaba unesi", Neutral: "unesi"},
			{Marked: "wesifazane umhlengikazi", Neutral: "umhlengikazi"},
			{Marked: "wesilisa umshushisi", Neutral: "umshushisi"},
		},
		Pejoratives: []string{
			"isiwula", "isigebengu", "mbumbulu", "ohlwempu", "ubunuku", "isishimane",
			"isidididi", "ongenamqondo", "ongemthetho",
		},
		FeminineAdjectives:  []string{"mnene", "nothile", "buthaka", "nomusa"},
		MasculineAdjectives: []string{"qinile", "namandla", "nesibindi", "nobudoda"},
		GeneralizationMarkers: []string{
			"njalo", "ngaso sonke isikhathi", "abakwazi", "ngokwemvelo", "kuphela", "bonke",
		},
		ContrastConjunctions: []string{"uma", "kanti", "kodwa", "ngesikhathi"},
		InfantilizingPatterns: []string{
			"amantombazane amadala",
			"intombazane endala",
		},
		MarkerParticles: []string{
			"ngi", "u", "ba", "uma", "ukuthi", "futhi", "kodwa", "noma", "yini", "kanjani",
		},
		NounClassPrefixes: []string{"um", "aba", "u", "o", "isi", "izi", "in", "izin", "ama"},
		VerbPrefixes:      []string{"u", "ba", "a", "i", "ngi", "si", "ni"},
		ParticlePrefixes:  []string{"ne", "na", "ku", "kwa", "wa", "la", "lo", "le"},
		BiasedNames: map[string]model.Gender{
			"thandi": model.GenderFemale,
			"lerato": model.GenderFemale,
			"thabo":  model.GenderMale,
			"sipho":  model.GenderMale,
		},
	}
}
