package lang

import (
	"yu-val-weiss/udum/nlp/format/conllu"
	nlp "yu-val-weiss/udum/nlp/types"
)

func init() {
	register(Danish, Dutch, English, German, NorwegianBokmaal, NorwegianNynorsk, Swedish)
}

var Danish = Rule{
	Name:  "Danish",
	Check: forbid("Danish", "ADJ"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("V") {
			tags.Discard("FIN")
		}
		return tags
	},
}

var Dutch = Rule{
	Name:  "Dutch",
	Check: forbid("Dutch", "N"),
}

var English = Rule{
	Name:  "English",
	Check: requireVerb("English"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		tags.Discard("FIN", "IND")
		if tags.Has("V") {
			tags.Discard("PASS")
		}
		// bare present without person/number is the infinitive
		if tags.Is("V", "PRS") {
			reset(tags, "V", "NFIN")
		}
		if tags.Is("V", "V.MSDR") {
			reset(tags, "PRS", "V", "V.PTCP")
		}
		return tags
	},
}

var German = Rule{
	Name:  "German",
	Check: requireAny("German", "V", "N", "V.PTCP", "V.CVB", "V.MSDR"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		discardGenders(tags)
		tags.Discard("FIN")
		if tags.Is("V", "V.PTCP") {
			reset(tags, "PST", "V.PTCP")
		}
		return tags
	},
}

func norwegianAdjust(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
	tags.Discard("IND", "FIN")
	return tags
}

var NorwegianBokmaal = Rule{
	Name:   "Norwegian-Bokmaal",
	Adjust: norwegianAdjust,
}

var NorwegianNynorsk = Rule{
	Name:   "Norwegian-Nynorsk",
	Adjust: norwegianAdjust,
}

var Swedish = Rule{
	Name: "Swedish",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		tags.Discard("FIN")
		if tags.Has("ADJ") {
			tags.Discard("NOM")
			if tags.Has("V.PTCP") {
				tags.Discard("V.PTCP", "PST", "PRS")
			}
		}
		if tags.Is("ADJ", "PL") {
			tags.Add("INDF")
		}
		if tags.Has("N") {
			tags.Discard("MASC+FEM", "NEUT")
		}
		if tags.Is("ACT", "SUP", "V") || tags.Is("PASS", "SUP", "V") {
			tags.Discard("SUP", "V")
			tags.Add("V.CVB")
		}
		if tags.Is("ADJ", "DEF", "SG") {
			tags.Discard("SG")
		}
		if tags.Is("IND", "PRS", "V") {
			tags.Add("ACT")
		}
		if tags.Is("ACT", "IMP", "V") {
			tags.Discard("ACT")
		}
		return tags
	},
}
