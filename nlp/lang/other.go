package lang

import (
	"yu-val-weiss/udum/nlp/format/conllu"
	nlp "yu-val-weiss/udum/nlp/types"
)

func init() {
	register(Basque, Estonian, Finnish, Hebrew, Hungarian, Latvian, Turkish, Urdu)
}

var Basque = Rule{
	Name:  "Basque",
	Check: requireVerb("Basque"),
}

var Estonian = Rule{
	Name:  "Estonian",
	Check: forbid("Estonian", "ADJ"),
}

var Finnish = Rule{
	Name: "Finnish",
	Check: checkAll(
		forbidExactly("Finnish", "ADJ;GEN;SG", "ADJ;GEN;PL"),
		forbid("Finnish", "0"),
	),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("V") {
			tags.Replace("FIN", "POS")
		}
		switch {
		case tags.Is("NOM", "PASS", "SG", "V", "V.PTCP"):
			reset(tags, "PASS", "PST", "V.PTCP")
		case tags.Is("ACT", "NOM", "SG", "V", "V.PTCP"):
			reset(tags, "ACT", "PST", "V.PTCP")
		case tags.Is("ACT", "NFIN", "SG", "V"):
			reset(tags, "NFIN", "V")
		}
		return tags
	},
}

var Hebrew = Rule{
	Name:  "Hebrew",
	Check: forbid("Hebrew", "ADJ"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		tags.Discard("MASC", "FEM", "NEUT", "{FEM/MASC}")
		if tags.Has("V.PTCP") {
			tags.Discard("V")
		}
		if tags.Has("V") {
			tags.Discard("ACT", "POS")
		}
		// a bare noun with number only is indefinite
		if tags.Has("N") && tags.Len() == 2 && (tags.Has("SG") || tags.Has("PL")) {
			tags.Add("NDEF")
		}
		return tags
	},
}

var Hungarian = Rule{
	Name:  "Hungarian",
	Check: forbid("Hungarian", "ADJ"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		tags.Discard("FIN", "ACT")
		if tags.Has("NFIN") {
			tags.Discard("PRS")
		}
		return tags
	},
}

var Latvian = Rule{
	Name: "Latvian",
	Check: checkAll(
		forbidExactly("Latvian", "3;IND;PRS;V", "3;IND;PST;V", "3;IND;FUT;V"),
		forbid("Latvian", "ESS"),
	),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("V") {
			tags.Discard("FH", "POS", "NEG", "ACT", "FIN", "REFL")
		}
		if tags.Has("N") {
			discardGenders(tags)
		}
		if tags.Is("COND", "V") {
			tags.Add("PRS")
		}
		return tags
	},
}

var Turkish = Rule{
	Name: "Turkish",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("N") {
			tags.Discard("3")
		}
		return tags
	},
}

var Urdu = Rule{
	Name:  "Urdu",
	Check: forbid("Urdu", "ADJ"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		discardGenders(tags)
		if tags.Contains("N", "SG") || tags.Contains("N", "PL") || tags.Has("PROPN") {
			tags.Discard("3")
		}
		return tags
	},
}
