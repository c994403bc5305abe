package lang

import (
	"strings"

	"yu-val-weiss/udum/nlp/format/conllu"
	nlp "yu-val-weiss/udum/nlp/types"
)

func init() {
	register(Catalan, French, Italian, Latin, Portuguese, Romanian, Spanish)
}

// romanceVerb splits UD's Tense=Past into UniMorph's preterite (PST;PFV)
// and keeps imperfects as PST;IPFV. With aspectlessSubjunctive past
// subjunctives stay without aspect.
func romanceVerb(tags nlp.Bundle, imperative, aspectlessSubjunctive bool) {
	tags.Discard("FIN")
	if tags.Has("PST") && !tags.Has("IPFV") && !(aspectlessSubjunctive && tags.Has("SBJV")) {
		tags.Add("PFV")
	}
	if tags.Has("IPFV") {
		tags.Add("PST")
	}
	if tags.Has("COND") {
		tags.Discard("PRS")
	}
	if imperative && tags.Has("IMP") {
		tags.Add("POS")
		tags.Discard("PRS")
	}
}

// participles carry neither gender nor number in UniMorph
func romanceParticiple(tags nlp.Bundle) {
	if tags.Has("V.PTCP") {
		tags.Discard("V", "MASC", "FEM", "SG", "PL")
	}
}

var Catalan = Rule{
	Name:  "Catalan",
	Check: requireVerb("Catalan"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("V.PTCP") {
			tags.Discard("V")
		}
		if tags.Has("V") {
			romanceVerb(tags, true, true)
		}
		if tags.Is("V", "V.MSDR") {
			reset(tags, "PRS", "V.PTCP")
		}
		if tags.ContainsStrictly("IPFV", "SBJV") {
			tags.Discard("IPFV")
		}
		return tags
	},
}

var French = Rule{
	Name:  "French",
	Check: requireVerb("French"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		romanceParticiple(tags)
		if tags.Has("V") {
			romanceVerb(tags, true, false)
		}
		if tags.Is("V", "V.MSDR") {
			reset(tags, "PRS", "V.CVB")
		}
		return tags
	},
}

var Italian = Rule{
	Name: "Italian",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		romanceParticiple(tags)
		if tags.Has("V") {
			romanceVerb(tags, false, false)
		}
		if tags.Is("V", "V.MSDR") {
			reset(tags, "PRS", "V.CVB")
		}
		return tags
	},
}

var Latin = Rule{
	Name: "Latin",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("N") {
			discardGenders(tags)
		}
		if tags.Has("V") {
			tags.Discard("ACT", "FIN")
		}
		return tags
	},
}

var Portuguese = Rule{
	Name:  "Portuguese",
	Check: requireVerb("Portuguese"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("V.PTCP") {
			tags.Discard("V")
			tags.Replace("PASS", "PST")
			if !tags.Has("PRS") {
				tags.Add("PST")
			}
			if (strings.HasSuffix(row.Form, "do") || strings.HasSuffix(row.Form, "to")) && tags.Is("PST", "V.PTCP") {
				tags.Add("MASC", "SG")
			}
		}
		if tags.Has("V") {
			tags.Discard("FIN", "PASS")
		}
		if tags.Is("V", "V.MSDR") {
			reset(tags, "V.PTCP", "PRS")
		}
		if tags.Has("V") {
			if tags.Has("PST") && !tags.Has("IPFV") && !tags.Has("PRF") {
				tags.Add("PFV")
			}
			if tags.Has("IPFV") {
				tags.Add("PST")
			}
			if strings.HasSuffix(row.Form, "ram") && tags.Is("3", "IND", "PL", "V") {
				tags.Add("PFV", "PST")
			}
			if tags.Has("PST+PRF") {
				tags.Discard("PST+PRF")
				tags.Add("PST", "PRF")
			}
		}
		return tags
	},
}

var Romanian = Rule{
	Name: "Romanian",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("V") {
			tags.Discard("FIN")
		}
		// the gold data writes this alternation without braces
		tags.Replace("{ACC/NOM}", "NOM/ACC")
		if tags.Has("N") {
			discardGenders(tags)
		}
		if tags.ContainsStrictly("V", "PST", "IND") {
			tags.Add("PFV")
		}
		return tags
	},
}

var Spanish = Rule{
	Name:  "Spanish",
	Check: requireVerb("Spanish"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		tags.Discard("FIN")
		tags.Replace("AUX", "V")
		if tags.ContainsStrictly("V", "V.PTCP") {
			tags.Discard("V")
		}
		if tags.Is("V", "V.MSDR") {
			reset(tags, "PRS", "V.CVB")
		}
		if tags.Has("PST") && !tags.Has("V.PTCP") && !tags.Has("IPFV") && !tags.Has("SBJV") {
			tags.Add("PFV")
		}
		if tags.ContainsStrictly("IND", "IPFV") {
			tags.Add("PST")
		}
		if tags.Has("IMP") {
			tags.Add("POS")
		}
		if tags.ContainsStrictly("IPFV", "SBJV") {
			tags.Discard("IPFV")
			tags.Add("PST")
			// -ra forms of the imperfect subjunctive, as opposed to -se
			if strings.HasSuffix(row.Form, "ra") || strings.HasSuffix(row.Form, "ran") {
				tags.Add("LGSPEC1")
			}
		}
		return tags
	},
}
