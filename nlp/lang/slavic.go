package lang

import (
	"yu-val-weiss/udum/nlp/format/conllu"
	nlp "yu-val-weiss/udum/nlp/types"
)

func init() {
	register(Bulgarian, Czech, Polish, Slovenian, Ukrainian)
}

var Bulgarian = Rule{
	Name:  "Bulgarian",
	Check: forbid("Bulgarian", "N"),
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("V") {
			tags.Discard("FIN", "ACT", "IPFV", "PFV")
		}
		if tags.Has("V.PTCP") {
			tags.Discard("ADJ", "V")
			if tags.Has("PRS") {
				tags.Discard("IPFV")
			}
			if !tags.Has("PASS") {
				tags.Add("ACT")
			}
			tags.Replace("PFV", "PST")
		}
		tags.Replace("RL", "SPRL")
		return tags
	},
}

var Czech = Rule{
	Name: "Czech",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("ADJ") {
			tags.Discard("POS")
		}
		if tags.Has("N") {
			tags.Discard("POS", "INAN", "ANIM")
			discardGenders(tags)
		}
		if tags.Has("V") {
			tags.Discard("ACT", "FIN", "POS")
		}
		return tags
	},
}

var Polish = Rule{
	Name: "Polish",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("N") {
			tags.Discard("MASC", "FEM", "NEUT")
			tags.Discard("INAN", "HUM", "NHUM")
		}
		if tags.Has("ADJ") {
			if tags.Has("PL") {
				tags.Discard("MASC", "FEM", "NEUT")
			}
			tags.Discard("HUM", "INAN")
		}
		if tags.Has("V") {
			tags.Discard("ACT", "FIN", "IND", "IPFV")
		}
		// perfective infinitives are plain V;NFIN
		if tags.Is("PFV", "NFIN", "V") {
			tags.Discard("PFV")
		}
		return tags
	},
}

var Slovenian = Rule{
	Name: "Slovenian",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("N") {
			discardGenders(tags)
			tags.Discard("ANIM")
		}
		return tags
	},
}

var Ukrainian = Rule{
	Name: "Ukrainian",
	Adjust: func(row conllu.Row, tags nlp.Bundle) nlp.Bundle {
		if tags.Has("N") {
			discardGenders(tags)
			tags.Discard("INAN", "ANIM")
		}
		if tags.Contains("NFIN", "V") {
			tags.Discard("IPFV", "PFV")
		}
		if tags.Has("V") {
			tags.Discard("FIN", "IND", "PFV", "IPFV")
		}
		if tags.Has("V.CVB") {
			tags.Discard("V")
		}
		return tags
	},
}
