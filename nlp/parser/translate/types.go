package translate

import (
	"yu-val-weiss/udum/nlp/format/conllu"
	nlp "yu-val-weiss/udum/nlp/types"
)

type TagTranslator interface {
	Translate(tag *nlp.UdTag) (nlp.Bundle, error)
}

type RowTranslator interface {
	Translate(row conllu.Row) (conllu.Row, error)
}
