package app

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"yu-val-weiss/udum/nlp/lang"
	"yu-val-weiss/udum/util"

	"github.com/hashicorp/go-multierror"
)

const (
	UD_MARKER = "-ud-"
	UM_MARKER = "-um-"

	CONLLU_EXT = ".conllu"
)

// FileGetter finds a language's gold UniMorph file and UD treebank files
// below the configured directories:
//
//	<um>/<code>-master/<code>
//	<ud>/UD_<Name>-master/<ud code>-ud-*.conllu
type FileGetter struct {
	Config Config
}

func (g FileGetter) UMFile(l lang.Language) string {
	return filepath.Join(g.Config.UniMorphDir, l.UM+"-master", l.UM)
}

func (g FileGetter) UDDir(l lang.Language) string {
	return filepath.Join(g.Config.UDDir, "UD_"+l.Name+"-master")
}

// Get returns the gold file and the sorted UD files of l. All missing
// inputs are reported together; the gold file is not required when
// converting.
func (g FileGetter) Get(l lang.Language, convert bool) (string, []string, error) {
	var result *multierror.Error

	umFile := g.UMFile(l)
	if !convert && !util.FileExists(umFile) {
		result = multierror.Append(result, fmt.Errorf("missing UniMorph file %s", umFile))
	}

	dir := g.UDDir(l)
	udFiles, err := filepath.Glob(filepath.Join(dir, l.UD+UD_MARKER+"*"+CONLLU_EXT))
	if err != nil {
		result = multierror.Append(result, err)
	}
	if len(udFiles) == 0 {
		result = multierror.Append(result, fmt.Errorf("no UD files in %s", dir))
	}
	for _, file := range udFiles {
		if !util.FileExists(file) {
			result = multierror.Append(result, fmt.Errorf("not a file: %s", file))
		}
	}
	sort.Strings(udFiles)
	return umFile, udFiles, result.ErrorOrNil()
}

// OutputPath names the conversion of a UD file: -ud- becomes -um- in the
// file name. Names without -ud- get a -um suffix so that the input is
// never overwritten.
func OutputPath(udFile string) string {
	dir, name := filepath.Split(udFile)
	if strings.Contains(name, UD_MARKER) {
		return filepath.Join(dir, strings.ReplaceAll(name, UD_MARKER, UM_MARKER))
	}
	ext := filepath.Ext(name)
	return filepath.Join(dir, strings.TrimSuffix(name, ext)+"-um"+ext)
}
