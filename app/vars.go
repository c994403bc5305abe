package app

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/gonuts/commander"
)

var (
	DEFAULT_CONF_DIRS = []string{".", "conf", "data"}

	// run configuration
	confFile    string
	umDir       string
	udDir       string
	mappingFile string

	// processing options
	langCodes string
	basic     bool
	printGood bool

	// file names
	udFile  string
	outFile string
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		log.Println("Error accessing file", filename)
		log.Println(err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, flag := range required {
		f := cmd.Flag.Lookup(flag)
		if f.Value.String() == "" {
			log.Printf("Required flag %s not set", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}

// ConfigFlags registers the flags shared by every command reading the
// UD/UniMorph data.
func ConfigFlags(fs *flag.FlagSet) {
	fs.StringVar(&confFile, "conf", "", "YAML run configuration")
	fs.StringVar(&umDir, "um", "", "UniMorph data directory (overrides configuration)")
	fs.StringVar(&udDir, "uddir", "", "UD data directory (overrides configuration)")
	fs.StringVar(&mappingFile, "map", "", "UD-UniMorph mapping TSV (overrides configuration)")
}

// ModeFlags registers the translation mode flags.
func ModeFlags(fs *flag.FlagSet) {
	fs.BoolVar(&basic, "basic", false, "Use the language independent translation only")
}

// SplitLanguages splits a -l flag value on commas and whitespace.
func SplitLanguages(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
