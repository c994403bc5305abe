package app

import (
	"fmt"
	"log"
	"os"

	"yu-val-weiss/udum/nlp/format/featmap"
	"yu-val-weiss/udum/util"

	"gopkg.in/yaml.v2"
)

const (
	DEFAULT_UM_DIR       = "data/raw/UM"
	DEFAULT_UD_DIR       = "data/raw/UD"
	DEFAULT_MAPPING_FILE = "UD-UniMorph.tsv"
)

// Config locates the data of a run.
type Config struct {
	UniMorphDir string `yaml:"unimorph"`
	UDDir       string `yaml:"ud"`
	MappingFile string `yaml:"mapping"`
}

func DefaultConfig() Config {
	return Config{
		UniMorphDir: DEFAULT_UM_DIR,
		UDDir:       DEFAULT_UD_DIR,
		MappingFile: DEFAULT_MAPPING_FILE,
	}
}

// ParseConfig reads YAML over the defaults; keys left out keep their
// default value and unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	conf := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, &conf); err != nil {
		return conf, fmt.Errorf("parsing configuration: %w", err)
	}
	return conf, nil
}

func ReadConfigFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return DefaultConfig(), err
	}
	return ParseConfig(data)
}

func (c Config) String() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%#v", c)
	}
	return string(out)
}

// Override replaces the fields for which a non empty value is given.
func (c Config) Override(um, ud, mapping string) Config {
	if len(um) > 0 {
		c.UniMorphDir = um
	}
	if len(ud) > 0 {
		c.UDDir = ud
	}
	if len(mapping) > 0 {
		c.MappingFile = mapping
	}
	return c
}

// ReadMapping finds the mapping file, trying DEFAULT_CONF_DIRS for
// relative names, and reads it.
func (c Config) ReadMapping() (*featmap.Table, error) {
	location, found := util.LocateFile(c.MappingFile, DEFAULT_CONF_DIRS)
	if !found {
		return nil, fmt.Errorf("mapping file %s not found", c.MappingFile)
	}
	table, err := featmap.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("reading mapping %s: %w", location, err)
	}
	log.Println("Read", table.Len(), "feature mappings from", location)
	return table, nil
}

// setupConfig builds the run configuration from -conf and the override
// flags.
func setupConfig() (Config, error) {
	conf := DefaultConfig()
	if len(confFile) > 0 {
		var err error
		if conf, err = ReadConfigFile(confFile); err != nil {
			return conf, err
		}
	}
	return conf.Override(umDir, udDir, mappingFile), nil
}

func ConfigOut(conf Config) {
	log.Println("Configuration")
	log.Printf("Conf File:\t\t%s", confFile)
	log.Printf("Mapping:\t\t%s", conf.MappingFile)
	log.Println()
	log.Println("Data")
	log.Printf("UniMorph:\t\t%s", conf.UniMorphDir)
	log.Printf("UD:\t\t\t%s", conf.UDDir)
	log.Println()
}
