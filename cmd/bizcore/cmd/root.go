package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/bizcore/core/config"
	"github.com/msto63/bizcore/core/i18n"
	"github.com/msto63/bizcore/core/log"
	"github.com/msto63/bizcore/utils/workdayx"
)

var (
	cfgFile      string
	verbose      bool
	localeFile   string
	outputFormat string

	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bizcore",
	Short: "bizcore - Kalender- und Strukturwerkzeuge",
	Long: `bizcore ist eine Werkzeugsammlung für Geschäftskalender und
Datenstrukturen.

Befehle:
  workday  - Arbeitstagsarithmetik mit Feiertagen
  period   - YYYYMM-Periodenarithmetik
  ago      - Relative Zeitangaben in Worten`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New().
			WithName("bizcore").
			WithCorrelationID(uuid.New().String())
		if verbose {
			logger = logger.WithLevel(log.LevelDebug)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	rootCmd.PersistentFlags().StringVar(&localeFile, "locale", "", "Lexikon-Datei (default: eingebautes Spanisch)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Ausgabeformat (text oder yaml)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// printResult writes a single result value, as plain text or as a YAML
// document depending on --output
func printResult(key string, value interface{}) {
	if outputFormat == "yaml" {
		if data, err := yaml.Marshal(map[string]interface{}{key: value}); err == nil {
			fmt.Print(string(data))
			return
		}
	}
	fmt.Println(value)
}

// printBool writes a yes/no result, keeping a real boolean in YAML output
func printBool(key string, value bool) {
	if outputFormat == "yaml" {
		printResult(key, value)
		return
	}
	if value {
		fmt.Println("ja")
	} else {
		fmt.Println("nein")
	}
}

// loadConfig loads the configured file, or returns an empty configuration
// when no --config was given
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.LoadFromString("", config.FormatTOML)
	}
	return config.LoadWithOptions(cfgFile, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "BIZCORE",
	})
}

// loadHolidays builds the holiday set from the configuration
func loadHolidays() (workdayx.HolidaySet, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	set, err := cfg.HolidaySet()
	if err != nil {
		return nil, err
	}
	logger.Debug("holiday set loaded", log.Int("holidays", len(set)))
	return set, nil
}

// loadLexicon resolves the phrase lexicon, honoring --locale
func loadLexicon() (*i18n.Lexicon, error) {
	if localeFile == "" {
		return i18n.Default(), nil
	}
	return i18n.LoadFile(localeFile)
}
