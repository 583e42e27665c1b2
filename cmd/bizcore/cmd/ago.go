package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/bizcore/utils/clockx"
	"github.com/msto63/bizcore/utils/relativex"
)

var (
	agoFull bool
	agoNow  string
)

var agoCmd = &cobra.Command{
	Use:   "ago <zeitpunkt>",
	Short: "Relative Zeitangabe in Worten",
	Long: `Gibt den Abstand zum angegebenen Zeitpunkt als Phrase aus,
z.B. "hace 5 días, 2 horas". Ohne --full werden nur die zwei
größten Einheiten ausgegeben.`,
	Args: cobra.ExactArgs(1),
	RunE: runAgo,
}

func init() {
	agoCmd.Flags().BoolVar(&agoFull, "full", false, "Alle Einheiten ausgeben")
	agoCmd.Flags().StringVar(&agoNow, "now", "", "Bezugszeitpunkt (default: jetzt)")
	rootCmd.AddCommand(agoCmd)
}

func runAgo(cmd *cobra.Command, args []string) error {
	target, err := clockx.Parse(args[0])
	if err != nil {
		printError("ungültiger Zeitpunkt", err)
		return err
	}

	lex, err := loadLexicon()
	if err != nil {
		printError("Lexikon konnte nicht geladen werden", err)
		return err
	}

	now := time.Now()
	if agoNow != "" {
		if now, err = clockx.Parse(agoNow); err != nil {
			printError("ungültiger Bezugszeitpunkt", err)
			return err
		}
	}

	formatter := &relativex.Formatter{Lexicon: lex}
	printResult("phrase", formatter.Format(now, target, agoFull))
	return nil
}
