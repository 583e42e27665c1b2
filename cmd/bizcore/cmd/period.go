package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/bizcore/utils/periodx"
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "YYYYMM-Periodenarithmetik",
	Long: `Rechnet mit kompakten Periodenschlüsseln: YYYYMM für Monate,
YYYY für ganze Jahre. 0 steht für die aktuelle Periode.`,
}

var periodAddCmd = &cobra.Command{
	Use:   "add <periode> <monate>",
	Short: "Addiert Monate auf eine Periode",
	Args:  cobra.ExactArgs(2),
	RunE:  runPeriodAdd,
}

var periodSubCmd = &cobra.Command{
	Use:   "sub <periode> <monate>",
	Short: "Subtrahiert Monate von einer Periode",
	Args:  cobra.ExactArgs(2),
	RunE:  runPeriodSub,
}

var periodFormatCmd = &cobra.Command{
	Use:   "format <periode>",
	Short: "Formatiert eine Periode als Monatsname und Jahr",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeriodFormat,
}

var periodDaysCmd = &cobra.Command{
	Use:   "days <periode>",
	Short: "Liefert Tagesanzahl und letzten Tag einer Periode",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeriodDays,
}

func init() {
	periodCmd.AddCommand(periodAddCmd)
	periodCmd.AddCommand(periodSubCmd)
	periodCmd.AddCommand(periodFormatCmd)
	periodCmd.AddCommand(periodDaysCmd)
	rootCmd.AddCommand(periodCmd)
}

func parsePeriodArg(arg string) (int, error) {
	period, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("periode muss numerisch sein: %q", arg)
	}
	return period, nil
}

func runPeriodAdd(cmd *cobra.Command, args []string) error {
	period, err := parsePeriodArg(args[0])
	if err != nil {
		printError("ungültige Periode", err)
		return err
	}
	months, err := strconv.Atoi(args[1])
	if err != nil {
		printError("ungültige Monatsanzahl", err)
		return err
	}

	result, err := periodx.AddMonths(period, months, nil)
	if err != nil {
		printError("Berechnung fehlgeschlagen", err)
		return err
	}

	printResult("period", result)
	return nil
}

func runPeriodSub(cmd *cobra.Command, args []string) error {
	period, err := parsePeriodArg(args[0])
	if err != nil {
		printError("ungültige Periode", err)
		return err
	}
	months, err := strconv.Atoi(args[1])
	if err != nil {
		printError("ungültige Monatsanzahl", err)
		return err
	}

	result, err := periodx.SubMonths(period, months, nil)
	if err != nil {
		printError("Berechnung fehlgeschlagen", err)
		return err
	}

	printResult("period", result)
	return nil
}

func runPeriodFormat(cmd *cobra.Command, args []string) error {
	period, err := parsePeriodArg(args[0])
	if err != nil {
		printError("ungültige Periode", err)
		return err
	}

	lex, err := loadLexicon()
	if err != nil {
		printError("Lexikon konnte nicht geladen werden", err)
		return err
	}

	formatted, err := periodx.FormatMonthYear(period, lex)
	if err != nil {
		printError("Formatierung fehlgeschlagen", err)
		return err
	}

	printResult("formatted", formatted)
	return nil
}

func runPeriodDays(cmd *cobra.Command, args []string) error {
	period, err := parsePeriodArg(args[0])
	if err != nil {
		printError("ungültige Periode", err)
		return err
	}

	days, err := periodx.DaysInMonth(period)
	if err != nil {
		printError("Berechnung fehlgeschlagen", err)
		return err
	}
	lastDay, err := periodx.LastDayOfMonth(period)
	if err != nil {
		printError("Berechnung fehlgeschlagen", err)
		return err
	}

	if outputFormat == "yaml" {
		printResult("month", map[string]interface{}{"days": days, "last_day": lastDay})
	} else {
		fmt.Printf("%d Tage, letzter Tag %s\n", days, lastDay)
	}
	return nil
}
