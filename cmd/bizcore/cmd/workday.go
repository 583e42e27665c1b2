package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/bizcore/utils/clockx"
	"github.com/msto63/bizcore/utils/workdayx"
)

var workdayCmd = &cobra.Command{
	Use:   "workday",
	Short: "Arbeitstagsarithmetik mit Feiertagen",
	Long: `Arbeitstagsberechnungen auf Basis des konfigurierten
Feiertagskalenders. Wochenenden und Feiertage zählen nie als Arbeitstage.`,
}

var workdayAddCmd = &cobra.Command{
	Use:   "add <datum> <n>",
	Short: "Addiert n Arbeitstage auf ein Datum",
	Args:  cobra.ExactArgs(2),
	RunE:  runWorkdayAdd,
}

var workdaySubCmd = &cobra.Command{
	Use:   "sub <datum> <n>",
	Short: "Subtrahiert n Arbeitstage von einem Datum",
	Args:  cobra.ExactArgs(2),
	RunE:  runWorkdaySub,
}

var workdayOrdinalCmd = &cobra.Command{
	Use:   "ordinal <jahr> <monat> <n>",
	Short: "Liefert den n-ten Arbeitstag eines Monats",
	Args:  cobra.ExactArgs(3),
	RunE:  runWorkdayOrdinal,
}

var workdayLastCmd = &cobra.Command{
	Use:   "last <datum>",
	Short: "Prüft, ob ein Datum der letzte Arbeitstag seines Monats ist",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkdayLast,
}

var workdayNumberCmd = &cobra.Command{
	Use:   "number <datum>",
	Short: "Liefert die laufende Arbeitstagsnummer im Monat",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkdayNumber,
}

func init() {
	workdayCmd.AddCommand(workdayAddCmd)
	workdayCmd.AddCommand(workdaySubCmd)
	workdayCmd.AddCommand(workdayOrdinalCmd)
	workdayCmd.AddCommand(workdayLastCmd)
	workdayCmd.AddCommand(workdayNumberCmd)
	rootCmd.AddCommand(workdayCmd)
}

func runWorkdayAdd(cmd *cobra.Command, args []string) error {
	date, err := clockx.ParseISODate(args[0])
	if err != nil {
		printError("ungültiges Datum", err)
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		printError("ungültige Anzahl", err)
		return err
	}

	holidays, err := loadHolidays()
	if err != nil {
		printError("Feiertage konnten nicht geladen werden", err)
		return err
	}

	result, err := workdayx.AddWorkingDays(date, n, holidays)
	if err != nil {
		printError("Berechnung fehlgeschlagen", err)
		return err
	}

	printResult("date", clockx.FormatISODate(result))
	return nil
}

func runWorkdaySub(cmd *cobra.Command, args []string) error {
	date, err := clockx.ParseISODate(args[0])
	if err != nil {
		printError("ungültiges Datum", err)
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		printError("ungültige Anzahl", err)
		return err
	}

	holidays, err := loadHolidays()
	if err != nil {
		printError("Feiertage konnten nicht geladen werden", err)
		return err
	}

	result, err := workdayx.SubtractWorkingDays(date, n, holidays)
	if err != nil {
		printError("Berechnung fehlgeschlagen", err)
		return err
	}

	printResult("date", clockx.FormatISODate(result))
	return nil
}

func runWorkdayOrdinal(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		printError("ungültiges Jahr", err)
		return err
	}
	month, err := strconv.Atoi(args[1])
	if err != nil {
		printError("ungültiger Monat", err)
		return err
	}
	ordinal, err := strconv.Atoi(args[2])
	if err != nil {
		printError("ungültige Ordinalzahl", err)
		return err
	}

	holidays, err := loadHolidays()
	if err != nil {
		printError("Feiertage konnten nicht geladen werden", err)
		return err
	}

	result, ok := workdayx.WorkingDayOfMonth(year, month, ordinal, holidays)
	if !ok {
		err := fmt.Errorf("der Monat %04d-%02d hat keinen %d. Arbeitstag", year, month, ordinal)
		printError("Berechnung fehlgeschlagen", err)
		return err
	}

	printResult("date", clockx.FormatISODate(result))
	return nil
}

func runWorkdayLast(cmd *cobra.Command, args []string) error {
	date, err := clockx.ParseISODate(args[0])
	if err != nil {
		printError("ungültiges Datum", err)
		return err
	}

	holidays, err := loadHolidays()
	if err != nil {
		printError("Feiertage konnten nicht geladen werden", err)
		return err
	}

	printBool("last_working_day", workdayx.IsLastWorkingDay(date, holidays))
	return nil
}

func runWorkdayNumber(cmd *cobra.Command, args []string) error {
	date, err := clockx.ParseISODate(args[0])
	if err != nil {
		printError("ungültiges Datum", err)
		return err
	}

	holidays, err := loadHolidays()
	if err != nil {
		printError("Feiertage konnten nicht geladen werden", err)
		return err
	}

	number, ok := workdayx.WorkingDayNumber(date, holidays)
	if !ok {
		err := fmt.Errorf("%s ist kein Arbeitstag", args[0])
		printError("Berechnung fehlgeschlagen", err)
		return err
	}

	printResult("number", number)
	return nil
}
