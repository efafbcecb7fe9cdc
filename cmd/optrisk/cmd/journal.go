package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/optrisk/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query recorded gate decisions",
	Long: `Query and display gate decisions from the SQLite journal.

Subcommands:
  decision - Get details of a specific decision by ID
  today    - List decisions recorded today
  day      - List decisions recorded on a specific day
  rejected - List rejected decisions on a specific day

Examples:
  optrisk journal decision <decision-id>
  optrisk journal today
  optrisk journal day 2024-01-15
  optrisk journal rejected 2024-01-15`,
}

var journalDecisionCmd = &cobra.Command{
	Use:   "decision <decision-id>",
	Short: "Get details of a specific decision",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDecision,
}

var journalTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List decisions recorded today",
	Args:  cobra.NoArgs,
	RunE:  runJournalToday,
}

var journalDayCmd = &cobra.Command{
	Use:   "day <YYYY-MM-DD>",
	Short: "List decisions recorded on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDay,
}

var journalRejectedCmd = &cobra.Command{
	Use:   "rejected <YYYY-MM-DD>",
	Short: "List rejected decisions on a specific day",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRejected,
}

var journalDBPath string

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalDecisionCmd)
	journalCmd.AddCommand(journalTodayCmd)
	journalCmd.AddCommand(journalDayCmd)
	journalCmd.AddCommand(journalRejectedCmd)

	journalCmd.PersistentFlags().StringVarP(&journalDBPath, "db", "d", "./optrisk.sqlite", "path to SQLite journal DB")
}

func runJournalDecision(cmd *cobra.Command, args []string) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetDecision(args[0])
	if err != nil {
		return fmt.Errorf("get decision: %w", err)
	}

	fmt.Println(journal.FormatDecisionOrg(rec))
	return nil
}

func runJournalToday(cmd *cobra.Command, args []string) error {
	loc := time.Local
	return listDay(time.Now().In(loc).Format("2006-01-02"), false)
}

func runJournalDay(cmd *cobra.Command, args []string) error {
	return listDay(args[0], false)
}

func runJournalRejected(cmd *cobra.Command, args []string) error {
	return listDay(args[0], true)
}

func listDay(day string, rejectedOnly bool) error {
	j, err := journal.NewSQLite(journalDBPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	start, end, err := dayBounds(time.Local, day)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}

	var recs []journal.DecisionRecord
	if rejectedOnly {
		recs, err = j.ListRejected(start, end)
	} else {
		recs, err = j.ListDecisionsBetween(start, end)
	}
	if err != nil {
		return fmt.Errorf("query decisions: %w", err)
	}

	fmt.Println(journal.FormatDecisionsOrg(recs))
	return nil
}

func dayBounds(loc *time.Location, day string) (time.Time, time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", day, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)
	return start, end, nil
}
