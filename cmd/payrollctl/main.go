/*
payrollctl - Command-line driver for the payroll registry

PURPOSE:
  The thin driver around the registry: constructs records, invokes the
  registry and salary operations, and prints results. Owns no persistence
  logic itself; every durable effect goes through store/csvfile.

COMMANDS:
  seed     Load registry; when empty, add demo staff and save
  list     Print every record's field set
  add      Add one record (role-dispatched from flags) and save
  remove   Remove a record by ID and save
  pay      Run a record's salary calculation and print the amount
  report   Write an .xlsx payroll summary

CONFIGURATION:
  --file overrides STORAGE_FILE from the environment (.env honored).
*/
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/warp/payroll-engine/internal/config"
	"github.com/warp/payroll-engine/internal/logger"
	"github.com/warp/payroll-engine/payroll"
	"github.com/warp/payroll-engine/report"
	"github.com/warp/payroll-engine/store/csvfile"
)

var storageFile string

var rootCmd = &cobra.Command{
	Use:   "payrollctl",
	Short: "Employee payroll registry with CSV persistence",
	Long:  "payrollctl manages a single-user employee registry: add, remove, and list records, run per-variant salary calculations, and persist everything to one CSV file.",
}

func main() {
	cfg := config.Load() // .env honored

	logger.Init(cfg.LogFilePath)

	rootCmd.PersistentFlags().StringVar(&storageFile, "file", cfg.StorageFile, "registry CSV path")
	rootCmd.AddCommand(seedCmd(), listCmd(), addCmd(), removeCmd(), payCmd(), reportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openRegistry loads the registry with the fail-safe-empty policy: a broken
// file means an empty registry, never a failed command.
func openRegistry(cmd *cobra.Command) (*payroll.Registry, *csvfile.Store) {
	store := csvfile.New(storageFile)
	registry, err := store.LoadRegistry()
	if err != nil {
		logger.WarnLog(cmd.Context(), "could not load %s, starting empty: %v", storageFile, err)
		registry = payroll.NewRegistry()
	}
	return registry, store
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add demo employees when the registry is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, store := openRegistry(cmd)
			if registry.Len() > 0 {
				fmt.Printf("registry already has %d records, nothing to seed\n", registry.Len())
				return nil
			}

			registry.Add(payroll.NewFullTime("FT001", "Alice Kumar",
				payroll.NewDate(2018, 6, 15), decimal.NewFromInt(80000)))
			registry.Add(payroll.NewPartTime("PT101", "Bikash Singh",
				payroll.NewDate(2022, 1, 10), decimal.NewFromInt(500)))
			intern := payroll.NewIntern("IN900", "Charu Rai",
				payroll.NewDate(2024, 7, 1), decimal.NewFromInt(15000))
			intern.Completed = true
			registry.Add(intern)

			if err := store.Save(registry.Employees()); err != nil {
				return err
			}
			fmt.Printf("seeded %d records into %s\n", registry.Len(), store.Path())
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every record's field set",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, _ := openRegistry(cmd)
			for _, e := range registry.Employees() {
				fmt.Printf("%s | %s | %s\n", e.ID(), e.Name(), e.Role())
				fields := e.Fields()
				for _, key := range sortedFieldKeys(fields) {
					fmt.Printf("    %s = %s\n", key, fields[key])
				}
			}
			fmt.Printf("%d records\n", registry.Len())
			return nil
		},
	}
}

func addCmd() *cobra.Command {
	var (
		id, name, joinDate, role string
		amount                   float64
		completed                bool
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add one record and save",
		Long:  "Adds a record dispatched on --role: Full-Time reads --amount as monthly salary, Part-Time as hourly rate, Intern as stipend. Any other role creates a generic record with no salary rule.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}
			var jd payroll.Date
			if joinDate != "" {
				d, err := payroll.ParseDate(joinDate)
				if err != nil {
					return fmt.Errorf("--join-date must be YYYY-MM-DD: %w", err)
				}
				jd = d
			}

			var emp payroll.Employee
			switch payroll.Role(role) {
			case payroll.RoleFullTime:
				emp = payroll.NewFullTime(id, name, jd, decimal.NewFromFloat(amount))
			case payroll.RolePartTime:
				emp = payroll.NewPartTime(id, name, jd, decimal.NewFromFloat(amount))
			case payroll.RoleIntern:
				in := payroll.NewIntern(id, name, jd, decimal.NewFromFloat(amount))
				in.Completed = completed
				emp = in
			default:
				emp = payroll.NewGeneric(id, name, jd, payroll.Role(role))
			}

			registry, store := openRegistry(cmd)
			registry.Add(emp)
			if err := store.Save(registry.Employees()); err != nil {
				return err
			}
			fmt.Printf("added %s (%s)\n", id, emp.Role())
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "employee ID")
	cmd.Flags().StringVar(&name, "name", "", "employee name")
	cmd.Flags().StringVar(&joinDate, "join-date", "", "join date, YYYY-MM-DD")
	cmd.Flags().StringVar(&role, "role", string(payroll.RoleFullTime), "Full-Time, Part-Time, Intern, or any tag")
	cmd.Flags().Float64Var(&amount, "amount", 0, "monthly salary / hourly rate / stipend")
	cmd.Flags().BoolVar(&completed, "completed", false, "intern completion status")
	return cmd
}

func removeCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a record by ID and save",
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return fmt.Errorf("--id is required")
			}
			registry, store := openRegistry(cmd)
			registry.Remove(id)
			if err := store.Save(registry.Employees()); err != nil {
				return err
			}
			fmt.Printf("removed %s (%d records remain)\n", id, registry.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "employee ID")
	return cmd
}

func payCmd() *cobra.Command {
	var (
		id         string
		months     int
		hours      float64
		bonus      bool
		completion bool
	)
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Run a record's salary calculation and print the amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, store := openRegistry(cmd)
			emp, ok := registry.Get(id)
			if !ok {
				return fmt.Errorf("employee %q not found", id)
			}

			amount, err := emp.CalculateSalary(payroll.PayInput{
				Months:                   months,
				HoursWorked:              decimal.NewFromFloat(hours),
				ApplyBonus:               bonus,
				ApplyCompletionAllowance: completion,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s): %s\n", emp.ID(), emp.Role(), amount.StringFixed(2))

			// The part-time rule records hours worked on the record.
			if _, isPartTime := emp.(*payroll.PartTime); isPartTime {
				return store.Save(registry.Employees())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "employee ID")
	cmd.Flags().IntVar(&months, "months", 1, "months to pay (full-time)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "hours worked (part-time)")
	cmd.Flags().BoolVar(&bonus, "bonus", false, "apply the bonus rule")
	cmd.Flags().BoolVar(&completion, "completion", false, "apply the intern completion allowance")
	return cmd
}

func reportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write an .xlsx payroll summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, _ := openRegistry(cmd)
			if err := report.WritePayroll(out, registry.Employees(), payroll.Date{}); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d records)\n", out, registry.Len())
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "payroll.xlsx", "output workbook path")
	return cmd
}

func sortedFieldKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
