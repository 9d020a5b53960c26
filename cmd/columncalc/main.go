package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"columncalc/config"
	"columncalc/core"
	"columncalc/importer"
	"columncalc/tabledb"
)

const usage = `usage: columncalc [flags] <command> [args]

commands:
  import <file.csv|file.xlsx> [sheet]   load a sheet into the table store
  fields                                list fields
  calc <field id or name> <calculation> compute a footer value
                                        (average|max|median|min|sum or code 0-4)

flags:
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "columncalc:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := pflag.NewFlagSet("columncalc", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := tabledb.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	cmdArgs := fs.Args()[1:]
	switch fs.Arg(0) {
	case "import":
		return runImport(db, logger, cmdArgs)
	case "fields":
		return runFields(db)
	case "calc":
		return runCalc(db, cmdArgs)
	default:
		fs.Usage()
		return errors.Errorf("unknown command %q", fs.Arg(0))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func runImport(db *tabledb.DB, logger *zap.Logger, args []string) error {
	if len(args) == 0 {
		return errors.New("import: missing file")
	}
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "import")
	}
	defer f.Close()

	var sheet *importer.Sheet
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		sheet, err = importer.ReadCSV(f)
	case ".xlsx":
		sheetName := ""
		if len(args) > 1 {
			sheetName = args[1]
		}
		sheet, err = importer.ReadXLSX(f, sheetName)
	default:
		return errors.Errorf("import: unsupported file type %q", filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	result, err := importer.Import(db, sheet, logger)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d rows into %d fields\n", result.Rows, len(result.Fields))
	return nil
}

func runFields(db *tabledb.DB) error {
	fields, err := db.Fields()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE")
	for _, field := range fields {
		fmt.Fprintf(w, "%s\t%s\t%s\n", field.ID, field.Name, field.Type)
	}
	return w.Flush()
}

func runCalc(db *tabledb.DB, args []string) error {
	if len(args) < 2 {
		return errors.New("calc: need a field and a calculation")
	}
	field, err := db.FindField(args[0])
	if err != nil {
		return err
	}
	code, err := parseCalculation(args[1])
	if err != nil {
		return err
	}
	result, err := db.Calculate(field.ID, code)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

// parseCalculation accepts a calculation name or its integer code. Unknown
// codes are passed through and decode to average.
func parseCalculation(s string) (int64, error) {
	if code, err := strconv.ParseInt(s, 10, 64); err == nil {
		return code, nil
	}
	for code := core.Average; code <= core.Sum; code++ {
		if code.String() == strings.ToLower(s) {
			return int64(code), nil
		}
	}
	return 0, errors.Errorf("calc: unknown calculation %q", s)
}
