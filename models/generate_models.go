package models

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Column Mismatch Report Usage:

Set GENERATE_COLUMN_REPORT=true and start the server. For every portfolio table
the report lists columns that exist in the database but have no field in the
matching Go struct:

	=== COLUMN MISMATCH REPORT ===
	--- Table: projects ---
	Found 1 columns not accounted for in model:
	  - legacy_slug

	=== SUMMARY ===
	Total mismatched columns across all tables: 1

GENERATE_MODELS=true additionally migrates the schema and writes typed query
helpers to ./generated with gorm gen.
*/

func GenerateModels(db *gorm.DB, out io.Writer, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	migrateDB := db.Session(&gorm.Session{
		Logger:                 db.Logger.LogMode(logger.Info),
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(migrateDB)
	g.ApplyBasic(All()...)

	fmt.Fprintln(out, "Migrating models...")
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("migrate models: %w", err)
	}
	fmt.Fprintln(out, "Database migration completed successfully!")

	if _, err := GenerateColumnMismatchReport(db, out); err != nil {
		return err
	}

	g.Execute()
	fmt.Fprintln(out, "Model generation complete!")
	return nil
}

// GenerateColumnMismatchReport prints the report and returns the mismatched
// columns per table. Tables that do not exist yet are reported and skipped.
func GenerateColumnMismatchReport(db *gorm.DB, out io.Writer) (map[string][]string, error) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	fmt.Fprintln(out, "=== COLUMN MISMATCH REPORT ===")

	mappings := TableNames()
	tables := make([]string, 0, len(mappings))
	for name := range mappings {
		tables = append(tables, name)
	}
	sort.Strings(tables)

	result := map[string][]string{}
	total := 0
	for _, tableName := range tables {
		fmt.Fprintf(out, "\n--- Table: %s ---\n", tableName)

		if !db.Migrator().HasTable(tableName) {
			fmt.Fprintln(out, "Table does not exist yet (will be created during migration)")
			continue
		}

		dbColumns, err := getTableColumns(db, tableName)
		if err != nil {
			return nil, err
		}

		mismatches := findColumnMismatches(dbColumns, getModelFields(mappings[tableName]))
		if len(mismatches) == 0 {
			fmt.Fprintln(out, "All columns are accounted for in the model.")
			continue
		}

		fmt.Fprintf(out, "Found %d columns not accounted for in model:\n", len(mismatches))
		for _, col := range mismatches {
			fmt.Fprintf(out, "  - %s\n", col)
		}
		result[tableName] = mismatches
		total += len(mismatches)
	}

	fmt.Fprintf(out, "\n=== SUMMARY ===\n")
	fmt.Fprintf(out, "Total mismatched columns across all tables: %d\n", total)
	return result, nil
}

func getTableColumns(db *gorm.DB, tableName string) ([]string, error) {
	columnTypes, err := db.Migrator().ColumnTypes(tableName)
	if err != nil {
		return nil, fmt.Errorf("error querying columns for table %s: %w", tableName, err)
	}

	columns := make([]string, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, ct.Name())
	}
	return columns, nil
}

// getModelFields extracts column names from the gorm tags of a struct.
// Relationship fields carry no column tag and are skipped.
func getModelFields(model any) []string {
	var fields []string
	t := reflect.TypeOf(model)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			continue
		}
		if columnName := extractColumnNameFromGormTag(field.Tag.Get("gorm")); columnName != "" {
			fields = append(fields, columnName)
		}
	}
	return fields
}

func extractColumnNameFromGormTag(gormTag string) string {
	for _, part := range strings.Split(gormTag, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}

func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[field] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[col] {
			mismatches = append(mismatches, col)
		}
	}
	return mismatches
}
