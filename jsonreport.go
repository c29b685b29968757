/*
* JSON report module
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/report.schema.json
var reportSchema []byte

// Report is the machine-readable form of one run.
type Report struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	*Analysis
}

func NewReport(a *Analysis) Report {
	return Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Analysis:    a,
	}
}

// SchemaValidationError lists every field that failed schema validation.
type SchemaValidationError struct {
	Errors []string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("report does not match schema: %s", strings.Join(e.Errors, "; "))
}

// ValidateReportJSON checks a serialized report against the embedded schema.
func ValidateReportJSON(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(reportSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("failed to load report schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	validationErr := &SchemaValidationError{}
	for _, resultErr := range result.Errors() {
		validationErr.Errors = append(validationErr.Errors, fmt.Sprintf("%s: %s", resultErr.Field(), resultErr.Description()))
	}
	return validationErr
}

// WriteJSONReport writes the report to path. The file is written even when
// schema validation fails; the validation error is returned afterwards.
func WriteJSONReport(path string, report Report) error {
	if report.Analysis == nil {
		return fmt.Errorf("report has no analysis")
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return ValidateReportJSON(jsonBytes)
}
